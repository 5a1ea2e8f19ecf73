package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"

	"fortio.org/safecast"
)

// FileSet is the driver's file table. Lexer sessions borrow files from it;
// a file never changes once added. A FileSet is not safe for concurrent
// writes: load everything first, then share it read-only.
type FileSet struct {
	files  []*File
	byPath map[string]FileID // последняя версия файла по пути
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]FileID)}
}

// Add stores content under path and returns a fresh FileID. Adding the same
// path again creates a new version; lookups by path see the latest one.
// Content is taken as is; use Load for files from disk.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source: %s too large: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("source: file table overflow: %w", err))
	}
	id := FileID(n)
	p := cleanPath(path)
	s.files = append(s.files, &File{
		ID:      id,
		Path:    p,
		Content: content,
		LineIdx: indexLines(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	s.byPath[p] = id
	return id
}

// Load reads path from disk, normalizes BOM and line ends, and adds it.
// extra is OR-ed into the computed flags (e.g. FileSystemHeader).
func (s *FileSet) Load(path string, extra FileFlags) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := normalize(raw)
	return s.Add(path, content, flags|extra), nil
}

// AddVirtual adds in-memory content with the FileVirtual flag.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.Add(name, content, FileVirtual)
}

// Get returns the file with the given id. It panics on an unknown id.
func (s *FileSet) Get(id FileID) *File {
	return s.files[id]
}

// Len returns the number of files added so far.
func (s *FileSet) Len() int {
	return len(s.files)
}

// Latest returns the id of the newest version of path.
func (s *FileSet) Latest(path string) (FileID, bool) {
	id, ok := s.byPath[cleanPath(path)]
	return id, ok
}

// GetByPath возвращает последнюю версию файла по пути.
func (s *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := s.Latest(path)
	if !ok {
		return nil, false
	}
	return s.files[id], true
}

// Resolve converts a span into line and column positions.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.files[span.File]
	return f.position(span.Start), f.position(span.End)
}

// position maps a byte offset to a line and column. A newline belongs to
// the line it ends.
func (f *File) position(off uint32) LineCol {
	// число переводов строки строго до off
	line := sort.Search(len(f.LineIdx), func(i int) bool { return f.LineIdx[i] >= off })
	var lineStart uint32
	if line > 0 {
		lineStart = f.LineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} // #nosec G115 -- line <= len(LineIdx)
}
