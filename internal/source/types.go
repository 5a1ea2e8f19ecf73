package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes how a file was obtained and classified.
	FileFlags uint8
	// DeclID indexes a declaration table owned outside the lexer.
	// NoDecl means "not instantiated code".
	DeclID uint32
)

// NoDecl is the absent container.
const NoDecl DeclID = 0

const (
	// FileVirtual marks files added from memory (tests, stdin, fuzzing).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileSystemHeader marks library headers; warnings anchored in them are
	// not shown.
	FileSystemHeader
)

// File is one loaded source. Content is normalized (no BOM, LF line ends)
// and never changes after the file is added to a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the offset of every '\n' in Content.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// IsSystemHeader reports whether the driver marked the file as a system header.
func (f *File) IsSystemHeader() bool {
	return f != nil && f.Flags&FileSystemHeader != 0
}

// LineCount is the number of lines, counting a final unterminated line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// lineBounds returns the byte range of line n (1-based) without its '\n'.
func (f *File) lineBounds(n int) (start, end int, ok bool) {
	if n < 1 || n > f.LineCount() {
		return 0, 0, false
	}
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end = len(f.Content)
	if n <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	return start, end, start <= end
}

// GetLine возвращает строку с номером n (с 1) без перевода строки.
// Для несуществующей строки возвращает "".
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.lineBounds(int(n))
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
