package source

import (
	"bytes"
	"path/filepath"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalize strips a leading UTF-8 BOM and turns CRLF into LF. A lone CR
// is kept: the lexer treats it as whitespace.
func normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content = rest
		flags |= FileHadBOM
	}
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
		flags |= FileNormalizedCRLF
	}
	return content, flags
}

// indexLines records the offset of every newline.
func indexLines(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		idx = append(idx, uint32(off)) // #nosec G115 -- Add checked len(content) fits uint32
		off++
	}
}

// cleanPath gives every path one spelling, with forward slashes.
func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// UnderDir reports whether path lies under dir after cleaning. A relative
// dir of "." covers every relative path that does not climb out.
func UnderDir(path, dir string) bool {
	p, d := cleanPath(path), cleanPath(dir)
	if d == "." {
		return !filepath.IsAbs(p) && p != ".." && !strings.HasPrefix(p, "../")
	}
	if p == d {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(d, "/")+"/")
}
