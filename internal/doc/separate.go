package doc

import "strings"

// Separate splits raw documentation text into a short summary and a long
// body. The boundary is whichever comes first after the leading whitespace:
// a blank line, or '.', '!' or '?' followed by whitespace. Both halves are
// trimmed; long is empty when there is no boundary. Separate never fails.
func Separate(raw string) (short, long string) {
	cut, next := boundary(raw)
	if cut < 0 {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(raw[:cut]), strings.TrimSpace(raw[next:])
}

// boundary returns the end of the summary and the start of the body, or -1.
func boundary(s string) (cut, next int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
			if i+1 < len(s) && isSpace(s[i+1]) {
				return i + 1, i + 1
			}
		case '\n':
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r') {
				j++
			}
			if j < len(s) && s[j] == '\n' {
				return i, j + 1
			}
		}
	}
	return -1, -1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
