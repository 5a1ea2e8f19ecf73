package doc

import "strings"

// Clean removes Javadoc-style " * " decorations from block comment text.
// It only does so when every non-blank line after the first starts with
// optional whitespace and a '*'; otherwise text is returned unchanged.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}
	for _, l := range lines[1:] {
		t := strings.TrimLeft(l, " \t")
		if t != "" && t[0] != '*' {
			return text
		}
	}
	for i := 1; i < len(lines); i++ {
		t := strings.TrimLeft(lines[i], " \t")
		if t == "" {
			lines[i] = ""
			continue
		}
		t = t[1:]
		if strings.HasPrefix(t, " ") {
			t = t[1:]
		}
		lines[i] = t
	}
	return strings.Join(lines, "\n")
}
