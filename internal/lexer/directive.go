package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"nesclex/internal/diag"
	"nesclex/internal/trace"
)

// lineMarker is a parsed `# <line> "<file>" <flags>` directive.
type lineMarker struct {
	line  uint32
	file  string // пусто, если имя не указано
	flags []int
}

// systemHeader reports flag 3.
func (m lineMarker) systemHeader() bool {
	for _, f := range m.flags {
		if f == 3 {
			return true
		}
	}
	return false
}

// lineDirective handles a '#' read at the start of a line. The rest of the
// line is consumed. Line markers move Last; any other directive left by
// the preprocessor (#pragma, #ident) is ignored.
func (s *Session) lineDirective(st start) {
	text := s.readRestOfLine()
	body := strings.TrimLeft(text, " \t")
	if rest, ok := strings.CutPrefix(body, "line"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
		body = strings.TrimLeft(rest, " \t")
	} else if body == "" || !isDec(int(body[0])) {
		trace.Point(s.opts.Tracer, trace.ScopeLexeme, "directive", "#"+text)
		return
	}

	m, err := parseLineMarker(body)
	if err != nil {
		s.report(diag.LexBadLineMarker, diag.SevWarning, st.loc, fmt.Sprintf("ignoring line marker: %v", err))
		return
	}
	sys := s.Last.InSystemHeader
	if m.file != "" {
		sys = m.systemHeader()
	}
	s.SetLine(m.file, m.line, sys)
}

// readRestOfLine consumes through the next newline (or EOF) and returns
// the text before it.
func (s *Session) readRestOfLine() string {
	var sb strings.Builder
	for {
		c := s.ReadChar()
		if c == EOF || c == '\n' {
			s.bol = true
			return sb.String()
		}
		sb.WriteByte(byte(c))
	}
}

func parseLineMarker(body string) (lineMarker, error) {
	var m lineMarker
	numEnd := 0
	for numEnd < len(body) && isDec(int(body[numEnd])) {
		numEnd++
	}
	if numEnd == 0 {
		return m, fmt.Errorf("expected line number")
	}
	n, err := strconv.ParseUint(body[:numEnd], 10, 32)
	if err != nil {
		return m, fmt.Errorf("bad line number %q: %w", body[:numEnd], err)
	}
	m.line = uint32(n) // #nosec G115 -- ParseUint bounded to 32 bits

	rest := strings.TrimSpace(body[numEnd:])
	if rest == "" {
		return m, nil
	}
	if rest[0] != '"' {
		return m, fmt.Errorf("expected quoted file name, got %q", rest)
	}
	file, tail, err := unquoteFileName(rest)
	if err != nil {
		return m, err
	}
	m.file = file

	for _, f := range strings.Fields(tail) {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > 4 {
			return m, fmt.Errorf("bad flag %q", f)
		}
		m.flags = append(m.flags, v)
	}
	return m, nil
}

// unquoteFileName reads a C string holding a file name and returns it with
// the text after the closing quote. Only \\ and \" escapes are meaningful
// in line markers.
func unquoteFileName(s string) (name, tail string, err error) {
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			if sb.Len() == 0 {
				return "", "", fmt.Errorf("empty file name")
			}
			return sb.String(), s[i+1:], nil
		case '\\':
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
		default:
			sb.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated file name")
}
