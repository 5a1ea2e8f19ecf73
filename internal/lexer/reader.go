package lexer

import (
	"fmt"

	"nesclex/internal/source"
)

// ReadChar returns the next byte of the active input, or EOF. Reading a
// newline moves Last to the next line.
func (s *Session) ReadChar() int {
	var c int
	switch {
	case s.npush > 0:
		s.npush--
		c = s.pushback[s.npush]
	case s.in == nil:
		return EOF
	default:
		b, ok := s.in.next()
		if !ok {
			return EOF
		}
		c = int(b)
	}
	if c == '\n' {
		s.Last.Line++
	}
	return c
}

// UnreadChar pushes c back so that the next ReadChar returns it. Unreading a
// newline moves Last back a line; unreading EOF does nothing. More than
// PushbackDepth pending characters is a programming error and panics.
func (s *Session) UnreadChar(c int) {
	if c == EOF {
		return
	}
	if s.npush == PushbackDepth {
		panic(fmt.Errorf("lexer: unread %q: %w", rune(c), ErrPushbackOverflow))
	}
	s.pushback[s.npush] = c
	s.npush++
	if c == '\n' {
		s.Last.Line--
	}
}

// offset is the byte offset of the next character in the active file.
func (s *Session) offset() uint32 {
	if s.in == nil {
		return 0
	}
	// #nosec G115 -- npush <= PushbackDepth
	n := uint32(s.npush)
	if n > s.in.off {
		return 0
	}
	return s.in.off - n
}

func (s *Session) spanFrom(start uint32) source.Span {
	sp := source.Span{Start: start, End: s.offset()}
	if s.in != nil {
		sp.File = s.in.file.ID
	}
	if sp.End < sp.Start {
		sp.End = sp.Start
	}
	return sp
}
