package lexer

import (
	"nesclex/internal/token"
)

// scanNumber reads a preprocessing number: a digit (or '.' and a digit)
// followed by identifier characters, dots, and signs that directly follow
// an exponent letter. Suffixes, hex floats and malformed forms are kept
// verbatim; the parser validates them.
func (s *Session) scanNumber(st start, c int) token.Token {
	s.take(c)
	prev := c
	for {
		n := s.ReadChar()
		switch {
		case isIdentContinueByte(n) || n == '.':
		case (n == '+' || n == '-') && isExponent(prev):
		default:
			s.UnreadChar(n)
			return s.emit(st, token.Number)
		}
		s.take(n)
		prev = n
	}
}

func isExponent(c int) bool {
	return c == 'e' || c == 'E' || c == 'p' || c == 'P'
}
