package lexer

import (
	"nesclex/internal/diag"
	"nesclex/internal/token"
)

// scanQuoted reads a string or character literal whose opening quote q was
// already read. Escapes are kept verbatim; a backslash-newline continues
// the literal on the next line.
func (s *Session) scanQuoted(st start, q int) token.Token {
	kind := token.String
	what := "string"
	if q == '\'' {
		kind = token.Char
		what = "character"
	}
	s.take(q)
	for {
		c := s.ReadChar()
		switch c {
		case q:
			s.take(c)
			return s.emit(st, kind)
		case '\\':
			s.take(c)
			next := s.ReadChar()
			if next == EOF {
				break
			}
			s.take(next)
			continue
		case '\n':
			// оставляем перевод строки следующему токену
			s.UnreadChar(c)
			s.errLex(diag.LexUnterminatedString, st.loc, "newline in "+what+" literal")
			return s.invalid(st)
		case EOF:
		default:
			s.take(c)
			continue
		}
		s.errLex(diag.LexUnterminatedString, st.loc, "unterminated "+what+" literal")
		return s.invalid(st)
	}
}

func (s *Session) invalid(st start) token.Token {
	tok := s.emit(st, token.Invalid)
	tok.Kind = token.Invalid
	return tok
}
