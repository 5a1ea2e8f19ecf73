package lexer

import (
	"nesclex/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор, начиная с уже прочитанного c,
// и проверяет его через Resolve для диалекта сессии. Ключевые слова
// регистрозависимые. L"..." and L'...' are wide literals.
func (s *Session) scanIdentOrKeyword(st start, c int) token.Token {
	s.take(c)
	for {
		n := s.ReadChar()
		if !isIdentContinueByte(n) {
			if (n == '"' || n == '\'') && len(s.buf) == 1 && s.buf[0] == 'L' {
				return s.scanQuoted(st, n)
			}
			s.UnreadChar(n)
			break
		}
		s.take(n)
	}

	tok := s.emit(st, token.Ident)
	if tok.Kind == token.Invalid {
		return tok
	}
	if rid := s.Resolve(tok.Text); rid != token.RIDUnused {
		tok.Kind = token.Keyword
		tok.RID = rid
	}
	return tok
}
