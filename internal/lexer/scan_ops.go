package lexer

import (
	"fmt"

	"nesclex/internal/dialect"
	"nesclex/internal/diag"
	"nesclex/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Two characters of pushback are enough to back out of a failed "..".
var (
	puncts3 = map[string]bool{"...": true, "<<=": true, ">>=": true}
	puncts2 = map[string]bool{
		"->": true, "++": true, "--": true, "<<": true, ">>": true,
		"<=": true, ">=": true, "==": true, "!=": true, "&&": true,
		"||": true, "*=": true, "/=": true, "%=": true, "+=": true,
		"-=": true, "&=": true, "^=": true, "|=": true, "##": true,
		"<-": true,
	}
	// префиксы, после которых стоит смотреть третий символ
	prefix3 = map[string]bool{"..": true, "<<": true, ">>": true}
)

const puncts1 = "+-*/%=!<>&|^~?:;,.()[]{}#@"

// wiringDialects treat "<-" as one punctuator. In C "a<-1" is "a < -1".
var wiringDialects = dialect.Of(dialect.Component, dialect.Implementation, dialect.Any)

func (s *Session) scanOperatorOrPunct(st start, c int) token.Token {
	s.take(c)
	n1 := s.ReadChar()
	if n1 != EOF {
		two := string([]byte{byte(c), byte(n1)})
		if prefix3[two] {
			n2 := s.ReadChar()
			if n2 != EOF && puncts3[two+string(rune(n2))] {
				s.take(n1)
				s.take(n2)
				return s.emit(st, token.Punct)
			}
			s.UnreadChar(n2)
		}
		if puncts2[two] && (two != "<-" || wiringDialects.Has(s.dialect)) {
			s.take(n1)
			return s.emit(st, token.Punct)
		}
	}
	s.UnreadChar(n1)

	for i := 0; i < len(puncts1); i++ {
		if int(puncts1[i]) == c {
			return s.emit(st, token.Punct)
		}
	}
	// неизвестный символ
	s.errLex(diag.LexUnknownChar, st.loc, fmt.Sprintf("unknown character %q", rune(c)))
	return s.invalid(st)
}

// scanForeign consumes one UTF-8 sequence outside the C character set and
// reports it as a single unknown character.
func (s *Session) scanForeign(st start, c int) token.Token {
	s.take(c)
	for {
		n := s.ReadChar()
		if n == EOF || n&0xC0 != 0x80 {
			s.UnreadChar(n)
			break
		}
		s.take(n)
	}
	s.errLex(diag.LexUnknownChar, st.loc, fmt.Sprintf("unknown character %q", string(s.buf)))
	return s.invalid(st)
}
