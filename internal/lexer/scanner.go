package lexer

import (
	"fmt"

	"nesclex/internal/diag"
	"nesclex/internal/source"
	"nesclex/internal/token"
	"nesclex/internal/trace"
)

// start is where a lexeme began.
type start struct {
	loc source.Location
	off uint32
}

func (s *Session) mark() start {
	return start{loc: source.MakeLocation(s.Last), off: s.offset()}
}

// Next возвращает следующий значимый токен. Whitespace, comments and line
// markers are consumed on the way. A fatal error (unterminated comment) is
// returned once; the session is then done and yields EOF.
func (s *Session) Next() (token.Token, error) {
	if s.done {
		return s.eofToken(), nil
	}

	st, c, err := s.skipTrivia()
	if err != nil {
		s.done = true
		trace.Error(s.opts.Tracer, "lex", err)
		return s.eofToken(), err
	}

	s.buf = s.buf[:0]
	s.tooLong = false

	switch {
	case c == EOF:
		return s.eofToken(), nil
	case isIdentStartByte(c):
		return s.scanIdentOrKeyword(st, c), nil
	case isDec(c):
		return s.scanNumber(st, c), nil
	case c == '.' && s.isNumberAfterDot():
		return s.scanNumber(st, c), nil
	case c == '"' || c == '\'':
		return s.scanQuoted(st, c), nil
	case c >= utf8RuneSelf:
		return s.scanForeign(st, c), nil
	default:
		return s.scanOperatorOrPunct(st, c), nil
	}
}

// skipTrivia reads up to the first significant character and returns it
// together with the position it was read at.
func (s *Session) skipTrivia() (start, int, error) {
	for {
		st := s.mark()
		c := s.ReadChar()
		switch {
		case c == '\n':
			s.bol = true
		case isSpace(c):
		case c == '#' && s.bol:
			s.lineDirective(st)
		case c == '/':
			next := s.ReadChar()
			switch next {
			case '*':
				if err := s.SkipBlockComment(); err != nil {
					return st, EOF, err
				}
			case '/':
				s.SkipLineComment()
				s.bol = true
			default:
				s.UnreadChar(next)
				s.bol = false
				return st, c, nil
			}
		default:
			if c != EOF {
				s.bol = false
			}
			return st, c, nil
		}
	}
}

func (s *Session) eofToken() token.Token {
	return token.Token{
		Kind: token.EOF,
		Loc:  source.MakeLocation(s.Last),
		Span: s.spanFrom(s.offset()),
	}
}

// take appends c to the lexeme being built, truncating at MaxTokenLength.
func (s *Session) take(c int) {
	if len(s.buf) >= s.opts.MaxTokenLength {
		s.tooLong = true
		return
	}
	s.buf = append(s.buf, byte(c))
}

func (s *Session) emit(st start, kind token.Kind) token.Token {
	tok := token.Token{
		Kind: kind,
		Text: string(s.buf),
		Loc:  st.loc,
		Span: s.spanFrom(st.off),
	}
	if s.tooLong {
		s.errLex(diag.LexTokenTooLong, st.loc,
			fmt.Sprintf("token longer than %d bytes", s.opts.MaxTokenLength))
		tok.Kind = token.Invalid
		tok.RID = token.RIDUnused
	}
	return tok
}
