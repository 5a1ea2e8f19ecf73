package lexer

import (
	"nesclex/internal/diag"
	"nesclex/internal/doc"
	"nesclex/internal/source"
)

// SkipBlockComment consumes a block comment whose "/*" was already read,
// up to and including the first "*/". Comments do not nest. A comment
// opened with "/**" (but not "/**/" or "/***") is captured as the pending
// docstring at the location just past "*/".
//
// Reaching EOF first returns an *Error wrapping ErrUnterminatedComment,
// located where the comment was opened.
func (s *Session) SkipBlockComment() error {
	opener := source.MakeLocation(s.Last)

	isDoc := false
	sawStar := false
	first := s.ReadChar()
	if first == '*' {
		next := s.ReadChar()
		s.UnreadChar(next)
		isDoc = next != '*' && next != '/' && next != EOF
		sawStar = true
	} else {
		s.UnreadChar(first)
	}

	var body []byte
	for {
		c := s.ReadChar()
		if c == EOF {
			return &Error{Code: diag.LexUnterminatedComment, Loc: opener, Err: ErrUnterminatedComment}
		}
		if c == '/' && sawStar {
			if isDoc {
				// последний '*' принадлежит закрывающему "*/"
				body = body[:len(body)-1]
				s.docs.Capture(doc.Clean(string(body)), source.MakeLocation(s.Last))
			}
			return nil
		}
		sawStar = c == '*'
		if isDoc {
			body = append(body, byte(c))
		}
	}
}

// SkipLineComment consumes a line comment whose "//" was already read,
// through the newline or EOF. "///" (but not "////") starts a line
// docstring located on the comment's own line; docstrings on adjacent
// lines are joined.
func (s *Session) SkipLineComment() {
	isDoc := false
	first := s.ReadChar()
	if first == '/' {
		next := s.ReadChar()
		s.UnreadChar(next)
		isDoc = next != '/'
	} else {
		s.UnreadChar(first)
	}

	var body []byte
	for {
		at := s.Last
		c := s.ReadChar()
		if c == EOF || c == '\n' {
			if isDoc {
				s.docs.CaptureLine(string(body), at)
			}
			return
		}
		if isDoc {
			body = append(body, byte(c))
		}
	}
}
