package token

import (
	"nesclex/internal/source"
)

// Token is a single lexeme with the location it started at.
type Token struct {
	Kind Kind
	RID  RID // только для Keyword
	Text string
	Loc  source.Location
	Span source.Span
}

// IsKeyword reports whether the token is a reserved identifier.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }
