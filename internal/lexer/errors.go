package lexer

import (
	"errors"
	"fmt"

	"nesclex/internal/diag"
	"nesclex/internal/source"
)

var (
	// ErrUnterminatedComment is wrapped by the *Error returned when a block
	// comment reaches end of input.
	ErrUnterminatedComment = errors.New("unterminated comment")
	// ErrPushbackOverflow is wrapped by the panic value raised when more
	// than PushbackDepth characters are unread.
	ErrPushbackOverflow = errors.New("pushback overflow")
)

// Error is a fatal lexical error anchored at a source location.
type Error struct {
	Code diag.Code
	Loc  source.Location
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Loc, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Diagnostic converts the error into the single diagnostic reported for it.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Loc, e.Err.Error())
}
