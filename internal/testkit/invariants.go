// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"nesclex/internal/source"
	"nesclex/internal/token"
)

// CheckTokenInvariants runs the structural invariants of a token stream
// lexed from one file without line markers:
// 1) the stream is non-empty and ends with exactly one EOF
// 2) every span belongs to sf and lies within its content
// 3) spans are ordered and do not overlap
// 4) lines never decrease and every location names the same file
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd, prevLine uint32
	for i, tok := range tokens {
		isLast := i == len(tokens)-1
		if tok.IsEOF() != isLast {
			return fmt.Errorf("token %d: EOF at position %d of %d", i, i, len(tokens))
		}
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %d: span points to file %d, want %d", i, tok.Span.File, sf.ID)
		}
		if tok.Span.End < tok.Span.Start || tok.Span.End > lenContent {
			return fmt.Errorf("token %d: span %v outside content of %d bytes", i, tok.Span, lenContent)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, tok.Span, prevEnd)
		}
		if tok.Loc.File != sf.Path {
			return fmt.Errorf("token %d: location file %q, want %q", i, tok.Loc.File, sf.Path)
		}
		if tok.Loc.Line < prevLine {
			return fmt.Errorf("token %d: line %d after line %d", i, tok.Loc.Line, prevLine)
		}
		prevEnd, prevLine = tok.Span.End, tok.Loc.Line
	}
	return nil
}
