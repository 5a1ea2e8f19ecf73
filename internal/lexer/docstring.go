package lexer

import "nesclex/internal/source"

// LatestDocstring consumes the pending docstring and returns its short and
// long parts with the location where it was captured. With nothing pending
// it returns ("", "", nil).
func (s *Session) LatestDocstring() (short, long string, loc *source.Location) {
	d, ok := s.docs.Take()
	if !ok {
		return "", "", nil
	}
	short, long = d.Split()
	at := source.MakeLocation(d.Loc)
	return short, long, &at
}

// Docstring returns the raw pending docstring without consuming it.
func (s *Session) Docstring() (string, bool) {
	return s.docs.Peek()
}
