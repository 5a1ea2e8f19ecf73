package doc

import (
	"strings"

	"nesclex/internal/source"
)

// Docstring is captured documentation text and where capture completed.
type Docstring struct {
	Text string
	Loc  source.Location
}

// Split separates the docstring into short and long parts.
func (d Docstring) Split() (short, long string) {
	return Separate(d.Text)
}

// Slot is the single pending-docstring cell of a lexical session.
type Slot struct {
	cur      Docstring
	pending  bool
	fromLine bool // последний захват пришёл из /// комментария
}

// Capture stores text as the pending docstring, replacing any previous one.
func (s *Slot) Capture(text string, loc source.Location) {
	s.cur = Docstring{Text: text, Loc: loc}
	s.pending = true
	s.fromLine = false
}

// CaptureLine stores the text of a line doc comment. A line doc that
// directly follows another pending line doc in the same file is appended to
// it instead of replacing it. A blank line doc only continues a run; on
// its own it captures nothing.
func (s *Slot) CaptureLine(text string, loc source.Location) {
	if s.pending && s.fromLine && s.cur.Loc.File == loc.File && s.cur.Loc.Line+1 == loc.Line {
		s.cur.Text += "\n" + text
		s.cur.Loc = loc
		return
	}
	// пустой /// не начинает новый docstring
	if strings.TrimSpace(text) == "" {
		return
	}
	s.Capture(text, loc)
	s.fromLine = true
}

// Peek returns the raw pending text without consuming it.
func (s *Slot) Peek() (string, bool) {
	if !s.pending {
		return "", false
	}
	return s.cur.Text, true
}

// Take consumes the pending docstring.
func (s *Slot) Take() (Docstring, bool) {
	if !s.pending {
		return Docstring{}, false
	}
	d := s.cur
	s.Reset()
	return d, true
}

// Pending reports whether a docstring waits to be taken.
func (s *Slot) Pending() bool { return s.pending }

// Reset drops the pending docstring, if any.
func (s *Slot) Reset() {
	*s = Slot{}
}
