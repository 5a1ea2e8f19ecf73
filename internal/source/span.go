package source

import "fmt"

// Span is a half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Len is the number of bytes covered.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether off lies inside s.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("#%d[%d,%d)", s.File, s.Start, s.End)
}
