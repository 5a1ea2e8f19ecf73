package source

import "fmt"

// Location is a point in source text. It is a plain value: copying it
// snapshots it, so callers may keep a Location while the lexer keeps
// advancing its own.
type Location struct {
	File           string // интернированное имя файла
	Container      DeclID // только для инстанцированного кода
	Line           uint32
	InSystemHeader bool
}

// NewLocation builds a fresh location with no container.
func NewLocation(filename string, line uint32) Location {
	return Location{File: filename, Line: line}
}

// MakeLocation returns a snapshot of l.
func MakeLocation(l Location) Location {
	return l
}

// WithContainer returns a copy of l attributed to the instantiated declaration id.
func (l Location) WithContainer(id DeclID) Location {
	l.Container = id
	return l
}

// HasContainer reports whether l belongs to instantiated code.
func (l Location) HasContainer() bool {
	return l.Container != NoDecl
}

// IsDummy reports whether l carries no real file.
func (l Location) IsDummy() bool {
	return l.File == ""
}

func (l Location) String() string {
	if l.IsDummy() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}
