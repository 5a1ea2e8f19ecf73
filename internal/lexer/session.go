// Package lexer reads nesC source one byte at a time, tracks where the
// text came from, skips comments while collecting documentation comments,
// and resolves reserved identifiers for the session's dialect.
//
// A Session is single-threaded and owns all lexical state; run one
// Session per file when lexing in parallel.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"nesclex/internal/dialect"
	"nesclex/internal/doc"
	"nesclex/internal/source"
	"nesclex/internal/token"
	"nesclex/internal/trace"
)

// EOF is returned by ReadChar when the active input is exhausted.
const EOF = -1

// PushbackDepth is the number of characters that may be unread before the
// next ReadChar.
const PushbackDepth = 2

// input is one entry of the file stack: a file and the read position in it.
type input struct {
	file *source.File
	off  uint32
	end  uint32
	name string // интернированное имя
	line uint32 // строка на момент приостановки
	sys  bool
}

func newInput(f *source.File, name string, sys bool) *input {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: %s: %w", f.Path, err))
	}
	return &input{file: f, end: end, name: name, sys: sys}
}

// next returns the byte at the read position and advances past it.
func (in *input) next() (byte, bool) {
	if in.off >= in.end {
		return 0, false
	}
	b := in.file.Content[in.off]
	in.off++
	return b, true
}

// Session is a lexical session: one dialect, one file stack, one pending
// docstring.
type Session struct {
	// Last is the location of the next character to be read. It is advanced
	// in place; take a copy with source.MakeLocation to keep it.
	Last source.Location

	opts    Options
	names   *source.Interner
	dialect dialect.Kind

	in    *input
	stack []*input

	pushback [PushbackDepth]int
	npush    int

	docs     doc.Slot
	toplevel source.Location

	// scanner state
	bol     bool
	done    bool
	buf     []byte
	tooLong bool
}

// Init builds the static keyword table. It may be called any number of
// times and from several goroutines.
func Init() {
	token.InitTable()
}

// New creates a session. Call Start before reading.
func New(opts Options) *Session {
	Init()
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.MaxTokenLength <= 0 {
		opts.MaxTokenLength = DefaultMaxTokenLength
	}
	names := opts.Names
	if names == nil {
		names = source.NewInterner()
	}
	return &Session{opts: opts, names: names}
}

// Start fixes the dialect and resets every piece of per-session state.
func (s *Session) Start(d dialect.Kind) {
	if !d.Valid() {
		panic(fmt.Errorf("lexer: start with invalid dialect %d", d))
	}
	s.dialect = d
	s.Last = source.Location{}
	s.toplevel = source.Location{}
	s.in = nil
	s.stack = s.stack[:0]
	s.npush = 0
	s.docs.Reset()
	s.bol = true
	s.done = false
	s.buf = s.buf[:0]
	trace.Point(s.opts.Tracer, trace.ScopeLexeme, "start", d.String())
}

// Dialect returns the dialect fixed by Start.
func (s *Session) Dialect() dialect.Kind { return s.dialect }

// Resolve returns the reserved-identifier code of spelling in the session's
// dialect, or token.RIDUnused.
func (s *Session) Resolve(spelling string) token.RID {
	return token.Resolve(spelling, s.dialect)
}

// Dummy is the location of synthesized code: no file, line 0.
func (s *Session) Dummy() source.Location { return source.Location{} }

// Toplevel is line 1 of the first file entered since Start, or Dummy when
// no file was entered yet.
func (s *Session) Toplevel() source.Location { return s.toplevel }

// Depth reports how many files are open, the active one included.
func (s *Session) Depth() int {
	if s.in == nil {
		return 0
	}
	return len(s.stack) + 1
}

// File returns the file being read, or nil.
func (s *Session) File() *source.File {
	if s.in == nil {
		return nil
	}
	return s.in.file
}

// EnterFile suspends the current input and starts reading f at line 1.
// Pending pushback is discarded.
func (s *Session) EnterFile(f *source.File, systemHeader bool) {
	if s.in != nil {
		s.in.line = s.Last.Line
		s.in.sys = s.Last.InSystemHeader
		s.in.name = s.Last.File
		s.stack = append(s.stack, s.in)
	}
	s.in = newInput(f, s.names.Name(f.Path), systemHeader || f.IsSystemHeader())
	s.npush = 0
	s.bol = true
	s.Last.File = s.in.name
	s.Last.Line = 1
	s.Last.InSystemHeader = s.in.sys
	if s.toplevel.IsDummy() {
		s.toplevel = source.NewLocation(s.in.name, 1)
	}
	trace.Point(s.opts.Tracer, trace.ScopeLexeme, "enter-file", s.in.name)
}

// LeaveFile drops the active input. It reports whether an including file
// was resumed; after the outermost file is left ReadChar returns EOF.
func (s *Session) LeaveFile() bool {
	if s.in == nil {
		return false
	}
	trace.Point(s.opts.Tracer, trace.ScopeLexeme, "leave-file", s.Last.File)
	s.npush = 0
	if len(s.stack) == 0 {
		s.in = nil
		return false
	}
	s.in = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.Last.File = s.in.name
	s.Last.Line = s.in.line
	s.Last.InSystemHeader = s.in.sys
	return true
}

// SetLine applies a preprocessor line marker: the next line read is line
// of filename. An empty filename keeps the current one.
func (s *Session) SetLine(filename string, line uint32, systemHeader bool) {
	if filename != "" {
		s.Last.File = s.names.Name(filename)
	}
	s.Last.Line = line
	s.Last.InSystemHeader = systemHeader
	trace.Point(s.opts.Tracer, trace.ScopeLexeme, "line-marker", s.Last.String())
}

// EnterInstance attributes the following text to the instantiated
// declaration id.
func (s *Session) EnterInstance(id source.DeclID) {
	s.Last.Container = id
}

// LeaveInstance ends instantiated text.
func (s *Session) LeaveInstance() {
	s.Last.Container = source.NoDecl
}
