package lexer_test

import (
	"strings"
	"testing"

	"nesclex/internal/diag"
	"nesclex/internal/dialect"
	"nesclex/internal/lexer"
	"nesclex/internal/source"
	"nesclex/internal/token"
	"nesclex/internal/trace"
)

func TestFileStack(t *testing.T) {
	fs := source.NewFileSet()
	outer := fs.Get(fs.AddVirtual("App.nc", []byte("a\nb\nc")))
	inner := fs.Get(fs.AddVirtual("/usr/include/x.h", []byte("h\n")))

	s := lexer.New(lexer.Options{})
	s.Start(dialect.Component)
	if !s.Toplevel().IsDummy() || s.Depth() != 0 {
		t.Fatalf("fresh session: toplevel %v depth %d", s.Toplevel(), s.Depth())
	}
	if c := s.ReadChar(); c != lexer.EOF {
		t.Fatalf("read without input = %q", rune(c))
	}

	s.EnterFile(outer, false)
	s.ReadChar() // a
	s.ReadChar() // \n
	if s.Last.Line != 2 {
		t.Fatalf("line = %d", s.Last.Line)
	}

	s.EnterFile(inner, true)
	if s.Depth() != 2 || s.Last.File != "/usr/include/x.h" || s.Last.Line != 1 || !s.Last.InSystemHeader {
		t.Fatalf("inside include: %+v depth %d", s.Last, s.Depth())
	}
	if s.File() != inner {
		t.Fatal("File() must return the active file")
	}
	s.ReadChar()
	s.ReadChar()
	if c := s.ReadChar(); c != lexer.EOF {
		t.Fatalf("expected EOF at end of include, got %q", rune(c))
	}

	if !s.LeaveFile() {
		t.Fatal("LeaveFile must resume the includer")
	}
	if s.Last.File != "App.nc" || s.Last.Line != 2 || s.Last.InSystemHeader {
		t.Fatalf("resumed at %+v", s.Last)
	}
	if c := s.ReadChar(); c != 'b' {
		t.Fatalf("resumed read = %q", rune(c))
	}
	if top := s.Toplevel(); top.File != "App.nc" || top.Line != 1 {
		t.Fatalf("toplevel = %v", top)
	}
	if s.LeaveFile() {
		t.Fatal("leaving the outermost file must report false")
	}
	if s.LeaveFile() {
		t.Fatal("LeaveFile with no input must report false")
	}

	s.Start(dialect.C)
	if !s.Toplevel().IsDummy() || s.Last != s.Dummy() || s.Dialect() != dialect.C {
		t.Fatalf("Start must reset the session: %+v", s.Last)
	}
}

func TestInstanceContainer(t *testing.T) {
	s, _ := makeTestSession(dialect.Any, "x y")
	s.EnterInstance(7)
	tok, _ := s.Next()
	snap := source.MakeLocation(s.Last)
	s.LeaveInstance()
	next, _ := s.Next()
	if tok.Loc.Container != 7 || !tok.Loc.HasContainer() {
		t.Fatalf("instantiated token loc = %+v", tok.Loc)
	}
	if next.Loc.HasContainer() {
		t.Fatalf("token after LeaveInstance = %+v", next.Loc)
	}
	if snap.Container != 7 {
		t.Fatal("snapshot must not follow Last")
	}
}

func TestLineMarkers(t *testing.T) {
	src := strings.Join([]string{
		`# 1 "BlinkC.nc"`,
		`a`,
		`# 40 "/opt/tinyos/tos/types/TinyError.h" 1 3`,
		`b`,
		`#line 7`,
		`c`,
		`#pragma once`,
		`d`,
		`# 3 "BlinkC.nc" 2`,
		`e`,
		`x # y`,
	}, "\n")
	s, bag := makeTestSession(dialect.Component, src)
	tokens := collectAllTokens(t, s)
	want := []struct {
		text string
		file string
		line uint32
		sys  bool
	}{
		{"a", "BlinkC.nc", 1, false},
		{"b", "/opt/tinyos/tos/types/TinyError.h", 40, true},
		{"c", "/opt/tinyos/tos/types/TinyError.h", 7, true},
		{"d", "/opt/tinyos/tos/types/TinyError.h", 9, true},
		{"e", "BlinkC.nc", 3, false},
		{"x", "BlinkC.nc", 4, false},
		{"#", "BlinkC.nc", 4, false},
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Text != w.text || tok.Loc.File != w.file || tok.Loc.Line != w.line || tok.Loc.InSystemHeader != w.sys {
			t.Fatalf("token %d = %q at %v sys=%v, want %q at %s:%d sys=%v",
				i, tok.Text, tok.Loc, tok.Loc.InSystemHeader, w.text, w.file, w.line, w.sys)
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestBadLineMarkerIsIgnored(t *testing.T) {
	s, bag := makeTestSession(dialect.C, "# 12 BlinkC.nc\na\n# 5 \"x.h\" 9\nb")
	tokens := collectAllTokens(t, s)
	if tokens[0].Text != "a" || tokens[0].Loc.Line != 2 || tokens[1].Loc.Line != 4 {
		t.Fatalf("tokens = %+v", tokens)
	}
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("diagnostics = %v", items)
	}
	for _, d := range items {
		if d.Code != diag.LexBadLineMarker || d.Severity != diag.SevWarning {
			t.Fatalf("diagnostic = %+v", d)
		}
	}
	if items[0].Primary.Line != 1 || items[1].Primary.Line != 3 {
		t.Fatalf("anchors = %v, %v", items[0].Primary, items[1].Primary)
	}
}

func TestSessionTraces(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.nc", []byte("# 9 \"u.nc\"\nint")))
	s := lexer.New(lexer.Options{Tracer: ring})
	s.Start(dialect.C)
	s.EnterFile(f, false)
	tok, err := s.Next()
	if err != nil || tok.RID != token.RIDInt {
		t.Fatalf("tok = %+v, %v", tok, err)
	}
	names := make([]string, 0)
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ","); got != "start,enter-file,line-marker" {
		t.Fatalf("events = %s", got)
	}
}
