package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"nesclex/internal/diag"
	"nesclex/internal/dialect"
	"nesclex/internal/driver"
	"nesclex/internal/lexer"
	"nesclex/internal/source"
	"nesclex/internal/token"
)

func lexString(t *testing.T, d dialect.Kind, name, src string) (*source.FileSet, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	s := lexer.New(lexer.Options{})
	s.Start(d)
	s.EnterFile(fs.Get(id), false)
	var out []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, tok)
		if tok.IsEOF() {
			return fs, out
		}
	}
}

func TestPrettyWithContext(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("BlinkC.nc", []byte("module BlinkC {\n  uses interface Boot;\n  `\n}\n"))
	diags := []diag.Diagnostic{
		diag.NewError(diag.LexUnknownChar, source.NewLocation("BlinkC.nc", 3), "unknown character '`'").
			WithNote(source.NewLocation("BlinkC.nc", 1), "in this module"),
		diag.New(diag.SevWarning, diag.LexBadLineMarker, source.Location{}, "ignoring line marker"),
	}

	var buf bytes.Buffer
	if err := Pretty(&buf, diags, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "BlinkC.nc:3: ERROR LEX1001: unknown character '`'\n" +
		" 2 |   uses interface Boot;\n" +
		">3 |   `\n" +
		" 4 | }\n" +
		"  note BlinkC.nc:1: in this module\n" +
		"<unknown>: WARNING LEX1004: ignoring line marker\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyTruncatesWideLines(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("w.h", []byte(strings.Repeat("x", 200)+"\n"))
	diags := []diag.Diagnostic{diag.NewError(diag.LexTokenTooLong, source.NewLocation("w.h", 1), "too long")}
	var buf bytes.Buffer
	if err := Pretty(&buf, diags, fs, PrettyOpts{PathMode: PathModeBasename, Width: 40}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[1], "...") || len(lines[1]) != 40 {
		t.Fatalf("context line = %q (%d columns)", lines[len(lines)-1], len(lines[len(lines)-1]))
	}
}

func TestJSONOutput(t *testing.T) {
	loc := source.NewLocation("/opt/tinyos/tos/Timer.h", 12).WithContainer(4)
	loc.InSystemHeader = true
	diags := []diag.Diagnostic{
		diag.NewError(diag.LexUnterminatedComment, loc, "unterminated comment"),
		diag.NewError(diag.LexUnknownChar, loc, "x"),
	}
	var buf bytes.Buffer
	if err := JSON(&buf, diags, JSONOpts{PathMode: PathModeBasename, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || !out.Truncated {
		t.Fatalf("count %d truncated %v", out.Count, out.Truncated)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1003" || d.Location.File != "Timer.h" || d.Location.Line != 12 || d.Location.Container != 4 || !d.Location.InSystemHeader {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestSarif(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.New(diag.SevWarning, diag.LexBadLineMarker, source.NewLocation("a.nc", 2), "bad marker"),
		diag.NewError(diag.LexUnterminatedComment, source.NewLocation("a.nc", 9), "unterminated comment"),
		diag.NewError(diag.LexUnterminatedComment, source.NewLocation("b.nc", 1), "unterminated comment"),
	}
	var buf bytes.Buffer
	if err := Sarif(&buf, diags, SarifRunMeta{ToolName: "nesclex", ToolVersion: "0.1.0", InvocationArgs: []string{"tokenize"}}); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatal(err)
	}
	run := log.Runs[0]
	if len(run.Tool.Driver.Rules) != 2 || len(run.Results) != 3 {
		t.Fatalf("rules %d results %d", len(run.Tool.Driver.Rules), len(run.Results))
	}
	if run.Results[0].Level != "warning" || run.Results[1].Locations[0].PhysicalLocation.Region.StartLine != 9 {
		t.Fatalf("results = %+v", run.Results)
	}
	if run.Invocations[0].ExecutionSuccessful {
		t.Fatal("errors must mark the invocation failed")
	}
}

func TestTokensPrettyAndSerialized(t *testing.T) {
	fs, tokens := lexString(t, dialect.Component, "t.nc", "async command int\n  x;")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[1] != `  2: Keyword  "command" [command] at t.nc:1:7` {
		t.Fatalf("line 2 = %q", lines[1])
	}
	if lines[3] != `  4: Ident    "x" at t.nc:2:3` {
		t.Fatalf("line 4 = %q", lines[3])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	var fromJSON []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := FormatTokensMsgpack(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	var fromMsgpack []TokenOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &fromMsgpack); err != nil {
		t.Fatal(err)
	}
	if len(fromJSON) != len(tokens) || len(fromMsgpack) != len(tokens) {
		t.Fatalf("json %d msgpack %d tokens %d", len(fromJSON), len(fromMsgpack), len(tokens))
	}
	if fromMsgpack[0].RID != "async" || fromJSON[2].RID != "int" {
		t.Fatalf("rids: %+v / %+v", fromMsgpack[0], fromJSON[2])
	}
}

func TestDocs(t *testing.T) {
	docs := []driver.DocEntry{{
		Short: "Boots.", Long: "Signalled once.\nNever again.",
		Loc:   source.NewLocation("/src/BlinkC.nc", 3), Token: "event",
		TokenLoc: source.NewLocation("/src/BlinkC.nc", 4),
	}}
	var buf bytes.Buffer
	if err := FormatDocsPretty(&buf, docs, PathModeBasename, false); err != nil {
		t.Fatal(err)
	}
	want := "BlinkC.nc:3 event Boots.\n    Signalled once.\n    Never again.\n"
	if buf.String() != want {
		t.Fatalf("docs:\n%q\nwant\n%q", buf.String(), want)
	}

	buf.Reset()
	if err := FormatDocsJSON(&buf, docs, PathModeBasename); err != nil {
		t.Fatal(err)
	}
	var out []DocOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].TokenLine != 4 || out[0].Short != "Boots." {
		t.Fatalf("json docs = %+v", out)
	}
}

func TestKeywordTable(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatKeywordTable(&buf, token.Keywords(), false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "spelling") || !strings.Contains(lines[0], "implementation") {
		t.Fatalf("header = %q", lines[0])
	}
	var command, intRow string
	for _, l := range lines[1:] {
		f := strings.Fields(l)
		switch f[0] {
		case "command":
			command = strings.Join(f[2:], " ")
		case "int":
			intRow = strings.Join(f[2:], " ")
		}
	}
	if command != "- - x x x" || intRow != "x x x x x" {
		t.Fatalf("command row %q, int row %q", command, intRow)
	}
}
