package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"nesclex/internal/config"
	"nesclex/internal/dialect"
	"nesclex/internal/diag"
	"nesclex/internal/token"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const blinkSrc = `/**
 * Toggles a LED. Runs forever.
 */
module BlinkC {
  uses interface Boot;
}
implementation {
  /// Started once.
  event void Boot.booted() { }
}
`

func TestTokenizeFilesMixedProject(t *testing.T) {
	dir := t.TempDir()
	blink := writeFile(t, dir, "BlinkC.nc", blinkSrc)
	header := writeFile(t, dir, "compat.h", "typedef int command;\nint event;\n")
	broken := writeFile(t, dir, "Broken.nc", "module Broken {\n/* open\n")
	missing := filepath.Join(dir, "Missing.nc")

	opts := Options{Config: config.Default(), Jobs: 2}
	_, results, err := TokenizeFiles(context.Background(), []string{blink, header, broken, missing}, opts)
	if err != nil {
		t.Fatalf("TokenizeFiles: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results", len(results))
	}

	b := results[0]
	if b.Dialect != dialect.Component || b.Fatal || b.Bag.Len() != 0 {
		t.Fatalf("BlinkC: dialect %v fatal %v diags %v", b.Dialect, b.Fatal, b.Bag.Items())
	}
	if len(b.Docs) != 2 {
		t.Fatalf("BlinkC docs = %+v", b.Docs)
	}
	if d := b.Docs[0]; d.Short != "Toggles a LED." || d.Long != "Runs forever." || d.Token != "module" || d.Loc.Line != 3 {
		t.Fatalf("first doc = %+v", d)
	}
	if d := b.Docs[1]; d.Short != "Started once." || d.Token != "event" || d.Loc.Line != 8 || d.TokenLoc.Line != 9 {
		t.Fatalf("second doc = %+v", d)
	}
	for _, tok := range b.Tokens {
		if tok.Text == "event" && tok.RID != token.RIDEvent {
			t.Fatalf("event in component = %+v", tok)
		}
	}

	h := results[1]
	if h.Dialect != dialect.C {
		t.Fatalf("header dialect = %v (%s)", h.Dialect, h.DialectReason)
	}
	for _, tok := range h.Tokens {
		if (tok.Text == "command" || tok.Text == "event") && tok.Kind != token.Ident {
			t.Fatalf("%s in C header = %v", tok.Text, tok.Kind)
		}
	}

	br := results[2]
	if !br.Fatal || br.ErrorCount() != 1 {
		t.Fatalf("Broken: fatal %v diags %v", br.Fatal, br.Bag.Items())
	}
	if d := br.Bag.Items()[0]; d.Code != diag.LexUnterminatedComment || d.Primary.Line != 2 || !strings.HasSuffix(d.Primary.File, "Broken.nc") {
		t.Fatalf("Broken diagnostic = %+v", d)
	}

	m := results[3]
	if m.ErrorCount() != 1 || m.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Fatalf("Missing: %v", m.Bag.Items())
	}
}

func TestChooseDialect(t *testing.T) {
	cfg := config.Default()
	impl := dialect.Implementation
	cases := []struct {
		name    string
		path    string
		content string
		opts    Options
		want    dialect.Kind
	}{
		{"forced", "x.nc", "interface Foo {}", Options{Config: cfg, Dialect: &impl}, dialect.Implementation},
		{"interface by content", "Timer.nc", "interface Timer<p> { }", Options{Config: cfg}, dialect.Interface},
		{"module by content", "App.nc", "module AppC { }", Options{Config: cfg}, dialect.Component},
		{"extension when inconclusive", "main.nc", "", Options{Config: cfg}, dialect.Component},
		{"default", "README", "", Options{Config: cfg}, dialect.C},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := chooseDialect(tc.path, []byte(tc.content), tc.opts)
			if got != tc.want || reason == "" {
				t.Fatalf("got %v (%q), want %v", got, reason, tc.want)
			}
		})
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "BlinkC.nc", blinkSrc)
	cache, err := OpenDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Config: config.Default(), Cache: cache}

	_, first, err := Tokenize(context.Background(), src, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := Tokenize(context.Background(), src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || !second.Cached {
		t.Fatalf("cached flags: first %v second %v", first.Cached, second.Cached)
	}
	if len(first.Tokens) != len(second.Tokens) || len(second.Docs) != 2 {
		t.Fatalf("cached result differs: %d vs %d tokens, %d docs", len(first.Tokens), len(second.Tokens), len(second.Docs))
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Fatalf("token %d: %+v vs %+v", i, first.Tokens[i], second.Tokens[i])
		}
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	_, third, err := Tokenize(context.Background(), src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("DropAll must invalidate entries")
	}
}

func TestSystemHeaderWarningsAreDropped(t *testing.T) {
	dir := t.TempDir()
	sys := writeFile(t, dir, "sys/include/regs.h", "# 12 junk\nint a; `\n")
	user := writeFile(t, dir, "app/regs.h", "# 12 junk\nint a;\n")

	cfg := config.Default()
	cfg.Headers.System = []string{filepath.Join(dir, "sys")}
	_, results, err := TokenizeFiles(context.Background(), []string{sys, user}, Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	s := results[0]
	if !s.SystemHeader || s.Bag.Len() != 1 || s.Bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("system header diagnostics = %v", s.Bag.Items())
	}
	u := results[1]
	if u.SystemHeader || u.Bag.Len() != 1 || u.Bag.Items()[0].Code != diag.LexBadLineMarker {
		t.Fatalf("user header diagnostics = %v", u.Bag.Items())
	}
}

func TestProgressEvents(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "A.nc", "module A {}"),
		writeFile(t, dir, "B.nc", "module B {}"),
		writeFile(t, dir, "c.h", "int c;"),
	}
	var mu sync.Mutex
	counts := map[ProgressStatus]int{}
	opts := Options{Config: config.Default(), Progress: func(ev ProgressEvent) {
		mu.Lock()
		counts[ev.Status]++
		mu.Unlock()
	}}
	if _, _, err := TokenizeFiles(context.Background(), paths, opts); err != nil {
		t.Fatal(err)
	}
	for _, st := range []ProgressStatus{ProgressQueued, ProgressWorking, ProgressDone} {
		if counts[st] != len(paths) {
			t.Fatalf("status %d seen %d times", st, counts[st])
		}
	}
}

func TestCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "A.nc", "module A {}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := TokenizeFiles(ctx, []string{path}, Options{Config: config.Default()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b/B.nc", "")
	writeFile(t, dir, "a.h", "")
	writeFile(t, dir, "notes.txt", "")
	files, err := ListSources(dir, Options{Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.h" || filepath.Base(files[1]) != "B.nc" {
		t.Fatalf("files = %v", files)
	}
}

func TestBlinkFixtures(t *testing.T) {
	opts := Options{Config: config.Default()}
	files, err := ListSources(filepath.Join("..", "..", "testdata", "blink"), opts)
	if err != nil {
		t.Fatal(err)
	}
	_, results, err := TokenizeFiles(context.Background(), files, opts)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]dialect.Kind{
		"BlinkAppC.nc":   dialect.Component,
		"BlinkC.nc":      dialect.Component,
		"Leds.nc":        dialect.Interface,
		"Timer.h":        dialect.C,
		"preprocessed.c": dialect.C,
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results for %v", len(results), files)
	}
	for _, res := range results {
		name := filepath.Base(res.Path)
		if res.Dialect != want[name] {
			t.Errorf("%s: dialect %v (%s), want %v", name, res.Dialect, res.DialectReason, want[name])
		}
		if res.ErrorCount() != 0 || res.Fatal {
			t.Errorf("%s: unexpected errors: %v", name, res.Bag.Items())
		}
		if name == "BlinkC.nc" {
			if len(res.Docs) != 2 || res.Docs[0].Short != "Toggles the LEDs at three rates." || res.Docs[0].Token != "module" {
				t.Errorf("BlinkC docs: %+v", res.Docs)
			}
		}
	}
}
