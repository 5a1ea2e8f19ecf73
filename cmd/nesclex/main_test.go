package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nesclex/internal/diagfmt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// project creates a temporary project with nesclex.toml and chdirs into it.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["nesclex.toml"] = "[lex]\ndefault_dialect = \"c\"\njobs = 2\n"
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
	return dir
}

func TestReadModes(t *testing.T) {
	if m, err := readTristate("ui", " ON "); err != nil || m != triOn {
		t.Fatalf("readTristate(ON) = %v, %v", m, err)
	}
	if _, err := readTristate("ui", "sometimes"); err == nil {
		t.Fatal("expected error for bad ui mode")
	}
	if m, err := readTristate("cache", "config", "config"); err != nil || m != triAuto {
		t.Fatalf("readTristate(config) = %v, %v", m, err)
	}
	if _, err := readTristate("color", "config"); err == nil {
		t.Fatal("config is only an alias where allowed")
	}
	if on, err := readColor("off", os.Stdout); err != nil || on {
		t.Fatalf("readColor(off) = %v, %v", on, err)
	}
	if _, err := readColor("rainbow", os.Stdout); err == nil {
		t.Fatal("expected error for bad color mode")
	}
	if (&runSettings{ui: triOff}).showProgress(10) {
		t.Fatal("ui off must never show progress")
	}
}

func TestKeywordsResolve(t *testing.T) {
	out, err := execute(t, "keywords", "--dialect", "c", "command", "__inline__", "x")
	if err != nil {
		t.Fatal(err)
	}
	want := "command: identifier in c\n__inline__: inline in c\nx: identifier in c\n"
	if out != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRejectsUnknownDiagnosticsFormat(t *testing.T) {
	project(t, map[string]string{"a.nc": "int x;\n"})
	t.Cleanup(func() {
		_ = tokenizeCmd.Flags().Set("diagnostics", "pretty")
		_ = docsCmd.Flags().Set("diagnostics", "pretty")
	})
	for _, name := range []string{"tokenize", "docs"} {
		_, err := execute(t, name, "--ui", "off", "--format", "json", "--diagnostics", "xml", "a.nc")
		if err == nil || !strings.Contains(err.Error(), "unknown diagnostics format: xml") {
			t.Fatalf("%s: err = %v", name, err)
		}
	}
}

func TestTokenizeJSON(t *testing.T) {
	project(t, map[string]string{
		"BlinkC.nc": "module BlinkC {\n  uses interface Boot;\n}\nimplementation {\n  event void Boot.booted() { }\n}\n",
	})
	out, err := execute(t, "tokenize", "--ui", "off", "--format", "json", "BlinkC.nc")
	if err != nil {
		t.Fatal(err)
	}
	var tokens []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	var event *diagfmt.TokenOutput
	for i := range tokens {
		if tokens[i].Text == "event" {
			event = &tokens[i]
		}
	}
	if event == nil || event.Kind != "Keyword" || event.RID != "event" || event.Line != 5 {
		t.Fatalf("event token = %+v", event)
	}
	if last := tokens[len(tokens)-1]; last.Kind != "EOF" {
		t.Fatalf("last token = %+v", last)
	}
}

func TestTokenizeDirectoryFailsOnLexErrors(t *testing.T) {
	project(t, map[string]string{
		"src/Good.h": "int x;\n",
		"src/Bad.nc": "module Bad { }\n/* never closed\n",
	})
	out, err := execute(t, "tokenize", "--ui", "off", "--format", "pretty", "src")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("err = %v, want errDiagnostics", err)
	}
	if !strings.Contains(out, "== src/Bad.nc") || !strings.Contains(out, "== src/Good.h (c, ") {
		t.Fatalf("missing file headers:\n%s", out)
	}
}

func TestDocsJSON(t *testing.T) {
	project(t, map[string]string{
		"Boot.nc": "interface Boot {\n  /** Signalled when booted.\n   * Only once. */\n  event void booted();\n}\n",
	})
	out, err := execute(t, "docs", "--ui", "off", "--format", "json", "Boot.nc")
	if err != nil {
		t.Fatal(err)
	}
	var docs []diagfmt.DocOutput
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	if len(docs) != 1 || docs[0].Short != "Signalled when booted." || docs[0].Long != "Only once." || docs[0].Token != "event" {
		t.Fatalf("docs = %+v", docs)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "nesclex" || len(payload.Dialects) != 5 {
		t.Fatalf("payload = %+v", payload)
	}
}
