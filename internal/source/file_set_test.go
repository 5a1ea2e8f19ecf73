package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("Blink.nc", []byte("module BlinkC {}"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("Blink.nc", []byte("module BlinkC { uses interface Boot; }"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// Latest возвращает новую версию
	latestID, exists := fs.Latest("./Blink.nc")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}

	// старый файл все еще доступен
	if string(fs.Get(id1).Content) != "module BlinkC {}" {
		t.Errorf("first version lost: %q", fs.Get(id1).Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.h", []byte("int a;\nint b;\n\nint c;"))
	f := fs.Get(id)

	want := []uint32{6, 13, 14}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
		}
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag not set")
	}
	if f.IsSystemHeader() {
		t.Errorf("virtual file must not be a system header")
	}
}

func TestLoadNormalizesAndMarksSystemHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stdint.h")
	content := []byte("\xEF\xBB\xBFtypedef int int16_t;\r\ntypedef long int32_t;\r\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path, FileSystemHeader)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "typedef int int16_t;\ntypedef long int32_t;\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if !f.IsSystemHeader() {
		t.Errorf("expected system header flag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.nc"), 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.nc", []byte("event void\nBoot.booted()\n{}"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 11, End: 15})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 5}) {
		t.Errorf("Resolve = %v..%v", start, end)
	}
	// перевод строки принадлежит строке, которую он завершает
	nl, _ := fs.Resolve(Span{File: id, Start: 10, End: 10})
	if nl.Line != 1 || nl.Col != 11 {
		t.Errorf("newline resolved to %v, want 1:11", nl)
	}

	if f.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", f.LineCount())
	}
	cases := map[uint32]string{0: "", 1: "event void", 2: "Boot.booted()", 3: "{}", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestUnderDir(t *testing.T) {
	cases := []struct {
		path, dir string
		want      bool
	}{
		{"/usr/include/stdio.h", "/usr/include", true},
		{"/usr/include/sys/types.h", "/usr/include/", true},
		{"/usr/includex/a.h", "/usr/include", false},
		{"tos/lib/timer/Timer.nc", "tos/lib", true},
		{"apps/Blink/BlinkC.nc", "tos", false},
		{"apps/Blink/BlinkC.nc", ".", true},
		{"../other/x.h", ".", false},
	}
	for _, tc := range cases {
		if got := UnderDir(tc.path, tc.dir); got != tc.want {
			t.Errorf("UnderDir(%q, %q) = %v, want %v", tc.path, tc.dir, got, tc.want)
		}
	}
}

func TestSpan(t *testing.T) {
	sp := Span{File: 2, Start: 4, End: 9}
	if sp.Len() != 5 || !sp.Contains(4) || sp.Contains(9) {
		t.Fatalf("span %v: len %d", sp, sp.Len())
	}
	if sp.String() != "#2[4,9)" {
		t.Fatalf("String() = %q", sp.String())
	}
	if (Span{Start: 3, End: 1}).Len() != 0 {
		t.Fatal("inverted span must have zero length")
	}
}
