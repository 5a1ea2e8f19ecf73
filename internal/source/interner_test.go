package source

import (
	"sync"
	"testing"
	"unsafe"
)

func TestInternerSharesNames(t *testing.T) {
	in := NewInterner()
	if in.Len() != 0 || in.Name("") != "" {
		t.Fatal("empty name must not be stored")
	}

	buf := []byte("tos/system/MainC.nc")
	a := in.Name(string(buf))
	b := in.Name("tos/system/MainC.nc")
	if a != b || unsafe.StringData(a) != unsafe.StringData(b) {
		t.Fatal("expected one shared copy")
	}
	in.Name("x.h")
	if got := in.Names(); len(got) != 2 || got[0] != "tos/system/MainC.nc" || got[1] != "x.h" {
		t.Fatalf("Names() = %v", got)
	}
}

func TestInternerConcurrent(t *testing.T) {
	in := NewInterner()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range []string{"a.nc", "b.h", "a.nc"} {
				in.Name(n)
			}
		}()
	}
	wg.Wait()
	if in.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", in.Len())
	}
}
