package fuzztests

import (
	"bytes"
	"errors"
	"testing"

	"nesclex/internal/diag"
	"nesclex/internal/dialect"
	"nesclex/internal/doc"
	"nesclex/internal/lexer"
	"nesclex/internal/source"
	"nesclex/internal/testkit"
	"nesclex/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzSessionTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		for _, d := range dialect.All() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.nc", input))

			bag := diag.NewBag(64)
			s := lexer.New(lexer.Options{Reporter: diag.BagReporter{Bag: bag}, MaxTokenLength: 256})
			s.Start(d)
			s.EnterFile(file, false)

			// каждый токен съедает хотя бы байт, плюс один EOF
			limit := len(input) + 1
			var tokens []token.Token
			for n := 0; ; n++ {
				if n > limit {
					t.Fatalf("%s: more than %d tokens from %d bytes", d, limit, len(input))
				}
				tok, err := s.Next()
				if err != nil {
					if !errors.Is(err, lexer.ErrUnterminatedComment) {
						t.Fatalf("%s: unexpected fatal error %v", d, err)
					}
					continue
				}
				tokens = append(tokens, tok)
				if tok.IsEOF() {
					break
				}
			}
			// line markers legitimately move lines and files
			if bytes.IndexByte(input, '#') < 0 {
				if err := testkit.CheckTokenInvariants(tokens, file); err != nil {
					t.Fatalf("%s: %v", d, err)
				}
			}
		}
	})
}

func FuzzReadUnread(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.h", input))

		s := lexer.New(lexer.Options{})
		s.Start(dialect.C)
		s.EnterFile(file, false)

		for i := 0; ; i++ {
			before := s.Last
			c := s.ReadChar()
			if c == lexer.EOF {
				break
			}
			if i%3 == 0 {
				s.UnreadChar(c)
				if s.Last != before {
					t.Fatalf("unread of %q moved location from %v to %v", c, before, s.Last)
				}
				if again := s.ReadChar(); again != c {
					t.Fatalf("re-read %q, want %q", again, c)
				}
			}
		}
		if s.Last.Line == 0 {
			t.Fatal("line counter wrapped")
		}
	})
}

func FuzzSeparate(f *testing.F) {
	for _, s := range []string{"", "Short. Long.", "a\n\nb", "no boundary", "  \n\n x", "e.g.x. y"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		short, long := doc.Separate(raw)
		if len(short)+len(long) > len(raw) {
			t.Fatalf("Separate(%q) grew the text: %q / %q", raw, short, long)
		}
		if cleaned := doc.Clean(raw); len(cleaned) > len(raw) {
			t.Fatalf("Clean(%q) grew the text: %q", raw, cleaned)
		}
	})
}
