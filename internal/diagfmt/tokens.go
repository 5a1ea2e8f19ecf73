package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"nesclex/internal/driver"
	"nesclex/internal/source"
	"nesclex/internal/token"
)

// TokenOutput is the serialized form of a token.
type TokenOutput struct {
	Kind   string `json:"kind" msgpack:"kind"`
	RID    string `json:"rid,omitempty" msgpack:"rid,omitempty"`
	Text   string `json:"text,omitempty" msgpack:"text,omitempty"`
	File   string `json:"file" msgpack:"file"`
	Line   uint32 `json:"line" msgpack:"line"`
	Col    uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
	Start  uint32 `json:"start" msgpack:"start"`
	End    uint32 `json:"end" msgpack:"end"`
	System bool   `json:"system,omitempty" msgpack:"system,omitempty"`
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			File:   tok.Loc.File,
			Line:   tok.Loc.Line,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			System: tok.Loc.InSystemHeader,
		}
		if tok.Kind == token.Keyword {
			to.RID = tok.RID.String()
		}
		if fs != nil && int(tok.Span.File) < fs.Len() {
			start, _ := fs.Resolve(tok.Span)
			to.Col = start.Col
		}
		out = append(out, to)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, to := range tokenOutputs(tokens, fs) {
		if _, err := fmt.Fprintf(w, "%3d: %-8s", i+1, to.Kind); err != nil {
			return err
		}
		if to.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", to.Text); err != nil {
				return err
			}
		}
		if to.RID != "" {
			if _, err := fmt.Fprintf(w, " [%s]", to.RID); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %s:%d", to.File, to.Line); err != nil {
			return err
		}
		if to.Col != 0 {
			if _, err := fmt.Fprintf(w, ":%d", to.Col); err != nil {
				return err
			}
		}
		if to.System {
			if _, err := fmt.Fprint(w, " (system)"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, fs))
}

// FormatTokensMsgpack writes the tokens as one msgpack array.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs))
}

// FileTokensOutput groups the tokens of one file for multi-file dumps.
type FileTokensOutput struct {
	Path    string        `json:"path" msgpack:"path"`
	Dialect string        `json:"dialect" msgpack:"dialect"`
	System  bool          `json:"system,omitempty" msgpack:"system,omitempty"`
	Cached  bool          `json:"cached,omitempty" msgpack:"cached,omitempty"`
	Tokens  []TokenOutput `json:"tokens" msgpack:"tokens"`
}

func fileTokensOutputs(results []*driver.FileResult, fs *source.FileSet) []FileTokensOutput {
	out := make([]FileTokensOutput, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		out = append(out, FileTokensOutput{
			Path:    r.Path,
			Dialect: r.Dialect.String(),
			System:  r.SystemHeader,
			Cached:  r.Cached,
			Tokens:  tokenOutputs(r.Tokens, fs),
		})
	}
	return out
}

// FormatResultsJSON writes every file's tokens as one JSON array.
func FormatResultsJSON(w io.Writer, results []*driver.FileResult, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fileTokensOutputs(results, fs))
}

// FormatResultsMsgpack is FormatResultsJSON in msgpack.
func FormatResultsMsgpack(w io.Writer, results []*driver.FileResult, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(fileTokensOutputs(results, fs))
}
