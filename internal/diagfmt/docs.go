package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"nesclex/internal/driver"
)

// DocOutput is the serialized form of an extracted docstring.
type DocOutput struct {
	File      string `json:"file"`
	Line      uint32 `json:"line"`
	Container uint32 `json:"container,omitempty"`
	Token     string `json:"token"`
	TokenLine uint32 `json:"token_line"`
	Short     string `json:"short"`
	Long      string `json:"long,omitempty"`
}

func docOutputs(docs []driver.DocEntry, mode PathMode) []DocOutput {
	out := make([]DocOutput, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocOutput{
			File:      formatPath(d.Loc.File, mode),
			Line:      d.Loc.Line,
			Container: uint32(d.Loc.Container),
			Token:     d.Token,
			TokenLine: d.TokenLoc.Line,
			Short:     d.Short,
			Long:      d.Long,
		})
	}
	return out
}

// FormatDocsPretty prints each docstring as a heading line followed by the
// indented long part.
func FormatDocsPretty(w io.Writer, docs []driver.DocEntry, mode PathMode, useColor bool) error {
	head := color.New(color.Bold)
	where := color.New(color.Faint)
	if useColor {
		head.EnableColor()
		where.EnableColor()
	} else {
		head.DisableColor()
		where.DisableColor()
	}
	for _, d := range docOutputs(docs, mode) {
		if _, err := fmt.Fprintf(w, "%s %s\n", where.Sprintf("%s:%d %s", d.File, d.Line, d.Token), head.Sprint(d.Short)); err != nil {
			return err
		}
		if d.Long == "" {
			continue
		}
		for _, line := range strings.Split(d.Long, "\n") {
			if _, err := fmt.Fprintf(w, "    %s\n", strings.TrimRight(line, " \t")); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatDocsJSON writes docstrings as a JSON array.
func FormatDocsJSON(w io.Writer, docs []driver.DocEntry, mode PathMode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(docOutputs(docs, mode))
}
