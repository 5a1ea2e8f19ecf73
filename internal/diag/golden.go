package diag

import (
	"cmp"
	"slices"
	"strings"

	"nesclex/internal/source"
)

// shortLine is one rendered line of short output.
type shortLine struct {
	file string
	line uint32
	code Code
	text string
}

// FormatShortDiagnostics renders one line per diagnostic (and per note when
// includeNotes is set), ordered by location:
//
//	<file>:<line> <SEV> <CODE>: <message>
//
// The output is stable and suited to golden files and grep.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	lines := make([]shortLine, 0, len(diags))
	add := func(loc source.Location, sev string, code Code, msg string) {
		lines = append(lines, shortLine{
			file: loc.File,
			line: loc.Line,
			code: code,
			text: loc.String() + " " + sev + " " + code.ID() + ": " + msg,
		})
	}
	for _, d := range diags {
		add(d.Primary, d.Severity.String(), d.Code, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				add(n.Loc, "NOTE", d.Code, n.Msg)
			}
		}
	}
	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(cmp.Compare(a.file, b.file), cmp.Compare(a.line, b.line), cmp.Compare(a.code, b.code))
	})

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
