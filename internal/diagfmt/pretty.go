package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nesclex/internal/diag"
	"nesclex/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, marker *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Faint),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		marker: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.marker} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает
//
//	<path>:<line>: <SEV> <CODE>: <Message>
//
// затем строки контекста из fs (если файл известен), затем Notes.
// Ожидается отсортированный срез.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i := range diags {
		d := &diags[i]
		if err := prettyOne(w, p, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, p palette, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	sev := p.severity(d.Severity)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprint(locationString(d.Primary, opts.PathMode)),
		sev.Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message); err != nil {
		return err
	}
	if err := writeContext(w, p, d.Primary, fs, opts); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		if _, err := fmt.Fprintf(w, "  %s %s: %s\n", p.info.Sprint("note"),
			locationString(n.Loc, opts.PathMode), n.Msg); err != nil {
			return err
		}
	}
	return nil
}

func locationString(loc source.Location, mode PathMode) string {
	if loc.IsDummy() {
		return "<unknown>"
	}
	s := formatPath(loc.File, mode) + ":" + strconv.FormatUint(uint64(loc.Line), 10)
	if loc.HasContainer() {
		s += fmt.Sprintf(" (instance #%d)", loc.Container)
	}
	return s
}

// writeContext prints the lines around loc, marking loc's own line.
func writeContext(w io.Writer, p palette, loc source.Location, fs *source.FileSet, opts PrettyOpts) error {
	if fs == nil || loc.IsDummy() || loc.Line == 0 || opts.Context < 0 {
		return nil
	}
	f, ok := fs.GetByPath(loc.File)
	if !ok {
		return nil
	}
	lines := uint32(f.LineCount()) // #nosec G115 -- files are bounded to uint32 bytes
	if loc.Line > lines {
		return nil
	}
	ctx := uint32(opts.Context) // #nosec G115 -- checked non-negative above
	first := loc.Line - min(ctx, loc.Line-1)
	last := min(loc.Line+ctx, lines)
	gw := len(strconv.FormatUint(uint64(last), 10))

	for n := first; n <= last; n++ {
		text := strings.ReplaceAll(f.GetLine(n), "\t", "    ")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, max(opts.Width-gw-4, 8), "...")
		}
		mark := " "
		if n == loc.Line {
			mark = p.marker.Sprint(">")
		}
		num := fmt.Sprintf("%*d", gw, n)
		if _, err := fmt.Fprintf(w, "%s%s | %s\n", mark, p.gutter.Sprint(num), text); err != nil {
			return err
		}
	}
	return nil
}
