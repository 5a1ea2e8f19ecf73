package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nesclex/internal/dialect"
	"nesclex/internal/token"
)

// FormatKeywordTable prints one row per spelling and one column per
// dialect, marking where the spelling is reserved.
func FormatKeywordTable(w io.Writer, keywords []token.KeywordEntry, useColor bool) error {
	on := color.New(color.FgGreen)
	head := color.New(color.Bold)
	if useColor {
		on.EnableColor()
		head.EnableColor()
	} else {
		on.DisableColor()
		head.DisableColor()
	}

	kinds := dialect.All()
	spellW := runewidth.StringWidth("spelling")
	ridW := runewidth.StringWidth("rid")
	for _, kw := range keywords {
		spellW = max(spellW, runewidth.StringWidth(kw.Spelling))
		ridW = max(ridW, runewidth.StringWidth(kw.RID.String()))
	}

	var hdr strings.Builder
	hdr.WriteString(runewidth.FillRight("spelling", spellW) + "  " + runewidth.FillRight("rid", ridW))
	for _, k := range kinds {
		hdr.WriteString("  " + k.String())
	}
	if _, err := fmt.Fprintln(w, head.Sprint(hdr.String())); err != nil {
		return err
	}

	for _, kw := range keywords {
		var row strings.Builder
		row.WriteString(runewidth.FillRight(kw.Spelling, spellW) + "  " + runewidth.FillRight(kw.RID.String(), ridW))
		for _, k := range kinds {
			cell := "-"
			if kw.Enabled.Has(k) {
				cell = on.Sprint("x")
			}
			// выравниваем по ширине заголовка колонки
			row.WriteString("  " + cell + strings.Repeat(" ", runewidth.StringWidth(k.String())-1))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
