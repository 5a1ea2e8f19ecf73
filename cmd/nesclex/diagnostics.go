package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nesclex/internal/diag"
	"nesclex/internal/diagfmt"
	"nesclex/internal/driver"
	"nesclex/internal/source"
	"nesclex/internal/version"
)

// diagnosticsFormat reads and validates the command's --diagnostics flag.
func diagnosticsFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return "", fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch format {
	case "pretty", "json", "sarif":
		return format, nil
	}
	return "", fmt.Errorf("unknown diagnostics format: %s (expected pretty|json|sarif)", format)
}

// collectDiagnostics merges the per-file bags into one sorted list.
func collectDiagnostics(results []*driver.FileResult) *diag.Bag {
	total := 0
	for _, r := range results {
		if r != nil && r.Bag != nil {
			total += r.Bag.Len()
		}
	}
	all := diag.NewBag(total)
	for _, r := range results {
		if r != nil && r.Bag != nil {
			all.Merge(r.Bag)
		}
	}
	all.Sort()
	return all
}

// printDiagnostics writes diagnostics to w in format (pretty, json or
// sarif) and reports whether any of them is an error. Warnings are hidden
// in quiet mode.
func printDiagnostics(w io.Writer, format string, results []*driver.FileResult, fs *source.FileSet, s *runSettings) (bool, error) {
	bag := collectDiagnostics(results)
	items := bag.Items()
	if s.quiet {
		errs := items[:0:0]
		for _, d := range items {
			if d.Severity >= diag.SevError {
				errs = append(errs, d)
			}
		}
		items = errs
	}
	var err error
	switch format {
	case "", "pretty":
		if len(items) > 0 {
			err = diagfmt.Pretty(w, items, fs, diagfmt.PrettyOpts{
				Color:     s.color,
				Context:   1,
				PathMode:  s.pathMode,
				ShowNotes: true,
			})
		}
	case "json":
		err = diagfmt.JSON(w, items, diagfmt.JSONOpts{PathMode: s.pathMode, Max: s.maxDiags, IncludeNotes: true})
	case "sarif":
		err = diagfmt.Sarif(w, items, diagfmt.SarifRunMeta{
			ToolName:       "nesclex",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		err = fmt.Errorf("unknown diagnostics format: %s", format)
	}
	return bag.HasErrors(), err
}
