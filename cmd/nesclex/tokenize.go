package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nesclex/internal/diagfmt"
	"nesclex/internal/driver"
	"nesclex/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path...",
	Short: "Tokenize nesC sources and C headers",
	Long: `Tokenize reads each file (directories are searched for sources known to
nesclex.toml) in its dialect and prints the resulting tokens`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("dialect", "", "force a dialect (c|interface|component|implementation|any)")
	tokenizeCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|json|sarif)")
}

func runTokenize(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	diagFormat, err := diagnosticsFormat(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err != nil) }()

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	files, err := expandInputs(args, s.driver)
	if err != nil {
		return err
	}

	fs, results, err := lexInputs(cmd.Context(), "tokenize", files, s)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	hasErrors, err := printDiagnostics(os.Stderr, diagFormat, results, fs, s)
	if err != nil {
		return err
	}

	if err := writeTokens(cmd, format, results, fs); err != nil {
		return err
	}
	s.reportTimings(cmd.ErrOrStderr())
	if hasErrors {
		return errDiagnostics
	}
	return nil
}

func writeTokens(cmd *cobra.Command, format string, results []*driver.FileResult, fs *source.FileSet) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if len(results) == 1 {
			return diagfmt.FormatTokensJSON(out, results[0].Tokens, fs)
		}
		return diagfmt.FormatResultsJSON(out, results, fs)
	case "msgpack":
		if len(results) == 1 {
			return diagfmt.FormatTokensMsgpack(out, results[0].Tokens, fs)
		}
		return diagfmt.FormatResultsMsgpack(out, results, fs)
	}
	for _, r := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(out, "== %s (%s, %s)\n", r.Path, r.Dialect, r.DialectReason); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTokensPretty(out, r.Tokens, fs); err != nil {
			return err
		}
	}
	return nil
}
