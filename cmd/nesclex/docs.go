package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nesclex/internal/diagfmt"
	"nesclex/internal/driver"
)

var docsCmd = &cobra.Command{
	Use:   "docs [flags] path...",
	Short: "Extract documentation comments",
	Long: `Docs lexes each file and prints every /** */ and /// documentation
comment split into its short summary and long body, together with the
token that follows it`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocs,
}

func init() {
	docsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	docsCmd.Flags().String("dialect", "", "force a dialect (c|interface|component|implementation|any)")
	docsCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|json|sarif)")
}

func runDocs(cmd *cobra.Command, args []string) (err error) {
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
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
	fs, results, err := lexInputs(cmd.Context(), "docs", files, s)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	hasErrors, err := printDiagnostics(os.Stderr, diagFormat, results, fs, s)
	if err != nil {
		return err
	}

	var docs []driver.DocEntry
	for _, r := range results {
		docs = append(docs, r.Docs...)
	}
	if format == "json" {
		err = diagfmt.FormatDocsJSON(cmd.OutOrStdout(), docs, s.pathMode)
	} else {
		useColor, _ := readColor(cmd.Root().PersistentFlags().Lookup("color").Value.String(), os.Stdout)
		err = diagfmt.FormatDocsPretty(cmd.OutOrStdout(), docs, s.pathMode, useColor)
	}
	if err != nil {
		return err
	}
	s.reportTimings(cmd.ErrOrStderr())
	if hasErrors {
		return errDiagnostics
	}
	return nil
}
