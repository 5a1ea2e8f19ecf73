package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nesclex/internal/dialect"
	"nesclex/internal/diagfmt"
	"nesclex/internal/lexer"
	"nesclex/internal/token"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [flags] [spelling...]",
	Short: "Show reserved identifiers per dialect",
	Long: `Keywords prints the keyword table. With spellings given, it resolves each
one in the chosen dialect instead`,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().String("dialect", "", "only keywords reserved in this dialect")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor, err := readColor(colorFlag, os.Stdout)
	if err != nil {
		return err
	}
	dialectFlag, _ := cmd.Flags().GetString("dialect")
	d := dialect.Any
	filter := dialectFlag != ""
	if filter {
		if d, err = dialect.Parse(dialectFlag); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		s := lexer.New(lexer.Options{})
		s.Start(d)
		for _, spelling := range args {
			rid := s.Resolve(spelling)
			if rid == token.RIDUnused {
				fmt.Fprintf(out, "%s: identifier in %s\n", spelling, d)
				continue
			}
			fmt.Fprintf(out, "%s: %s in %s\n", spelling, rid, d)
		}
		return nil
	}

	keywords := token.Keywords()
	if filter {
		kept := keywords[:0]
		for _, kw := range keywords {
			if kw.Enabled.Has(d) {
				kept = append(kept, kw)
			}
		}
		keywords = kept
	}
	return diagfmt.FormatKeywordTable(out, keywords, useColor)
}
