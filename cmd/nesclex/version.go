package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nesclex/internal/dialect"
	"nesclex/internal/version"
)

type versionInfo struct {
	Version     string
	GitCommit   string
	BuildDate   string
	Fingerprint string
}

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool        string   `json:"tool"`
	Version     string   `json:"version"`
	Dialects    []string `json:"dialects"`
	GitCommit   string   `json:"git_commit,omitempty"`
	BuildDate   string   `json:"build_date,omitempty"`
	Fingerprint string   `json:"cache_fingerprint,omitempty"`
}

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show nesclex build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := versionOptions{
			format:   strings.ToLower(versionFormat),
			showHash: versionShowHash || versionShowFull,
			showDate: versionShowDate || versionShowFull,
		}
		switch opts.format {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo()
		if opts.format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info, opts)
		}
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		if colorFlag == "off" {
			color.NoColor = true
		}
		renderVersionPretty(cmd.OutOrStdout(), info, opts)
		return nil
	},
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version:     v,
		GitCommit:   strings.TrimSpace(version.GitCommit),
		BuildDate:   strings.TrimSpace(version.BuildDate),
		Fingerprint: version.Fingerprint(),
	}
}

func dialectNames() []string {
	var names []string
	for _, d := range dialect.All() {
		names = append(names, d.String())
	}
	return names
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	fmt.Fprintf(out, "nesclex %s\n", version.Styled())
	fmt.Fprintf(out, "dialects: %s\n", strings.Join(dialectNames(), ", "))
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
	if opts.showHash && opts.showDate {
		fmt.Fprintf(out, "cache:  %s\n", info.Fingerprint)
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:     "nesclex",
		Version:  info.Version,
		Dialects: dialectNames(),
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	if opts.showHash && opts.showDate {
		payload.Fingerprint = info.Fingerprint
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
