package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"nesclex/internal/config"
	"nesclex/internal/diagfmt"
	"nesclex/internal/dialect"
	"nesclex/internal/driver"
	"nesclex/internal/observ"
)

// runSettings is everything a lexing command needs, resolved from flags and
// nesclex.toml.
type runSettings struct {
	cfg      config.Config
	driver   driver.Options
	color    bool
	quiet    bool
	timings  bool
	pathMode diagfmt.PathMode
	ui       tristate
	maxDiags int
}

// tristate is the value of an auto|on|off flag.
type tristate uint8

const (
	triAuto tristate = iota
	triOn
	triOff
)

// readTristate parses an auto|on|off flag. The extra spellings mean auto.
func readTristate(flag, value string, autoNames ...string) (tristate, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "" || v == "auto" || slices.Contains(autoNames, v):
		return triAuto, nil
	case v == "on":
		return triOn, nil
	case v == "off":
		return triOff, nil
	}
	expected := append([]string{"auto"}, autoNames...)
	return triAuto, fmt.Errorf("invalid --%s value %q (expected %s|on|off)", flag, value, strings.Join(expected, "|"))
}

// resolve turns the flag into a decision, asking auto when needed.
func (t tristate) resolve(auto func() bool) bool {
	switch t {
	case triOn:
		return true
	case triOff:
		return false
	}
	return auto()
}

func readColor(value string, f *os.File) (bool, error) {
	t, err := readTristate("color", value)
	if err != nil {
		return false, err
	}
	return t.resolve(func() bool { return isTerminal(f) }), nil
}

// showProgress decides whether the progress view runs. In auto mode it
// needs several files and terminals on both streams so piped token dumps
// stay clean.
func (s *runSettings) showProgress(files int) bool {
	if s.quiet {
		return false
	}
	return s.ui.resolve(func() bool {
		return files > 1 && isTerminal(os.Stdout) && isTerminal(os.Stderr)
	})
}

// reportTimings prints the phase summary when --timings is set.
func (s *runSettings) reportTimings(w io.Writer) {
	if !s.timings || s.driver.Timer == nil {
		return
	}
	_, _ = fmt.Fprint(w, s.driver.Timer.Summary())
}

// loadSettings discovers the configuration from the working directory and
// applies the persistent flags and the command's --dialect on top.
func loadSettings(cmd *cobra.Command) (*runSettings, error) {
	flags := cmd.Root().PersistentFlags()

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(wd)
	if err != nil {
		return nil, err
	}

	s := &runSettings{cfg: cfg}
	colorFlag, _ := flags.GetString("color")
	if s.color, err = readColor(colorFlag, os.Stderr); err != nil {
		return nil, err
	}
	s.quiet, _ = flags.GetBool("quiet")
	s.timings, _ = flags.GetBool("timings")

	pm, _ := flags.GetString("path-mode")
	var ok bool
	if s.pathMode, ok = diagfmt.ParsePathMode(pm); !ok {
		return nil, fmt.Errorf("invalid --path-mode value %q (expected auto|absolute|relative|basename)", pm)
	}
	uiFlag, _ := flags.GetString("ui")
	if s.ui, err = readTristate("ui", uiFlag); err != nil {
		return nil, err
	}

	maxDiags, _ := flags.GetInt("max-diagnostics")
	jobs, _ := flags.GetInt("jobs")
	s.driver = driver.Options{
		Config:         cfg,
		MaxDiagnostics: maxDiags,
		Jobs:           jobs,
	}
	s.maxDiags = maxDiags
	if s.maxDiags <= 0 {
		s.maxDiags = cfg.Lex.MaxDiagnostics
	}

	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Value.String() != "" {
		d, err := dialect.Parse(f.Value.String())
		if err != nil {
			return nil, err
		}
		s.driver.Dialect = &d
	}

	cacheFlag, _ := flags.GetString("cache")
	cache, err := readTristate("cache", cacheFlag, "config")
	if err != nil {
		return nil, err
	}
	if cache.resolve(func() bool { return cfg.Cache.Enabled }) {
		dir, err := cfg.CacheDir()
		if err != nil {
			return nil, err
		}
		if s.driver.Cache, err = driver.OpenDiskCache(dir); err != nil {
			return nil, err
		}
	}

	if s.timings {
		s.driver.Timer = observ.NewTimer()
	}
	return s, nil
}

// expandInputs turns files and directories into the list of sources to lex.
func expandInputs(args []string, opts driver.Options) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := driver.ListSources(arg, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list %q: %w", arg, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no sources found in %s", strings.Join(args, ", "))
	}
	return files, nil
}
