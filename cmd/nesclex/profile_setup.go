package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nesclex/internal/prof"
)

// setupProfiling starts the profilers requested by persistent flags. The
// cleanup stops them and writes the heap profile.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return func() {}, nil
	}
	p, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := p.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
		}
	}, nil
}

// setupRun prepares tracing and profiling for a lexing command.
func setupRun(cmd *cobra.Command) (func(failed bool), error) {
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		stopProf()
		return nil, err
	}
	return func(failed bool) {
		stopTrace(failed)
		stopProf()
	}, nil
}
