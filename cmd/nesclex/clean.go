package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nesclex/internal/config"
	"nesclex/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached tokenizer results",
	Long:  "Remove every entry of the on-disk result cache used by --cache.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(wd)
	if err != nil {
		return err
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cache directory not found")
		return nil
	}
	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", dir, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
	return nil
}
