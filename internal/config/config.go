// Package config loads nesclex.toml, the per-project lexer configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"nesclex/internal/dialect"
	"nesclex/internal/source"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for from the working directory up.
const FileName = "nesclex.toml"

const defaultMaxDiagnostics = 100

// Config is the decoded and validated configuration.
type Config struct {
	// Path is the file the configuration came from; empty for defaults.
	Path string
	// Root is the directory containing Path; relative header prefixes are
	// resolved against it.
	Root string

	Lex      LexConfig
	Dialects map[string]dialect.Kind // расширение -> диалект
	Headers  HeadersConfig
	Cache    CacheConfig
}

type LexConfig struct {
	DefaultDialect dialect.Kind
	Detect         bool
	MaxDiagnostics int
	Jobs           int
}

type HeadersConfig struct {
	System []string // абсолютные префиксы путей
}

type CacheConfig struct {
	Enabled bool
	Dir     string
}

// raw mirrors the TOML layout before validation.
type raw struct {
	Lex struct {
		DefaultDialect string `toml:"default_dialect"`
		Detect         *bool  `toml:"detect"`
		MaxDiagnostics *int   `toml:"max_diagnostics"`
		Jobs           int    `toml:"jobs"`
	} `toml:"lex"`
	Dialects map[string]string `toml:"dialects"`
	Headers  struct {
		System []string `toml:"system"`
	} `toml:"headers"`
	Cache struct {
		Enabled bool   `toml:"enabled"`
		Dir     string `toml:"dir"`
	} `toml:"cache"`
}

// Default returns the configuration used when no nesclex.toml exists.
func Default() Config {
	return Config{
		Lex: LexConfig{
			DefaultDialect: dialect.C,
			Detect:         true,
			MaxDiagnostics: defaultMaxDiagnostics,
			Jobs:           runtime.GOMAXPROCS(0),
		},
		Dialects: map[string]dialect.Kind{
			".nc": dialect.Component,
			".h":  dialect.C,
			".c":  dialect.C,
		},
	}
}

// Find walks up from startDir looking for nesclex.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest nesclex.toml above startDir, or defaults when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes and validates the file at path. Keys absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	var r raw
	meta, err := toml.DecodeFile(path, &r)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg, err := r.build(filepath.Dir(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (r *raw) build(root string) (Config, error) {
	cfg := Default()
	cfg.Root = root

	if s := strings.TrimSpace(r.Lex.DefaultDialect); s != "" {
		d, err := dialect.Parse(s)
		if err != nil {
			return Config{}, fmt.Errorf("[lex].default_dialect: %w", err)
		}
		cfg.Lex.DefaultDialect = d
	}
	if r.Lex.Detect != nil {
		cfg.Lex.Detect = *r.Lex.Detect
	}
	if r.Lex.MaxDiagnostics != nil {
		if *r.Lex.MaxDiagnostics < 0 {
			return Config{}, fmt.Errorf("[lex].max_diagnostics must not be negative")
		}
		cfg.Lex.MaxDiagnostics = *r.Lex.MaxDiagnostics
	}
	switch {
	case r.Lex.Jobs < 0:
		return Config{}, fmt.Errorf("[lex].jobs must not be negative")
	case r.Lex.Jobs > 0:
		cfg.Lex.Jobs = r.Lex.Jobs
	}

	for ext, name := range r.Dialects {
		d, err := dialect.Parse(name)
		if err != nil {
			return Config{}, fmt.Errorf("[dialects].%q: %w", ext, err)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Dialects[ext] = d
	}

	for _, p := range r.Headers.System {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, filepath.FromSlash(p))
		}
		cfg.Headers.System = append(cfg.Headers.System, filepath.Clean(p))
	}

	cfg.Cache.Enabled = r.Cache.Enabled
	cfg.Cache.Dir = r.Cache.Dir
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(root, cfg.Cache.Dir)
	}
	return cfg, nil
}

// DialectFor returns the dialect configured for path's extension.
func (c Config) DialectFor(path string) (dialect.Kind, bool) {
	d, ok := c.Dialects[strings.ToLower(filepath.Ext(path))]
	return d, ok
}

// IsSystemHeader reports whether path lies under a configured system prefix.
func (c Config) IsSystemHeader(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, prefix := range c.Headers.System {
		if source.UnderDir(abs, prefix) {
			return true
		}
	}
	return false
}

// CacheDir returns the result cache directory, defaulting to the user cache dir.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no cache directory: %w", err)
	}
	return filepath.Join(base, "nesclex"), nil
}
