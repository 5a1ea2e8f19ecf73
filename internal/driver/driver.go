// Package driver runs lexical sessions over files: it picks each file's
// dialect, marks system headers, lexes files in parallel with one session
// per file, and caches results on disk.
package driver

import (
	"fmt"
	"path/filepath"

	"nesclex/internal/config"
	"nesclex/internal/dialect"
	"nesclex/internal/diag"
	"nesclex/internal/observ"
	"nesclex/internal/source"
	"nesclex/internal/token"
)

// Options controls a driver run. Zero values fall back to Config.
type Options struct {
	Config config.Config
	// Dialect forces one dialect for every file when set.
	Dialect *dialect.Kind
	// MaxDiagnostics per file; <= 0 uses Config.Lex.MaxDiagnostics.
	MaxDiagnostics int
	// Jobs bounds parallel sessions; <= 0 uses Config.Lex.Jobs.
	Jobs     int
	Cache    *DiskCache
	Timer    *observ.Timer
	Progress ProgressObserver
}

func (o Options) maxDiagnostics() int {
	switch {
	case o.MaxDiagnostics > 0:
		return o.MaxDiagnostics
	case o.Config.Lex.MaxDiagnostics > 0:
		return o.Config.Lex.MaxDiagnostics
	default:
		return config.Default().Lex.MaxDiagnostics
	}
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = o.Config.Lex.Jobs
	}
	if jobs <= 0 {
		jobs = config.Default().Lex.Jobs
	}
	return max(1, min(jobs, files))
}

// DocEntry is a docstring taken from the session together with the token
// it precedes.
type DocEntry struct {
	Short string
	Long  string
	Loc   source.Location
	// Token is the first token after the comment, usually the start of the
	// documented declaration.
	Token    string
	TokenLoc source.Location
}

// FileResult is the outcome of lexing one file.
type FileResult struct {
	Path          string
	FileID        source.FileID
	Dialect       dialect.Kind
	DialectReason string
	SystemHeader  bool
	Tokens        []token.Token
	Docs          []DocEntry
	Bag           *diag.Bag
	// Fatal is set when lexing stopped early (unterminated comment).
	Fatal  bool
	Cached bool
}

// ErrorCount counts error diagnostics.
func (r *FileResult) ErrorCount() int {
	if r == nil || r.Bag == nil {
		return 0
	}
	return r.Bag.Count(diag.SevError)
}

// chooseDialect picks the dialect for a file: an explicit override first,
// then conclusive content evidence, then the extension map, then the
// configured default.
func chooseDialect(path string, content []byte, opts Options) (dialect.Kind, string) {
	if opts.Dialect != nil {
		return *opts.Dialect, "forced"
	}
	cfg := opts.Config
	if cfg.Lex.Detect {
		if cls := dialect.DetectWithFallback(content, cfg.Lex.DefaultDialect); cls.Conclusive {
			return cls.Kind, fmt.Sprintf("detected: %s (confidence %.2f)", cls.Reason, cls.Confidence)
		}
	}
	if d, ok := cfg.DialectFor(path); ok {
		return d, "extension " + filepath.Ext(path)
	}
	return cfg.Lex.DefaultDialect, "default"
}
