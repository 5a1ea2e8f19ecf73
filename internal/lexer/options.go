package lexer

import (
	"nesclex/internal/diag"
	"nesclex/internal/source"
	"nesclex/internal/trace"
)

// DefaultMaxTokenLength bounds a single lexeme; longer ones are reported
// with diag.LexTokenTooLong and truncated.
const DefaultMaxTokenLength = 4096

type Options struct {
	Reporter diag.Reporter // nil: диагностики отбрасываются
	Tracer   trace.Tracer  // nil means trace.Nop
	// Names interns file names; a private interner is created when nil.
	Names          *source.Interner
	MaxTokenLength int
}

func (s *Session) report(code diag.Code, sev diag.Severity, loc source.Location, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, sev, loc, msg, nil)
	}
}

func (s *Session) errLex(code diag.Code, loc source.Location, msg string) {
	s.report(code, diag.SevError, loc, msg)
}
