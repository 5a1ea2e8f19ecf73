package diag

import "nesclex/internal/source"

// SystemHeaderFilter drops non-error diagnostics anchored in system headers.
// Errors always pass.
type SystemHeaderFilter struct {
	Next Reporter
}

func (f SystemHeaderFilter) Report(code Code, sev Severity, primary source.Location, msg string, notes []Note) {
	if f.Next == nil {
		return
	}
	if primary.InSystemHeader && sev < SevError {
		return
	}
	f.Next.Report(code, sev, primary, msg, notes)
}
