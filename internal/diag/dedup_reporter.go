package diag

import "nesclex/internal/source"

// identity is what makes two diagnostics the same finding.
type identity struct {
	code Code
	sev  Severity
	loc  source.Location
	msg  string
}

func identityOf(code Code, sev Severity, loc source.Location, msg string) identity {
	return identity{code: code, sev: sev, loc: loc, msg: msg}
}

// DedupReporter forwards each distinct finding once.
type DedupReporter struct {
	next Reporter
	seen map[identity]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[identity]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Location, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	id := identityOf(code, sev, primary, msg)
	if _, dup := r.seen[id]; dup {
		return
	}
	r.seen[id] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes)
}
