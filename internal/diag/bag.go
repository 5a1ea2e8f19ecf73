package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to a limit. Diagnostics past the limit are
// counted, not stored.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag creates a bag holding at most limit diagnostics. A limit of zero
// or less stores nothing.
func NewBag(limit int) *Bag {
	limit = max(limit, 0)
	return &Bag{items: make([]Diagnostic, 0, min(limit, 64)), limit: limit}
}

// Add stores d and reports whether it fit under the limit.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap is the configured limit.
func (b *Bag) Cap() int { return b.limit }

// Len is the number of stored diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Dropped counts diagnostics rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

// Count returns how many stored diagnostics are at least as severe as sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= sev {
			n++
		}
	}
	return n
}

func (b *Bag) HasErrors() bool   { return b.Count(SevError) > 0 }
func (b *Bag) HasWarnings() bool { return b.Count(SevWarning) > 0 }

// Items returns the stored diagnostics. Callers must not modify the slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends everything from other, raising the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
	b.limit = max(b.limit, len(b.items))
	b.dropped += other.dropped
}

// Sort orders by file, line, severity (worst first), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Line, y.Primary.Line),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops diagnostics identical in code, severity, location and
// message to an earlier one.
func (b *Bag) Dedup() {
	seen := make(map[identity]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		id := identityOf(d.Code, d.Severity, d.Primary, d.Message)
		if _, dup := seen[id]; dup {
			return true
		}
		seen[id] = struct{}{}
		return false
	})
}
