package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// phase accumulates every run recorded under one name.
type phase struct {
	name  string
	total time.Duration
	runs  int
	note  string
}

// Timer sums wall time per named phase. Phases keep first-seen order. It is
// safe for concurrent use, so parallel sessions can share one Timer. A nil
// Timer records nothing.
type Timer struct {
	mu     sync.Mutex
	phases []*phase
	index  map[string]*phase
}

func NewTimer() *Timer {
	return &Timer{index: make(map[string]*phase)}
}

// Start begins one run of phase name. The returned func ends it; a non-empty
// note replaces the phase note.
func (t *Timer) Start(name string) func(note string) {
	if t == nil {
		return func(string) {}
	}
	began := time.Now()
	return func(note string) {
		t.record(name, time.Since(began), note)
	}
}

// Add records a run of name that took d.
func (t *Timer) Add(name string, d time.Duration) {
	if t != nil {
		t.record(name, d, "")
	}
}

func (t *Timer) record(name string, d time.Duration, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.index[name]
	if !ok {
		p = &phase{name: name}
		t.index[name] = p
		t.phases = append(t.phases, p)
	}
	p.total += d
	p.runs++
	if note != "" {
		p.note = note
	}
}

// PhaseReport is one phase in serializable form.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Runs       int     `json:"runs" msgpack:"runs"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report is a snapshot of the timer. Parallel runs overlap, so TotalMS is a
// sum of phase time, not elapsed time.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	if t == nil {
		return r
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.phases {
		ms := millis(p.total)
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: ms, Runs: p.runs, Note: p.note})
		r.TotalMS += ms
	}
	return r
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	r := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-14s %9.2f ms", p.Name, p.DurationMS)
		if p.Runs > 1 {
			fmt.Fprintf(&sb, "  x%d", p.Runs)
		}
		if p.Note != "" {
			fmt.Fprintf(&sb, "  (%s)", p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-14s %9.2f ms\n", "sum", r.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
