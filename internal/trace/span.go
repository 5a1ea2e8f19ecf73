package trace

import (
	"sync/atomic"
	"time"
)

var counters struct {
	seq  atomic.Uint64
	span atomic.Uint64
}

// NextSeq returns the next process-wide event sequence number.
func NextSeq() uint64 { return counters.seq.Add(1) }

// NextSpanID returns a fresh span id; zero is never returned.
func NextSpanID() uint64 { return counters.span.Add(1) }

// Span is an open begin/end pair. A span from a disabled tracer is inert:
// every method is safe and does nothing.
type Span struct {
	tracer Tracer
	head   Event // копия begin-события
	extra  map[string]string
}

var inert = &Span{}

// Begin emits a begin event under parent (0 for a root span) and returns
// the span to End.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return inert
	}
	s := &Span{
		tracer: t,
		head: Event{
			Time:     time.Now(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			Name:     name,
		},
	}
	begin := s.head
	t.Emit(&begin)
	return s
}

func (s *Span) live() bool { return s != nil && s.tracer != nil }

// WithExtra attaches a key/value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// End emits the end event and returns the time since Begin.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	end := s.head
	end.Time = time.Now()
	end.Kind = KindSpanEnd
	end.Detail = detail
	end.Extra = s.extra
	s.tracer.Emit(&end)
	return end.Time.Sub(s.head.Time)
}

// ID is the span id to pass as parent; 0 for an inert span.
func (s *Span) ID() uint64 {
	if !s.live() {
		return 0
	}
	return s.head.SpanID
}
