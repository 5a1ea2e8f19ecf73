package trace

import (
	"fmt"
	"io"
	"sync"
)

// DefaultRingSize is used when a ring is created with a non-positive size.
const DefaultRingSize = 4096

// RingTracer remembers the most recent events, overwriting the oldest.
// It is meant to be dumped after a failure.
type RingTracer struct {
	level Level

	mu      sync.Mutex
	slots   []Event
	written uint64
}

func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingTracer{level: level, slots: make([]Event, size)}
}

func (t *RingTracer) Emit(ev *Event) {
	if !accepts(t.level, ev) {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	t.slots[t.written%uint64(len(t.slots))] = stored
	t.written++
	t.mu.Unlock()
}

// Snapshot copies the kept events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	size := uint64(len(t.slots))
	kept := min(t.written, size)
	out := make([]Event, 0, kept)
	for i := t.written - kept; i < t.written; i++ {
		out = append(out, t.slots[i%size])
	}
	return out
}

// Overwritten counts events pushed out of the ring.
func (t *RingTracer) Overwritten() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.written - min(t.written, uint64(len(t.slots)))
}

// Dump writes the kept events in the given format. In text format a
// leading line reports how many older events were lost.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	if lost := t.Overwritten(); lost > 0 && format == FormatText {
		if _, err := fmt.Fprintf(w, "... %d earlier events overwritten\n", lost); err != nil {
			return err
		}
	}
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
