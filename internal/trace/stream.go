package trace

import (
	"io"
	"os"
	"sync"
)

// StreamTracer writes each accepted event as soon as it arrives.
// Write errors are dropped; tracing never fails the run.
type StreamTracer struct {
	level  Level
	format Format

	mu  sync.Mutex
	out io.Writer
}

func NewStreamTracer(out io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{out: out, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !accepts(t.level, ev) {
		return
	}
	ev.Seq = NextSeq()
	line := FormatEvent(ev, t.format)

	t.mu.Lock()
	_, _ = t.out.Write(line) //nolint:errcheck
	t.mu.Unlock()
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the output unless it is a standard stream.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	switch t.out {
	case os.Stdout, os.Stderr:
		return nil
	}
	if c, ok := t.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
