package trace

import "errors"

// MultiTracer fans events out to several tracers. Each target filters by
// its own level; the multi tracer's level only gates callers.
type MultiTracer struct {
	level   Level
	targets []Tracer
}

func NewMultiTracer(level Level, targets ...Tracer) *MultiTracer {
	return &MultiTracer{level: level, targets: targets}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, target := range t.targets {
		own := *ev
		target.Emit(&own)
	}
}

func (t *MultiTracer) Flush() error {
	return t.each(Tracer.Flush)
}

func (t *MultiTracer) Close() error {
	return t.each(Tracer.Close)
}

func (t *MultiTracer) each(fn func(Tracer) error) error {
	errs := make([]error, 0, len(t.targets))
	for _, target := range t.targets {
		errs = append(errs, fn(target))
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// Ring returns the first ring tracer among the targets, or nil.
func (t *MultiTracer) Ring() *RingTracer {
	for _, target := range t.targets {
		if r, ok := target.(*RingTracer); ok {
			return r
		}
	}
	return nil
}
