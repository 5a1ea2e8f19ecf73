package trace

import "context"

type tracerKey int

const activeTracer tracerKey = 0

// WithTracer returns a context carrying t.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, activeTracer, t)
}

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(activeTracer).(Tracer); ok && t != nil {
			return t
		}
	}
	return Nop
}
