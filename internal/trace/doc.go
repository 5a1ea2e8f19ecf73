// Package trace is the logging layer of nesclex: leveled, scoped events for
// the driver, per-file lexing sessions and file switches inside a session.
//
// # Usage
//
//	nesclex tokenize --trace=- --trace-level=detail BlinkC.nc
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a writer (file/stderr)
//   - RingTracer: last N events in memory, dumped on failure and used by tests
//   - MultiTracer: fan-out
//
// # Levels and scopes
//
// LevelPhase emits driver and pass events, LevelDetail adds per-file events,
// LevelDebug adds lexeme-level events such as include switches and line
// markers.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "lex", parent)
//	defer span.End("")
package trace
