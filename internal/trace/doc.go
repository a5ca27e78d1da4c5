// Package trace records structured events for fluentscan runs.
//
// Tracing is off by default. Enable it from the command line:
//
//	fluentscan extract --trace=- --trace-level=detail data.xml
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Failures only
//   - LevelPhase: Driver and walk boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "nodes", parentID)
//	defer span.End("")
package trace
