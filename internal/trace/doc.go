// Package trace records what the bigint CLI is doing: which command runs,
// which batch files are evaluated and, at the most verbose level, every
// expression.
//
//	bigint batch --trace=- --trace-level=detail sums.txt
//
// Spans nest through the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, trace.CurrentSpan(ctx))
//	defer span.End("")
package trace
