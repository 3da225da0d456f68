// Package observability provides OpenTelemetry tracing and metrics for recipe
// builds and runs.
//
// Setup:
//
//	shutdown, err := observability.Init(ctx, cfg)
//	defer shutdown(ctx)
//
// Tracing a run:
//
//	rc := observability.NewRunContext("evens", runID, 3, metrics)
//	ctx, span := rc.Start(ctx, observability.SpanRecipeRun)
//	defer func() { rc.End(ctx, span, len(out), err) }()
//
// When Config.Enabled is false, Init installs nothing and the global otel
// providers stay no-ops, so spans and instruments cost almost nothing.
package observability
