package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/StarQTius/Little-Type-Library/errors"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RunContext holds observability context for one recipe run.
type RunContext struct {
	Recipe    string
	RunID     string
	Stages    int
	StartTime time.Time
	Metrics   *RecipeMetrics
}

// NewRunContext creates a new run context.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(recipe, runID string, stages int, metrics *RecipeMetrics) *RunContext {
	return &RunContext{
		Recipe:    recipe,
		RunID:     runID,
		Stages:    stages,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// Start starts a span tagged with the run's recipe, ID and stage count, and
// stores rc in the returned context.
func (rc *RunContext) Start(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrRecipe, rc.Recipe),
		attribute.Int(AttrStages, rc.Stages),
	)
	if rc.RunID != "" {
		span.SetAttributes(attribute.String(AttrRunID, rc.RunID))
	}
	return WithRunContext(ctx, rc), span
}

// End ends the span and records the run metrics. A non-nil err marks the run
// as failed and counts its error code.
func (rc *RunContext) End(ctx context.Context, span trace.Span, elements int, err error) {
	duration := rc.Duration()
	status := StatusOK
	if err != nil {
		status = StatusError
		recordSpanError(span, err)
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrElements, elements),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics == nil {
		return
	}
	rc.Metrics.RecordRun(ctx, rc.Recipe, status, elements, duration)
	if err != nil {
		rc.Metrics.RecordError(ctx, rc.Recipe, errors.Wrap(err).Code)
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
