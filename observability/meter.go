package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/logger"
)

// Metric names.
const (
	MetricRecipeRuns     = "ltl.recipe.runs"
	MetricRecipeElements = "ltl.recipe.elements"
	MetricRecipeDuration = "ltl.recipe.duration"
	MetricRecipeErrors   = "ltl.recipe.errors"
)

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "metric exporter")
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "resource")
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// RecipeMetrics holds the instruments recorded for recipe runs.
type RecipeMetrics struct {
	runs     metric.Int64Counter
	elements metric.Int64Counter
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// NewRecipeMetrics creates the recipe instruments on the given meter.
func NewRecipeMetrics(meter metric.Meter) (*RecipeMetrics, error) {
	runs, err := meter.Int64Counter(MetricRecipeRuns,
		metric.WithDescription("Recipe runs by recipe and status"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricRecipeRuns)
	}

	elements, err := meter.Int64Counter(MetricRecipeElements,
		metric.WithDescription("Elements produced by recipe runs"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricRecipeElements)
	}

	duration, err := meter.Float64Histogram(MetricRecipeDuration,
		metric.WithDescription("Duration of recipe runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricRecipeDuration)
	}

	errorTotal, err := meter.Int64Counter(MetricRecipeErrors,
		metric.WithDescription("Recipe failures by error code"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", MetricRecipeErrors)
	}

	return &RecipeMetrics{
		runs:     runs,
		elements: elements,
		duration: duration,
		errors:   errorTotal,
	}, nil
}

// RecordRun records a finished run.
func (m *RecipeMetrics) RecordRun(ctx context.Context, recipe, status string, elements int, duration time.Duration) {
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrRecipe, recipe),
		attribute.String(AttrStatus, status),
	))
	m.elements.Add(ctx, int64(elements), metric.WithAttributes(
		attribute.String(AttrRecipe, recipe),
	))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrRecipe, recipe),
	))
}

// RecordError records a failure by error code.
func (m *RecipeMetrics) RecordError(ctx context.Context, recipe string, code errors.ErrorCode) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrRecipe, recipe),
		attribute.String(AttrErrorCode, string(code)),
	))
}
