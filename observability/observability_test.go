package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/StarQTius/Little-Type-Library/errors"
)

// withRecorder installs a recording tracer provider for the test.
func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func newManualMetrics(t *testing.T) (*RecipeMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := NewRecipeMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumOf(t *testing.T, data metricdata.Aggregation, key, value string) int64 {
	t.Helper()
	sum, ok := data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("ltl")

	if cfg.ServiceName != "ltl" {
		t.Errorf("expected ServiceName 'ltl', got %s", cfg.ServiceName)
	}
	if cfg.Enabled {
		t.Error("expected export disabled by default")
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{ServiceName: "ltl", Endpoint: "collector:4318"}
	cfg.ApplyDefaults()
	if cfg.Endpoint != "collector:4318" {
		t.Errorf("explicit endpoint overwritten: %s", cfg.Endpoint)
	}
	if cfg.Environment != "development" || cfg.ServiceVersion != "dev" || cfg.Interval != 15*time.Second {
		t.Errorf("got %+v", cfg)
	}
	if cfg.SampleRate != 0 {
		t.Errorf("sample rate should stay 0, got %f", cfg.SampleRate)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig("ltl"), false},
		{"disabled without name", Config{}, false},
		{"enabled without name", Config{Enabled: true, Endpoint: "x:1"}, true},
		{"sample rate above one", Config{SampleRate: 1.5}, true},
		{"negative sample rate", Config{SampleRate: -0.1}, true},
		{"negative interval", Config{Interval: -time.Second}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("got %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestInitDisabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	shutdown, err := Init(context.Background(), DefaultConfig("ltl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if otel.GetTracerProvider() != prev {
		t.Error("disabled config should not replace the tracer provider")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown returned %v", err)
	}
}

func TestInitEnabled(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	cfg := DefaultConfig("ltl")
	cfg.Enabled = true
	cfg.Endpoint = "127.0.0.1:1"

	shutdown, err := Init(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("expected SDK tracer provider, got %T", otel.GetTracerProvider())
	}
	if _, ok := otel.GetMeterProvider().(*sdkmetric.MeterProvider); !ok {
		t.Errorf("expected SDK meter provider, got %T", otel.GetMeterProvider())
	}

	// Nothing listens on the endpoint; only the shutdown path matters here.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, sdktrace.AlwaysSample().Description()},
		{2.0, sdktrace.AlwaysSample().Description()},
		{0, sdktrace.NeverSample().Description()},
		{-1, sdktrace.NeverSample().Description()},
		{0.5, sdktrace.TraceIDRatioBased(0.5).Description()},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rate), func(t *testing.T) {
			if got := sampler(tc.rate).Description(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	cfg := DefaultConfig("ltl")
	cfg.ServiceVersion = "1.2.3"
	res, err := newResource(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{
		AttrServiceName:    "ltl",
		AttrServiceVersion: "1.2.3",
		AttrEnvironment:    "development",
	}
	got := map[string]string{}
	for _, kv := range res.Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestStartSpan(t *testing.T) {
	sr := withRecorder(t)

	ctx, span := StartSpan(context.Background(), SpanRecipeBuild)
	if !SpanFromContext(ctx).SpanContext().Equal(span.SpanContext()) {
		t.Error("expected the span in the returned context")
	}
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 || ended[0].Name() != SpanRecipeBuild {
		t.Fatalf("got %d spans, want one %s span", len(ended), SpanRecipeBuild)
	}
}

func TestSetSpanAttribute(t *testing.T) {
	sr := withRecorder(t)

	ctx, span := StartSpan(context.Background(), "attrs")
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	span.End()

	s := sr.Ended()[0]
	if v, ok := spanAttr(s, "int-key"); !ok || v.AsInt64() != 42 {
		t.Errorf("int-key = %v, %v", v, ok)
	}
	if _, ok := spanAttr(s, "unsupported-key"); ok {
		t.Error("unsupported value types should be ignored")
	}
	if len(s.Attributes()) != 6 {
		t.Errorf("got %d attributes, want 6", len(s.Attributes()))
	}
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	SetSpanAttribute(context.Background(), "key", "value")
}

func TestSetSpanError(t *testing.T) {
	sr := withRecorder(t)

	ctx, span := StartSpan(context.Background(), "failing")
	SetSpanError(ctx, errors.InvalidInput("steps", "unknown filter"))
	SetSpanError(ctx, nil)
	span.End()

	s := sr.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("got status %v, want Error", s.Status().Code)
	}
	if v, _ := spanAttr(s, AttrErrorCode); v.AsString() != string(errors.ErrCodeInvalidInput) {
		t.Errorf("got error code %q", v.AsString())
	}
	if len(s.Events()) != 1 {
		t.Errorf("got %d events, want 1 exception event", len(s.Events()))
	}
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	SetSpanError(context.Background(), fmt.Errorf("no span error"))
}

func TestNewRecipeMetricsNoop(t *testing.T) {
	metrics, err := NewRecipeMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordRun(ctx, "evens", StatusOK, 3, 10*time.Millisecond)
	metrics.RecordError(ctx, "evens", errors.ErrCodeInternal)
}

func TestRecipeMetricsRecorded(t *testing.T) {
	metrics, reader := newManualMetrics(t)
	ctx := context.Background()

	metrics.RecordRun(ctx, "evens", StatusOK, 3, 10*time.Millisecond)
	metrics.RecordRun(ctx, "evens", StatusOK, 2, 20*time.Millisecond)
	metrics.RecordRun(ctx, "evens", StatusError, 0, time.Millisecond)
	metrics.RecordError(ctx, "evens", errors.ErrCodeOutOfBounds)

	data := collect(t, reader)
	if got := sumOf(t, data[MetricRecipeRuns], AttrStatus, StatusOK); got != 2 {
		t.Errorf("ok runs = %d, want 2", got)
	}
	if got := sumOf(t, data[MetricRecipeRuns], AttrStatus, StatusError); got != 1 {
		t.Errorf("error runs = %d, want 1", got)
	}
	if got := sumOf(t, data[MetricRecipeElements], AttrRecipe, "evens"); got != 5 {
		t.Errorf("elements = %d, want 5", got)
	}
	if got := sumOf(t, data[MetricRecipeErrors], AttrErrorCode, string(errors.ErrCodeOutOfBounds)); got != 1 {
		t.Errorf("errors = %d, want 1", got)
	}
	hist, ok := data[MetricRecipeDuration].(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 3 {
		t.Errorf("expected 3 duration samples, got %+v", data[MetricRecipeDuration])
	}
}

func TestNewRunContext(t *testing.T) {
	rc := NewRunContext("evens", "run-1", 3, nil)

	if rc.Recipe != "evens" || rc.RunID != "run-1" || rc.Stages != 3 {
		t.Errorf("got %+v", rc)
	}
	if rc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
	if rc.Duration() < 0 {
		t.Error("expected non-negative duration")
	}
}

func TestRunContextFromContext(t *testing.T) {
	if RunContextFromContext(context.Background()) != nil {
		t.Error("expected nil when not set")
	}
	rc := NewRunContext("evens", "run-1", 1, nil)
	ctx := WithRunContext(context.Background(), rc)
	if RunContextFromContext(ctx) != rc {
		t.Error("expected the stored run context")
	}
}

func TestRunContextSuccess(t *testing.T) {
	sr := withRecorder(t)
	metrics, reader := newManualMetrics(t)

	rc := NewRunContext("evens", "run-1", 3, metrics)
	ctx, span := rc.Start(context.Background(), SpanRecipeRun)
	if RunContextFromContext(ctx) != rc {
		t.Error("Start should store the run context")
	}
	rc.End(ctx, span, 2, nil)

	s := sr.Ended()[0]
	if s.Name() != SpanRecipeRun {
		t.Errorf("got span %q", s.Name())
	}
	checks := map[string]string{
		AttrRecipe: "evens",
		AttrRunID:  "run-1",
		AttrStatus: StatusOK,
	}
	for k, want := range checks {
		if v, _ := spanAttr(s, k); v.AsString() != want {
			t.Errorf("%s = %q, want %q", k, v.AsString(), want)
		}
	}
	if v, _ := spanAttr(s, AttrElements); v.AsInt64() != 2 {
		t.Errorf("elements = %d, want 2", v.AsInt64())
	}
	if v, _ := spanAttr(s, AttrStages); v.AsInt64() != 3 {
		t.Errorf("stages = %d, want 3", v.AsInt64())
	}
	if s.Status().Code == codes.Error {
		t.Error("successful run should not be marked as error")
	}

	data := collect(t, reader)
	if got := sumOf(t, data[MetricRecipeRuns], AttrStatus, StatusOK); got != 1 {
		t.Errorf("ok runs = %d, want 1", got)
	}
	if _, ok := data[MetricRecipeErrors]; ok {
		t.Error("no error should be recorded")
	}
}

func TestRunContextFailure(t *testing.T) {
	sr := withRecorder(t)
	metrics, reader := newManualMetrics(t)

	rc := NewRunContext("evens", "", 1, metrics)
	ctx, span := rc.Start(context.Background(), SpanRecipeRun)
	rc.End(ctx, span, 0, errors.EmptyCallable())

	s := sr.Ended()[0]
	if _, ok := spanAttr(s, AttrRunID); ok {
		t.Error("empty run ID should not be set")
	}
	if s.Status().Code != codes.Error {
		t.Errorf("got status %v, want Error", s.Status().Code)
	}
	if v, _ := spanAttr(s, AttrErrorCode); v.AsString() != string(errors.ErrCodeEmptyCallable) {
		t.Errorf("got error code %q", v.AsString())
	}

	data := collect(t, reader)
	if got := sumOf(t, data[MetricRecipeErrors], AttrErrorCode, string(errors.ErrCodeEmptyCallable)); got != 1 {
		t.Errorf("errors = %d, want 1", got)
	}
}

func TestRunContextNilMetrics(t *testing.T) {
	rc := NewRunContext("evens", "run-1", 1, nil)
	ctx, span := rc.Start(context.Background(), SpanRecipeRun)
	rc.End(ctx, span, 0, fmt.Errorf("plain"))
}

func TestTracerAndMeter(t *testing.T) {
	if Tracer("t") == nil {
		t.Fatal("expected non-nil tracer")
	}
	if Meter("m") == nil {
		t.Fatal("expected non-nil meter")
	}
}
