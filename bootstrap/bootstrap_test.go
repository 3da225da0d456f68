package bootstrap

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/StarQTius/Little-Type-Library/config"
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/logger"
)

type testConfig struct {
	config.ServiceConfig
}

func newTestConfig(name, version string) *testConfig {
	return &testConfig{
		ServiceConfig: config.ServiceConfig{
			Name:        name,
			Version:     version,
			Environment: "development",
		},
	}
}

func newTestApp(t *testing.T, opts ...Option) (*App[*testConfig], *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "ltl-test", &buf)
	app, err := NewApp(newTestConfig("ltl", "1.0.0"), append([]Option{WithLogger(l)}, opts...)...)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app, &buf
}

func TestNewApp(t *testing.T) {
	cfg := newTestConfig("ltl", "1.0.0")
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "ltl" || app.Version != "1.0.0" {
		t.Errorf("got name=%q version=%q", app.Name, app.Version)
	}
	if app.Cfg != cfg {
		t.Error("expected the typed config to be kept")
	}
	if app.Logger == nil {
		t.Error("expected logger initialized from config")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected defaults applied, got level %q", cfg.Logging.Level)
	}
	if !slices.Contains(logger.Registered(), logger.ComponentRecipe) {
		t.Errorf("expected component loggers registered, got %v", logger.Registered())
	}
}

func TestNewAppValidation(t *testing.T) {
	cfg := &testConfig{ServiceConfig: config.ServiceConfig{Environment: "production"}}
	_, err := NewApp(cfg)
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("got %v, want wrapped INVALID_INPUT", err)
	}
}

func TestWithGracefulTimeout(t *testing.T) {
	app, _ := newTestApp(t, WithGracefulTimeout(3*time.Second))
	if app.gracefulTimeout != 3*time.Second {
		t.Errorf("got %v, want 3s", app.gracefulTimeout)
	}
	def, _ := newTestApp(t)
	if def.gracefulTimeout != 15*time.Second {
		t.Errorf("got default %v, want 15s", def.gracefulTimeout)
	}
}

func TestWithLogger(t *testing.T) {
	app, buf := newTestApp(t)
	if logger.GetGlobalLogger() != app.Logger {
		t.Error("expected the custom logger to become global")
	}
	_ = app.RunTask(context.Background(), func(context.Context) error { return nil })
	if !strings.Contains(buf.String(), `"message":"Starting"`) {
		t.Errorf("expected startup log in custom logger, got:\n%s", buf.String())
	}
}

func TestRunTaskSuccess(t *testing.T) {
	app, _ := newTestApp(t)
	ran := false
	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("task did not run")
	}
}

func TestRunTaskError(t *testing.T) {
	app, _ := newTestApp(t)
	taskErr := errors.EmptyView("front")
	err := app.RunTask(context.Background(), func(context.Context) error { return taskErr })
	if !errors.HasCode(err, errors.ErrCodeEmptyView) {
		t.Errorf("got %v, want the task error", err)
	}
}

func TestRunTaskCancellation(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := app.RunTask(ctx, func(ctx context.Context) error { return ctx.Err() })
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRunTaskHookOrder(t *testing.T) {
	app, _ := newTestApp(t)
	var order []string
	record := func(name string) Hook {
		return func(context.Context) error {
			order = append(order, name)
			return nil
		}
	}
	app.OnStart(record("start tracing"), record("start metrics"))
	app.OnStop(record("stop tracing"), record("stop metrics"))

	err := app.RunTask(context.Background(), func(context.Context) error {
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"start tracing", "start metrics", "task", "stop metrics", "stop tracing"}
	if !slices.Equal(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestRunTaskStartHookError(t *testing.T) {
	app, _ := newTestApp(t)
	ran := false
	app.OnStart(func(context.Context) error { return fmt.Errorf("exporter unavailable") })
	app.OnStart(func(context.Context) error { ran = true; return nil })

	err := app.RunTask(context.Background(), func(context.Context) error {
		t.Error("task should not run after a start hook failure")
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "hook 0 failed") {
		t.Errorf("got %v, want hook failure", err)
	}
	if ran {
		t.Error("hooks after a failure should not run")
	}
}

func TestRunTaskStopHookErrors(t *testing.T) {
	app, buf := newTestApp(t)
	secondRan := false
	app.OnStop(func(context.Context) error { secondRan = true; return nil })
	app.OnStop(func(context.Context) error { return fmt.Errorf("flush failed") })

	taskErr := fmt.Errorf("task failed")
	err := app.RunTask(context.Background(), func(context.Context) error { return taskErr })
	if !stderrors.Is(err, taskErr) {
		t.Errorf("expected task error in %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "flush failed") {
		t.Errorf("expected stop error in %v", err)
	}
	if !secondRan {
		t.Error("every stop hook should run")
	}
	if !strings.Contains(buf.String(), "OnStop hook error") {
		t.Errorf("expected stop hook error logged, got:\n%s", buf.String())
	}
}

func TestStopHooksGetDeadline(t *testing.T) {
	app, _ := newTestApp(t, WithGracefulTimeout(time.Second))
	var hadDeadline bool
	app.OnStop(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	})
	_ = app.RunTask(context.Background(), func(context.Context) error { return nil })
	if !hadDeadline {
		t.Error("stop hooks should run under the graceful timeout")
	}
}
