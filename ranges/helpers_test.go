package ranges

import (
	"testing"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

func isEven(n int) bool { return n%2 == 0 }
func square(n int) int  { return n * n }

// mustViolate runs fn and fails unless it panics with a contract violation
// carrying code.
func mustViolate(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	if !contract.Enabled {
		t.Skip("contract checks compiled out")
	}
	defer func() {
		got := errors.FromPanic(recover())
		if got == nil {
			t.Fatalf("expected %s violation, got none", code)
		}
		if got.Code != code {
			t.Errorf("expected %s violation, got %s", code, got.Code)
		}
		if !got.Contract {
			t.Errorf("expected a contract error, got %v", got)
		}
	}()
	fn()
}

func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, x := range s {
		out[len(s)-1-i] = x
	}
	return out
}

func collectBackward[T any](v View[T]) []T {
	var out []T
	for x := range v.Backward() {
		out = append(out, x)
	}
	return out
}
