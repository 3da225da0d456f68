package callable

import (
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// Callable is any value exposing a single-argument Call method.
type Callable[A, R any] interface {
	Call(A) R
}

// Func holds zero or one func(A) R. The zero value is empty.
// Copying a Func copies the held function value; the copies are independent
// holders (Set or Reset on one does not affect the other).
type Func[A, R any] struct {
	fn func(A) R
}

// Of returns a holder for fn. A nil fn yields an empty holder.
func Of[A, R any](fn func(A) R) Func[A, R] {
	return Func[A, R]{fn: fn}
}

// FromCallable returns a holder bound to c's Call method.
func FromCallable[A, R any](c Callable[A, R]) Func[A, R] {
	if c == nil {
		return Func[A, R]{}
	}
	return Func[A, R]{fn: c.Call}
}

// IsSet reports whether the holder contains a function.
func (f Func[A, R]) IsSet() bool { return f.fn != nil }

// Set replaces the held function.
func (f *Func[A, R]) Set(fn func(A) R) { f.fn = fn }

// Reset empties the holder.
func (f *Func[A, R]) Reset() { f.fn = nil }

// Call invokes the held function. Calling an empty holder is a contract
// violation.
func (f Func[A, R]) Call(a A) R {
	contract.Require(f.fn != nil, errors.EmptyCallable)
	return f.fn(a)
}

// Func returns the held function, or nil.
func (f Func[A, R]) Func() func(A) R { return f.fn }
