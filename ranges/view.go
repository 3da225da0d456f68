package ranges

import (
	"iter"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// View is a non-owning pair of begin/end cursors over a source sequence.
// Views are cheap values: copying one copies two cursors, never elements.
type View[T any] struct {
	begin Cursor[T]
	end   Cursor[T]
}

// New returns a view over [begin, end).
func New[T any](begin, end Cursor[T]) View[T] {
	return View[T]{begin: begin.Clone(), end: end.Clone()}
}

// Of returns a view over the elements of s.
func Of[T any](s []T) View[T] {
	return View[T]{begin: &sliceCursor[T]{s: s}, end: &sliceCursor[T]{s: s, i: len(s)}}
}

// From captures the begin/end cursors of src at the time of the call.
func From[T any](src Iterable[T]) View[T] {
	if v, ok := src.(View[T]); ok {
		return v
	}
	return View[T]{begin: src.Begin(), end: src.End()}
}

// Begin returns a fresh cursor at the first element.
func (v View[T]) Begin() Cursor[T] { return v.begin.Clone() }

// End returns a fresh cursor past the last element.
func (v View[T]) End() Cursor[T] { return v.end.Clone() }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool {
	return v.begin == nil || v.begin.Equal(v.end)
}

// Size returns the number of elements, counted by stepping from begin to end.
func (v View[T]) Size() int {
	if v.begin == nil {
		return 0
	}
	return Distance(v.begin, v.end)
}

// At returns the i-th element, reached by stepping i times from begin.
func (v View[T]) At(i int) T {
	if contract.Enabled {
		size := v.Size()
		contract.Require(i >= 0 && i < size, func() *errors.AppError { return errors.IndexOutOfRange(i, size) })
	}
	c := v.Begin()
	Advance(c, i)
	return c.Get()
}

// Front returns the first element.
func (v View[T]) Front() T {
	contract.Require(!v.Empty(), func() *errors.AppError { return errors.EmptyView("front") })
	return v.begin.Get()
}

// Back returns the last element, reached by stepping forward from begin.
func (v View[T]) Back() T {
	size := v.Size()
	contract.Require(size > 0, func() *errors.AppError { return errors.EmptyView("back") })
	c := v.Begin()
	Advance(c, size-1)
	return c.Get()
}

// All yields the elements from begin to end.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.Empty() {
			return
		}
		for c := v.Begin(); !c.Equal(v.end); c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Refs yields a reference to each element (see Cursor.Ref).
func (v View[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if v.Empty() {
			return
		}
		for c := v.Begin(); !c.Equal(v.end); c.Next() {
			if !yield(c.Ref()) {
				return
			}
		}
	}
}

// Indexed yields each element with its position.
func (v View[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range v.All() {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

// Backward yields the elements from end to begin by stepping each cursor
// back.
//
// Views with a Take anywhere in their chain do not support it: stepping back
// from the end of a take lands on the last element of its source, not of the
// taken prefix (see TakeCursor). Filter, Map or Zip views built over a take
// inherit this, so Of(s).Take(3).Filter(even) iterated backward yields the
// even elements of all of s. Materialize the prefix with ToSlice first.
func (v View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.Empty() {
			return
		}
		for c := v.End(); !c.Equal(v.begin); {
			c.Prev()
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Filter is Pipe(v, Filter(pred)).
func (v View[T]) Filter(pred func(T) bool) View[T] { return Filter(pred).Apply(v) }

// Take is Pipe(v, Take[T](n)).
func (v View[T]) Take(n int) View[T] { return Take[T](n).Apply(v) }

// Pipe applies a same-typed descriptor.
func (v View[T]) Pipe(d Descriptor[T, T]) View[T] { return d.Apply(v) }

// Apply applies a same-typed pipeline.
func (v View[T]) Apply(p Pipeline[T, T]) View[T] { return p.Apply(v) }
