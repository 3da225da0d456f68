package pipeline

import (
	"context"

	"github.com/StarQTius/Little-Type-Library/ranges"
)

// Apply binds a range pipeline to p.
//
// When p is still backed by a view, the stages are applied to that view and
// the result stays view-backed, so further Filter and Apply calls fuse into
// the same cursors. Any other source is drained into a slice on each run and
// the stages are applied to a view over it.
func Apply[In, Out any](p *Pipeline[In], stages ranges.Pipeline[In, Out]) *Pipeline[Out] {
	if p.view != nil {
		bind := p.view
		return fromBinder(func() ranges.View[Out] { return stages.Apply(bind()) })
	}
	return &Pipeline[Out]{
		create: func(ctx context.Context) Iterator[Out] {
			return &bufferIter[In, Out]{source: p.create(ctx), stages: stages}
		},
	}
}

// Filter keeps only values that satisfy the predicate. On a view-backed
// pipeline it becomes a ranges.Filter stage.
func Filter[T any](p *Pipeline[T], fn func(T) bool) *Pipeline[T] {
	if p.view != nil {
		return Apply(p, ranges.Chain(ranges.Filter(fn)))
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: p.create(ctx), fn: fn}
		},
	}
}

// Map transforms each value using fn.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: p.create(ctx), fn: fn}
		},
	}
}

// FlatMap expands each value into a view and yields the view's elements.
func FlatMap[I, O any](p *Pipeline[I], fn func(context.Context, I) (ranges.View[O], error)) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &flatMapIter[I, O]{source: p.create(ctx), fn: fn}
		},
	}
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: p.create(ctx), fn: fn}
		},
	}
}

// --- Iterator implementations ---
//
// Callbacks may step views of their own; a contract violation they raise is
// returned as the error of the Next call.

type bufferIter[In, Out any] struct {
	source Iterator[In]
	stages ranges.Pipeline[In, Out]
	out    Iterator[Out]
}

func (it *bufferIter[In, Out]) Next(ctx context.Context) (result Out, ok bool, err error) {
	if it.out == nil {
		var items []In
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if !ok {
				break
			}
			items = append(items, val)
		}
		it.out = bindView(func() ranges.View[Out] { return it.stages.Apply(ranges.Of(items)) })
	}
	return it.out.Next(ctx)
}

func (it *bufferIter[In, Out]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	defer func() {
		if verr := violation(recover()); verr != nil {
			var zero T
			result, ok, err = zero, false, verr
		}
	}()
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	defer func() {
		if verr := violation(recover()); verr != nil {
			var zero O
			result, ok, err = zero, false, verr
		}
	}()
	out, err := it.fn(ctx, val)
	if err != nil {
		return result, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I) (ranges.View[O], error)
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		inner, err := it.expand(ctx, in)
		if err != nil {
			return result, false, err
		}
		it.current = bindView(func() ranges.View[O] { return inner })
	}
}

func (it *flatMapIter[I, O]) expand(ctx context.Context, in I) (v ranges.View[O], err error) {
	defer func() {
		if verr := violation(recover()); verr != nil {
			v, err = ranges.View[O]{}, verr
		}
	}()
	return it.fn(ctx, in)
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	defer func() {
		if verr := violation(recover()); verr != nil {
			var zero T
			result, ok, err = zero, false, verr
		}
	}()
	if err := it.fn(ctx, val); err != nil {
		return result, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
