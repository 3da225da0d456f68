package pipeline

import (
	"context"
	"iter"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/ranges"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
// No work happens until values are pulled via Collect, Drain, or ForEach.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
	// view rebuilds the range view behind the pipeline. It is nil once an
	// operator that cannot be expressed as a range stage has been applied.
	view func() ranges.View[T]
}

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the pipeline until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// --- Constructors ---

// From creates a pipeline from an existing Iterator.
func From[T any](it Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return it
		},
	}
}

// FromView creates a pipeline pulling the elements of v from begin to end.
// Each run starts from a fresh cursor, so the pipeline can be run repeatedly.
func FromView[T any](v ranges.View[T]) *Pipeline[T] {
	return fromBinder(func() ranges.View[T] { return v })
}

// fromBinder creates a view-backed pipeline whose view is built by bind on
// every run. A contract violation raised while binding is returned by the
// first Next.
func fromBinder[T any](bind func() ranges.View[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] { return bindView(bind) },
		view:   bind,
	}
}

func bindView[T any](bind func() ranges.View[T]) (it Iterator[T]) {
	defer func() {
		if err := violation(recover()); err != nil {
			it = &errIter[T]{err: err}
		}
	}()
	v := bind()
	if v.Empty() {
		return &viewIter[T]{}
	}
	return &viewIter[T]{cur: v.Begin(), end: v.End()}
}

// FromSlice creates a pipeline from a slice of values.
func FromSlice[T any](items []T) *Pipeline[T] {
	return FromView(ranges.Of(items))
}

// FromSeq creates a pipeline from a push iterator.
func FromSeq[T any](seq iter.Seq[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull(seq)
			return &seqIter[T]{next: next, stop: stop}
		},
	}
}

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			it := p.create(ctx)
			defer it.Close()
			for {
				val, ok, err := it.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect runs the pipeline and returns all values as a slice.
// On error it returns the values pulled so far.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	it := p.create(ctx)
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// CollectView runs the pipeline and returns its values as a view over a new
// slice, ready for further range adaptors.
func CollectView[T any](ctx context.Context, p *Pipeline[T]) (ranges.View[T], error) {
	items, err := Collect(ctx, p)
	if err != nil {
		return ranges.View[T]{}, err
	}
	return ranges.Of(items), nil
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

// Iter returns the raw Iterator for this pipeline. The caller must Close() it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}

// --- Internal iterators ---

// viewIter steps a cursor until it equals end. A nil cursor is exhausted.
type viewIter[T any] struct {
	cur ranges.Cursor[T]
	end ranges.Cursor[T]
}

func (it *viewIter[T]) Next(ctx context.Context) (val T, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return val, false, err
	}
	if it.cur == nil || it.cur.Equal(it.end) {
		return val, false, nil
	}
	defer func() {
		if verr := violation(recover()); verr != nil {
			var zero T
			it.cur = nil
			val, ok, err = zero, false, verr
		}
	}()
	val = it.cur.Get()
	it.cur.Next()
	return val, true, nil
}

func (it *viewIter[T]) Close() error { return nil }

// errIter fails once with err, then reports exhaustion.
type errIter[T any] struct {
	err error
}

func (it *errIter[T]) Next(_ context.Context) (val T, ok bool, err error) {
	err, it.err = it.err, nil
	return val, false, err
}

func (it *errIter[T]) Close() error { return nil }

// violation returns the contract violation carried by a recovered panic value
// and re-panics anything else.
func violation(r any) error {
	if r == nil {
		return nil
	}
	appErr, ok := r.(*errors.AppError)
	if !ok {
		panic(r)
	}
	return appErr
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, ok := it.next()
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}
