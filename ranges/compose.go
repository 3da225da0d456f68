package ranges

import (
	"fmt"
	"strings"

	"github.com/StarQTius/Little-Type-Library/callable"
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// Kind identifies the adaptor a descriptor builds.
type Kind int

const (
	KindFilter Kind = iota + 1
	KindMap
	KindTake
)

func (k Kind) String() string {
	switch k {
	case KindFilter:
		return "filter"
	case KindMap:
		return "map"
	case KindTake:
		return "take"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor is an adaptor not yet bound to a source: a predicate, a
// function or a count. Apply (or Pipe) binds it to a view; Then composes it
// with another descriptor into a Pipeline.
type Descriptor[In, Out any] struct {
	kind  Kind
	apply func(View[In]) View[Out]
}

// Filter describes keeping the elements for which pred returns true.
func Filter[T any](pred func(T) bool) Descriptor[T, T] {
	p := callable.Of(pred)
	return Descriptor[T, T]{
		kind: KindFilter,
		apply: func(v View[T]) View[T] {
			return View[T]{
				begin: NewFilterCursor(v.begin, v.begin, v.end, p),
				end:   NewFilterCursor(v.end, v.begin, v.end, p),
			}
		},
	}
}

// Map describes replacing every element x with fn(x).
func Map[S, T any](fn func(S) T) Descriptor[S, T] {
	f := callable.Of(fn)
	return Descriptor[S, T]{
		kind: KindMap,
		apply: func(v View[S]) View[T] {
			return View[T]{
				begin: NewMapCursor(v.begin, v.begin, v.end, f),
				end:   NewMapCursor(v.end, v.begin, v.end, f),
			}
		},
	}
}

// Take describes keeping the first n elements. n must not exceed the length
// of the source the descriptor is applied to.
func Take[T any](n int) Descriptor[T, T] {
	contract.Require(n >= 0, func() *errors.AppError { return errors.NegativeCount(n) })
	return Descriptor[T, T]{
		kind: KindTake,
		apply: func(v View[T]) View[T] {
			return View[T]{
				begin: NewTakeCursor(v.begin, v.begin, v.end, n),
				end:   takeEnd(v.begin, v.end),
			}
		},
	}
}

// Kind returns the adaptor the descriptor builds.
func (d Descriptor[In, Out]) Kind() Kind { return d.kind }

// Apply binds the descriptor to v.
func (d Descriptor[In, Out]) Apply(v View[In]) View[Out] { return d.apply(v) }

func (d Descriptor[In, Out]) stage() stage {
	return stage{kind: d.kind, apply: func(v any) any { return d.apply(v.(View[In])) }}
}

// Pipe binds d to v and returns the adapted view.
func Pipe[In, Out any](v View[In], d Descriptor[In, Out]) View[Out] { return d.Apply(v) }

// stage is a descriptor with its element types erased so that a pipeline can
// hold descriptors of different types in one ordered slice.
type stage struct {
	kind  Kind
	apply func(any) any
}

// Pipeline is an ordered sequence of descriptors taking a View[In] to a
// View[Out]. Building one touches no data; Apply runs a left fold of the
// stages over a view. Pipelines are immutable and may be applied to any
// number of sources.
type Pipeline[In, Out any] struct {
	stages []stage
}

// Then composes two descriptors into a pipeline applying first, then next.
func Then[A, B, C any](first Descriptor[A, B], next Descriptor[B, C]) Pipeline[A, C] {
	return Pipeline[A, C]{stages: []stage{first.stage(), next.stage()}}
}

// Append returns p followed by d. p is not modified.
func Append[A, B, C any](p Pipeline[A, B], d Descriptor[B, C]) Pipeline[A, C] {
	stages := make([]stage, 0, len(p.stages)+1)
	stages = append(stages, p.stages...)
	return Pipeline[A, C]{stages: append(stages, d.stage())}
}

// Compose returns a pipeline applying p, then q.
func Compose[A, B, C any](p Pipeline[A, B], q Pipeline[B, C]) Pipeline[A, C] {
	stages := make([]stage, 0, len(p.stages)+len(q.stages))
	stages = append(stages, p.stages...)
	return Pipeline[A, C]{stages: append(stages, q.stages...)}
}

// Chain composes same-typed descriptors in order. Chain() is the identity.
func Chain[T any](ds ...Descriptor[T, T]) Pipeline[T, T] {
	stages := make([]stage, len(ds))
	for i, d := range ds {
		stages[i] = d.stage()
	}
	return Pipeline[T, T]{stages: stages}
}

// Then returns p followed by a same-typed descriptor.
func (p Pipeline[In, Out]) Then(d Descriptor[Out, Out]) Pipeline[In, Out] {
	return Append(p, d)
}

// Apply binds every stage to v in order.
func (p Pipeline[In, Out]) Apply(v View[In]) View[Out] {
	var cur any = v
	for _, s := range p.stages {
		cur = s.apply(cur)
	}
	out, ok := cur.(View[Out])
	if !ok {
		panic(errors.Internal(fmt.Errorf("pipeline produced %T, want %T", cur, out)))
	}
	return out
}

// Len returns the number of stages.
func (p Pipeline[In, Out]) Len() int { return len(p.stages) }

// Kinds returns the kind of each stage, in application order.
func (p Pipeline[In, Out]) Kinds() []Kind {
	kinds := make([]Kind, len(p.stages))
	for i, s := range p.stages {
		kinds[i] = s.kind
	}
	return kinds
}

func (p Pipeline[In, Out]) String() string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.kind.String()
	}
	return strings.Join(names, " | ")
}

// Apply is p.Apply(v).
func Apply[In, Out any](v View[In], p Pipeline[In, Out]) View[Out] { return p.Apply(v) }
