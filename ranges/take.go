package ranges

import (
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// TakeCursor yields at most n elements of the underlying cursor, then jumps
// straight to sentinel-end.
//
// The countdown does not look at the source: the cursor performs exactly the
// forward steps it is asked for, so n must not exceed the number of elements
// left in the source. The jump to sentinel-end is not undone by Prev: stepping
// back from an exhausted TakeCursor lands on the source's last element, so
// take views support forward traversal and indexed access but not reverse
// traversal from their end.
type TakeCursor[T any] struct {
	pos position[T]
	n   int
}

// NewTakeCursor returns a cursor at it that yields n elements before ending.
func NewTakeCursor[T any](it, sentinelBegin, sentinelEnd Cursor[T], n int) *TakeCursor[T] {
	contract.Require(n >= 0, func() *errors.AppError { return errors.NegativeCount(n) })
	c := &TakeCursor[T]{pos: newPosition(it, sentinelBegin, sentinelEnd), n: n}
	c.pos.normalize(c)
	return c
}

// takeEnd builds the end cursor of a take view: already at sentinel-end with
// nothing left to count.
func takeEnd[T any](sentinelBegin, sentinelEnd Cursor[T]) *TakeCursor[T] {
	return &TakeCursor[T]{pos: newPosition(sentinelEnd, sentinelBegin, sentinelEnd)}
}

func (c *TakeCursor[T]) Next()   { c.pos.increment(c) }
func (c *TakeCursor[T]) Prev()   { c.pos.decrement(c) }
func (c *TakeCursor[T]) Get() T  { return c.pos.current() }
func (c *TakeCursor[T]) Ref() *T { return c.pos.currentRef() }

// Remaining returns how many elements the cursor will still yield after the
// current one.
func (c *TakeCursor[T]) Remaining() int { return c.n }

func (c *TakeCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*TakeCursor[T])
	return ok && c.pos.equal(&o.pos)
}

func (c *TakeCursor[T]) Clone() Cursor[T] {
	return &TakeCursor[T]{pos: c.pos.clone(), n: c.n}
}

func (c *TakeCursor[T]) resync(dir Direction) {
	if dir == Backward {
		c.n++
		return
	}
	if c.n == 0 {
		c.pos.it = c.pos.sentinelEnd.Clone()
		return
	}
	c.n--
}
