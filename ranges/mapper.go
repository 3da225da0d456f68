package ranges

import "github.com/StarQTius/Little-Type-Library/callable"

// MapCursor yields fn applied to each element of the underlying cursor.
// Elements are produced by value: Ref returns the address of a fresh copy,
// never an address inside the source.
type MapCursor[S, T any] struct {
	pos position[S]
	fn  callable.Func[S, T]
}

// NewMapCursor returns a cursor at it bounded by sentinelBegin and sentinelEnd.
func NewMapCursor[S, T any](it, sentinelBegin, sentinelEnd Cursor[S], fn callable.Func[S, T]) *MapCursor[S, T] {
	c := &MapCursor[S, T]{pos: newPosition(it, sentinelBegin, sentinelEnd), fn: fn}
	c.pos.normalize(c)
	return c
}

func (c *MapCursor[S, T]) Next()  { c.pos.increment(c) }
func (c *MapCursor[S, T]) Prev()  { c.pos.decrement(c) }
func (c *MapCursor[S, T]) Get() T { return c.fn.Call(c.pos.current()) }

func (c *MapCursor[S, T]) Ref() *T {
	v := c.Get()
	return &v
}

func (c *MapCursor[S, T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*MapCursor[S, T])
	return ok && c.pos.equal(&o.pos)
}

func (c *MapCursor[S, T]) Clone() Cursor[T] {
	return &MapCursor[S, T]{pos: c.pos.clone(), fn: c.fn}
}
