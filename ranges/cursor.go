package ranges

import (
	"container/list"

	"github.com/gammazero/deque"
)

// Cursor is a bidirectional position over a sequence of T.
//
// Cursors are mutable; Clone returns an independent copy. Equal compares
// positions only and is meaningful only between cursors over the same source.
type Cursor[T any] interface {
	// Next moves one element forward.
	Next()
	// Prev moves one element backward.
	Prev()
	// Get returns the element at the current position.
	Get() T
	// Ref returns the address of the current element when the source is
	// addressable, or the address of a fresh copy when the element is
	// produced on the fly. Writes through a copy are not observed by the
	// source.
	Ref() *T
	// Equal reports whether other is at the same position.
	Equal(other Cursor[T]) bool
	// Clone returns an independent copy of the cursor.
	Clone() Cursor[T]
}

// Iterable is any source exposing a begin/end cursor pair. Each call returns
// a fresh cursor.
type Iterable[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// Direction tells a resync hook which way the cursor just moved.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

type sliceCursor[T any] struct {
	s []T
	i int
}

func (c *sliceCursor[T]) Next()   { c.i++ }
func (c *sliceCursor[T]) Prev()   { c.i-- }
func (c *sliceCursor[T]) Get() T  { return c.s[c.i] }
func (c *sliceCursor[T]) Ref() *T { return &c.s[c.i] }

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && o.i == c.i
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

type dequeCursor[T any] struct {
	d *deque.Deque[T]
	i int
}

func (c *dequeCursor[T]) Next()  { c.i++ }
func (c *dequeCursor[T]) Prev()  { c.i-- }
func (c *dequeCursor[T]) Get() T { return c.d.At(c.i) }

func (c *dequeCursor[T]) Ref() *T {
	v := c.d.At(c.i)
	return &v
}

func (c *dequeCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*dequeCursor[T])
	return ok && o.i == c.i
}

func (c *dequeCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

// listCursor walks a container/list. The end position is a nil element;
// stepping back from it lands on the last element.
type listCursor[T any] struct {
	l *list.List
	e *list.Element
}

func (c *listCursor[T]) Next() { c.e = c.e.Next() }

func (c *listCursor[T]) Prev() {
	if c.e == nil {
		c.e = c.l.Back()
		return
	}
	c.e = c.e.Prev()
}

func (c *listCursor[T]) Get() T { return c.e.Value.(T) }

func (c *listCursor[T]) Ref() *T {
	v := c.Get()
	return &v
}

func (c *listCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*listCursor[T])
	return ok && o.e == c.e
}

func (c *listCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}
