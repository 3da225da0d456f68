package ranges

import (
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// Zipped is the element of a two-way zip: references to the current element
// of each source. Writing through First or Second writes into the source when
// the source is addressable (slices).
type Zipped[A, B any] struct {
	First  *A
	Second *B
}

// Values returns copies of both referenced elements.
func (z Zipped[A, B]) Values() (A, B) { return *z.First, *z.Second }

// Zipped3 is the element of a three-way zip.
type Zipped3[A, B, C any] struct {
	First  *A
	Second *B
	Third  *C
}

// Values returns copies of the three referenced elements.
func (z Zipped3[A, B, C]) Values() (A, B, C) { return *z.First, *z.Second, *z.Third }

// ZipCursor advances two cursors in lockstep. Its position is the pair of
// component positions; two ZipCursors are equal only if both components are.
type ZipCursor[A, B any] struct {
	first  position[A]
	second position[B]
}

func (c *ZipCursor[A, B]) atEnd() bool   { return c.first.atEnd() && c.second.atEnd() }
func (c *ZipCursor[A, B]) atBegin() bool { return c.first.atBegin() && c.second.atBegin() }

func (c *ZipCursor[A, B]) Next() {
	contract.Require(!c.atEnd(), errIncrementAtEnd)
	c.first.it.Next()
	c.second.it.Next()
}

func (c *ZipCursor[A, B]) Prev() {
	contract.Require(!c.atBegin(), errDecrementAtBegin)
	c.first.it.Prev()
	c.second.it.Prev()
}

func (c *ZipCursor[A, B]) Get() Zipped[A, B] {
	contract.Require(!c.atEnd(), errDerefAtEnd)
	return Zipped[A, B]{First: c.first.it.Ref(), Second: c.second.it.Ref()}
}

func (c *ZipCursor[A, B]) Ref() *Zipped[A, B] {
	z := c.Get()
	return &z
}

func (c *ZipCursor[A, B]) Equal(other Cursor[Zipped[A, B]]) bool {
	o, ok := other.(*ZipCursor[A, B])
	return ok && c.first.equal(&o.first) && c.second.equal(&o.second)
}

func (c *ZipCursor[A, B]) Clone() Cursor[Zipped[A, B]] {
	return &ZipCursor[A, B]{first: c.first.clone(), second: c.second.clone()}
}

// Zip3Cursor advances three cursors in lockstep.
type Zip3Cursor[A, B, C any] struct {
	first  position[A]
	second position[B]
	third  position[C]
}

func (c *Zip3Cursor[A, B, C]) atEnd() bool {
	return c.first.atEnd() && c.second.atEnd() && c.third.atEnd()
}

func (c *Zip3Cursor[A, B, C]) atBegin() bool {
	return c.first.atBegin() && c.second.atBegin() && c.third.atBegin()
}

func (c *Zip3Cursor[A, B, C]) Next() {
	contract.Require(!c.atEnd(), errIncrementAtEnd)
	c.first.it.Next()
	c.second.it.Next()
	c.third.it.Next()
}

func (c *Zip3Cursor[A, B, C]) Prev() {
	contract.Require(!c.atBegin(), errDecrementAtBegin)
	c.first.it.Prev()
	c.second.it.Prev()
	c.third.it.Prev()
}

func (c *Zip3Cursor[A, B, C]) Get() Zipped3[A, B, C] {
	contract.Require(!c.atEnd(), errDerefAtEnd)
	return Zipped3[A, B, C]{First: c.first.it.Ref(), Second: c.second.it.Ref(), Third: c.third.it.Ref()}
}

func (c *Zip3Cursor[A, B, C]) Ref() *Zipped3[A, B, C] {
	z := c.Get()
	return &z
}

func (c *Zip3Cursor[A, B, C]) Equal(other Cursor[Zipped3[A, B, C]]) bool {
	o, ok := other.(*Zip3Cursor[A, B, C])
	return ok && c.first.equal(&o.first) && c.second.equal(&o.second) && c.third.equal(&o.third)
}

func (c *Zip3Cursor[A, B, C]) Clone() Cursor[Zipped3[A, B, C]] {
	return &Zip3Cursor[A, B, C]{first: c.first.clone(), second: c.second.clone(), third: c.third.clone()}
}

// ZipNCursor advances any number of same-typed cursors in lockstep. Its
// element holds one reference per source, in source order.
type ZipNCursor[T any] struct {
	parts []position[T]
}

func (c *ZipNCursor[T]) atEnd() bool {
	for i := range c.parts {
		if !c.parts[i].atEnd() {
			return false
		}
	}
	return true
}

func (c *ZipNCursor[T]) atBegin() bool {
	for i := range c.parts {
		if !c.parts[i].atBegin() {
			return false
		}
	}
	return true
}

func (c *ZipNCursor[T]) Next() {
	contract.Require(!c.atEnd(), errIncrementAtEnd)
	for i := range c.parts {
		c.parts[i].it.Next()
	}
}

func (c *ZipNCursor[T]) Prev() {
	contract.Require(!c.atBegin(), errDecrementAtBegin)
	for i := range c.parts {
		c.parts[i].it.Prev()
	}
}

func (c *ZipNCursor[T]) Get() []*T {
	contract.Require(!c.atEnd(), errDerefAtEnd)
	refs := make([]*T, len(c.parts))
	for i := range c.parts {
		refs[i] = c.parts[i].it.Ref()
	}
	return refs
}

func (c *ZipNCursor[T]) Ref() *[]*T {
	refs := c.Get()
	return &refs
}

func (c *ZipNCursor[T]) Equal(other Cursor[[]*T]) bool {
	o, ok := other.(*ZipNCursor[T])
	if !ok || len(o.parts) != len(c.parts) {
		return false
	}
	for i := range c.parts {
		if !c.parts[i].equal(&o.parts[i]) {
			return false
		}
	}
	return true
}

func (c *ZipNCursor[T]) Clone() Cursor[[]*T] {
	parts := make([]position[T], len(c.parts))
	for i := range c.parts {
		parts[i] = c.parts[i].clone()
	}
	return &ZipNCursor[T]{parts: parts}
}

// Zip returns a view of pairs of references into a and b, element by element.
// Both sources must have the same length. Other iterables join through From.
func Zip[A, B any](va View[A], vb View[B]) View[Zipped[A, B]] {
	if contract.Enabled {
		requireSameSize(va.Size(), vb.Size())
	}
	return View[Zipped[A, B]]{
		begin: &ZipCursor[A, B]{
			first:  newPosition(va.begin, va.begin, va.end),
			second: newPosition(vb.begin, vb.begin, vb.end),
		},
		end: &ZipCursor[A, B]{
			first:  newPosition(va.end, va.begin, va.end),
			second: newPosition(vb.end, vb.begin, vb.end),
		},
	}
}

// Zip3 returns a view of triples of references into a, b and c.
// All sources must have the same length.
func Zip3[A, B, C any](va View[A], vb View[B], vc View[C]) View[Zipped3[A, B, C]] {
	if contract.Enabled {
		requireSameSize(va.Size(), vb.Size(), vc.Size())
	}
	return View[Zipped3[A, B, C]]{
		begin: &Zip3Cursor[A, B, C]{
			first:  newPosition(va.begin, va.begin, va.end),
			second: newPosition(vb.begin, vb.begin, vb.end),
			third:  newPosition(vc.begin, vc.begin, vc.end),
		},
		end: &Zip3Cursor[A, B, C]{
			first:  newPosition(va.end, va.begin, va.end),
			second: newPosition(vb.end, vb.begin, vb.end),
			third:  newPosition(vc.end, vc.begin, vc.end),
		},
	}
}

// ZipN zips any number of same-typed sources. All sources must have the same
// length; zipping nothing yields an empty view.
func ZipN[T any](views ...View[T]) View[[]*T] {
	if contract.Enabled {
		sizes := make([]int, len(views))
		for i, v := range views {
			sizes[i] = v.Size()
		}
		requireSameSize(sizes...)
	}
	begin := &ZipNCursor[T]{parts: make([]position[T], len(views))}
	end := &ZipNCursor[T]{parts: make([]position[T], len(views))}
	for i, v := range views {
		begin.parts[i] = newPosition(v.begin, v.begin, v.end)
		end.parts[i] = newPosition(v.end, v.begin, v.end)
	}
	return View[[]*T]{begin: begin, end: end}
}

// Enumerate pairs every element of src with its index, starting at 0.
// It is Zip(Range(0, size), src).
func Enumerate[T any](v View[T]) View[Zipped[int, T]] {
	return Zip(Range(0, v.Size()), v)
}

func requireSameSize(sizes ...int) {
	for _, s := range sizes {
		if s != sizes[0] {
			panic(errors.LengthMismatch(sizes))
		}
	}
}
