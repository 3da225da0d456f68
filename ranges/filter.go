package ranges

import (
	"github.com/StarQTius/Little-Type-Library/callable"
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// FilterCursor visits only the elements satisfying its predicate.
//
// Whenever it is not at sentinel-end, the current element satisfies the
// predicate. Stepping backward from the first match toward a sentinel-begin
// that does not match is a contract violation.
type FilterCursor[T any] struct {
	pos  position[T]
	pred callable.Func[T, bool]
}

// NewFilterCursor returns a cursor starting at it, bounded by sentinelBegin and
// sentinelEnd, moved forward onto the first element satisfying pred.
func NewFilterCursor[T any](it, sentinelBegin, sentinelEnd Cursor[T], pred callable.Func[T, bool]) *FilterCursor[T] {
	c := &FilterCursor[T]{pos: newPosition(it, sentinelBegin, sentinelEnd), pred: pred}
	c.pos.normalize(c)
	return c
}

func (c *FilterCursor[T]) Next()   { c.pos.increment(c) }
func (c *FilterCursor[T]) Prev()   { c.pos.decrement(c) }
func (c *FilterCursor[T]) Get() T  { return c.pos.current() }
func (c *FilterCursor[T]) Ref() *T { return c.pos.currentRef() }

func (c *FilterCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*FilterCursor[T])
	return ok && c.pos.equal(&o.pos)
}

func (c *FilterCursor[T]) Clone() Cursor[T] {
	return &FilterCursor[T]{pos: c.pos.clone(), pred: c.pred}
}

func (c *FilterCursor[T]) resync(dir Direction) {
	it := c.pos.it
	if dir == Forward {
		for !it.Equal(c.pos.sentinelEnd) && !c.pred.Call(it.Get()) {
			it.Next()
		}
		return
	}
	for !it.Equal(c.pos.sentinelBegin) && !c.pred.Call(it.Get()) {
		it.Prev()
	}
	if contract.Enabled {
		contract.Require(c.pred.Call(it.Get()), errors.PredicateViolated)
	}
}
