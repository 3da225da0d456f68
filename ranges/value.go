package ranges

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

// Number is the set of types the value generator can count with.
type Number interface {
	constraints.Integer | constraints.Float
}

// ValueCursor generates numbers without a backing container. Its position is
// the number itself and it moves by step. The lowest and highest values of N
// act as sentinel-begin and sentinel-end.
//
// Cursors compare equal only when their values are exactly equal, so the end
// of a stepped range must be reachable from its start (see SteppedRange).
type ValueCursor[N Number] struct {
	value   N
	step    N
	lowest  N
	highest N
}

// NewValueCursor returns a cursor at value moving by step.
func NewValueCursor[N Number](value, step N) *ValueCursor[N] {
	lowest, highest := bounds[N]()
	return &ValueCursor[N]{value: value, step: step, lowest: lowest, highest: highest}
}

func (c *ValueCursor[N]) Next() {
	contract.Require(c.value != c.highest, errIncrementAtEnd)
	c.value += c.step
}

func (c *ValueCursor[N]) Prev() {
	contract.Require(c.value != c.lowest, errDecrementAtBegin)
	c.value -= c.step
}

func (c *ValueCursor[N]) Get() N { return c.value }

func (c *ValueCursor[N]) Ref() *N {
	v := c.value
	return &v
}

// Step returns the increment applied by Next.
func (c *ValueCursor[N]) Step() N { return c.step }

func (c *ValueCursor[N]) Equal(other Cursor[N]) bool {
	o, ok := other.(*ValueCursor[N])
	return ok && o.value == c.value
}

func (c *ValueCursor[N]) Clone() Cursor[N] {
	cp := *c
	return &cp
}

// bounds returns the lowest and highest representable values of N.
// Named types are handled through their underlying kind.
func bounds[N Number]() (lowest, highest N) {
	t := reflect.TypeFor[N]()
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		hi := int64(^uint64(0) >> (65 - bits))
		lo := -hi - 1
		return N(lo), N(hi)
	case reflect.Float32:
		var hi float64 = math.MaxFloat32
		return N(-hi), N(hi)
	case reflect.Float64:
		var hi float64 = math.MaxFloat64
		return N(-hi), N(hi)
	default:
		hi := ^uint64(0) >> (64 - bits)
		return 0, N(hi)
	}
}
