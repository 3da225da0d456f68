package ranges

import (
	"math"
	"reflect"
)

// Values returns every value of N from its lowest to its highest, by 1.
func Values[N Number]() View[N] {
	lowest, highest := bounds[N]()
	return valueView(lowest, highest, 1)
}

// RangeFrom returns start, start+1, ... up to the highest value of N.
func RangeFrom[N Number](start N) View[N] {
	_, highest := bounds[N]()
	return valueView(start, highest, 1)
}

// Range returns start, start+1, ... up to the last value below end. It is
// empty when end <= start. A fractional float end stops after the last whole
// step below it.
func Range[N Number](start, end N) View[N] {
	return valueView(start, alignEnd(start, end, 1), 1)
}

// Stepped returns every step-th value of N starting from its lowest value.
// The highest value of N is only an end if the progression hits it exactly;
// bound the view with Take otherwise.
func Stepped[N Number](step N) View[N] {
	lowest, highest := bounds[N]()
	return valueView(lowest, highest, step)
}

// SteppedFrom returns start, start+step, ... without an upper bound other
// than the highest value of N. As with Stepped, bound it with Take.
func SteppedFrom[N Number](start, step N) View[N] {
	_, highest := bounds[N]()
	return valueView(start, highest, step)
}

// SteppedRange returns start, start+step, ... stopping before end. A negative
// step counts down. The end is moved onto the first value of the progression
// at or past end so that traversal stops even when end-start is not a
// multiple of step; with floating-point steps this relies on the step being
// exactly representable. The view is empty when step points away from end.
func SteppedRange[N Number](start, end, step N) View[N] {
	return valueView(start, alignEnd(start, end, step), step)
}

func valueView[N Number](start, end, step N) View[N] {
	return View[N]{begin: NewValueCursor(start, step), end: NewValueCursor(end, step)}
}

func alignEnd[N Number](start, end, step N) N {
	if step == 0 || (step > 0 && end <= start) || (step < 0 && end >= start) {
		return start
	}
	span := end - start
	n := span / step
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Float32, reflect.Float64:
		n = N(math.Ceil(float64(n)))
	default:
		if n*step != span {
			n++
		}
	}
	return start + n*step
}
