package ranges

import (
	"container/list"

	"github.com/gammazero/deque"
)

// ToSlice copies the elements of v, in order, into a new slice.
func ToSlice[T any](v View[T]) []T {
	var out []T
	for x := range v.All() {
		out = append(out, x)
	}
	return out
}

// ToDeque copies the elements of v, in order, into a new deque.
func ToDeque[T any](v View[T]) *deque.Deque[T] {
	d := new(deque.Deque[T])
	for x := range v.All() {
		d.PushBack(x)
	}
	return d
}

// ToList copies the elements of v, in order, into a new doubly linked list.
// Element values have dynamic type T.
func ToList[T any](v View[T]) *list.List {
	l := list.New()
	for x := range v.All() {
		l.PushBack(x)
	}
	return l
}

// OfDeque returns a view over the elements of d. Elements are read with At,
// so Ref yields copies.
func OfDeque[T any](d *deque.Deque[T]) View[T] {
	return View[T]{begin: &dequeCursor[T]{d: d}, end: &dequeCursor[T]{d: d, i: d.Len()}}
}

// OfList returns a view over a list whose values all have dynamic type T.
// Ref yields copies.
func OfList[T any](l *list.List) View[T] {
	return View[T]{begin: &listCursor[T]{l: l, e: l.Front()}, end: &listCursor[T]{l: l}}
}

// ForEach calls fn on every element of v, in order.
func ForEach[T any](v View[T], fn func(T)) {
	for x := range v.All() {
		fn(x)
	}
}

// Reduce folds the elements of v into an accumulator, left to right.
func Reduce[T, R any](v View[T], init R, fn func(R, T) R) R {
	acc := init
	for x := range v.All() {
		acc = fn(acc, x)
	}
	return acc
}
