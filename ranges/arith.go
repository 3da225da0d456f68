package ranges

// Advance moves c by n elements, backward when n is negative.
// It is O(|n|) steps for every cursor type.
func Advance[T any](c Cursor[T], n int) {
	for ; n > 0; n-- {
		c.Next()
	}
	for ; n < 0; n++ {
		c.Prev()
	}
}

// Distance returns the number of forward steps from a to b.
// b must be reachable from a. It is O(n) steps for every cursor type.
func Distance[T any](a, b Cursor[T]) int {
	c := a.Clone()
	d := 0
	for !c.Equal(b) {
		c.Next()
		d++
	}
	return d
}
