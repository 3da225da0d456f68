package ranges

import (
	"slices"
	"strconv"
	"testing"

	"github.com/StarQTius/Little-Type-Library/callable"
	"github.com/StarQTius/Little-Type-Library/errors"
)

// --- Skeleton bounds ---

func TestCursor_IncrementAtEnd(t *testing.T) {
	c := Of([]int{1, 2}).Filter(isEven).End()
	mustViolate(t, errors.ErrCodeOutOfBounds, func() { c.Next() })
}

func TestCursor_DecrementAtBegin(t *testing.T) {
	c := Pipe(Of([]int{1, 2}), Map(square)).Begin()
	mustViolate(t, errors.ErrCodeOutOfBounds, func() { c.Prev() })
}

func TestCursor_DereferenceAtEnd(t *testing.T) {
	c := Of([]int{1, 2}).Take(1).End()
	mustViolate(t, errors.ErrCodeOutOfBounds, func() { c.Get() })
}

// --- Filter ---

func TestFilter_ForwardAndBackward(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
	}{
		{"even", []int{1, 2, 3, 4, 5, 6}, isEven},
		{"first and last match", []int{2, 3, 5, 8}, isEven},
		{"all match", []int{2, 4, 6}, isEven},
		{"none match", []int{1, 3, 5}, isEven},
		{"empty", nil, isEven},
		{"single run", []int{1, 1, 9, 9, 9, 1}, func(n int) bool { return n > 5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var want []int
			for _, n := range tc.items {
				if tc.pred(n) {
					want = append(want, n)
				}
			}
			v := Of(tc.items).Filter(tc.pred)
			if got := ToSlice(v); !slices.Equal(got, want) {
				t.Errorf("forward: got %v, want %v", got, want)
			}
			if got := collectBackward(v); !slices.Equal(got, reversed(want)) {
				t.Errorf("backward: got %v, want %v", got, reversed(want))
			}
			if v.Size() != len(want) {
				t.Errorf("Size() = %d, want %d", v.Size(), len(want))
			}
		})
	}
}

func TestFilter_StartsOnFirstMatch(t *testing.T) {
	src := Of([]int{1, 3, 4, 5})
	c := NewFilterCursor(src.Begin(), src.Begin(), src.End(), callable.Of(isEven))
	if c.Get() != 4 {
		t.Errorf("expected cursor normalized onto 4, got %d", c.Get())
	}
}

func TestFilter_StepSymmetry(t *testing.T) {
	c := Of([]int{1, 2, 3, 4, 5, 6, 7, 8}).Filter(isEven).Begin()
	c.Next()
	c.Next()
	at := c.Get()
	if at != 6 {
		t.Fatalf("expected 6, got %d", at)
	}
	c.Next()
	c.Prev()
	if c.Get() != at {
		t.Errorf("Next then Prev: got %d, want %d", c.Get(), at)
	}
	c.Prev()
	c.Next()
	if c.Get() != at {
		t.Errorf("Prev then Next: got %d, want %d", c.Get(), at)
	}
}

func TestFilter_DecrementPastFirstMatch(t *testing.T) {
	c := Of([]int{1, 2, 3}).Filter(isEven).Begin()
	mustViolate(t, errors.ErrCodePredicateViolated, func() { c.Prev() })
}

func TestFilter_RefWritesThrough(t *testing.T) {
	s := []int{1, 2, 3, 4}
	for p := range Of(s).Filter(isEven).Refs() {
		*p = -*p
	}
	if !slices.Equal(s, []int{1, -2, 3, -4}) {
		t.Errorf("got %v", s)
	}
}

// --- Map ---

func TestMap_LengthAndElements(t *testing.T) {
	s := []int{3, 1, 4, 1, 5}
	v := Pipe(Of(s), Map(square))
	if v.Size() != len(s) {
		t.Fatalf("Size() = %d, want %d", v.Size(), len(s))
	}
	for i, x := range s {
		if got := v.At(i); got != square(x) {
			t.Errorf("At(%d) = %d, want %d", i, got, square(x))
		}
	}
}

func TestMap_TypeConversion(t *testing.T) {
	got := ToSlice(Pipe(Of([]int{1, 2, 3}), Map(strconv.Itoa)))
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("got %v", got)
	}
}

func TestMap_RefIsACopy(t *testing.T) {
	s := []int{1, 2}
	p := Pipe(Of(s), Map(func(n int) int { return n })).Begin().Ref()
	*p = 100
	if s[0] != 1 {
		t.Error("writing through a mapped reference must not touch the source")
	}
}

func TestMap_Backward(t *testing.T) {
	got := collectBackward(Pipe(Of([]int{1, 2, 3}), Map(square)))
	if !slices.Equal(got, []int{9, 4, 1}) {
		t.Errorf("got %v, want [9 4 1]", got)
	}
}

func TestMap_EmptyFunction(t *testing.T) {
	v := Pipe(Of([]int{1}), Map[int, int](nil))
	mustViolate(t, errors.ErrCodeEmptyCallable, func() { v.Front() })
}

func TestMap_Lazy(t *testing.T) {
	calls := 0
	v := Pipe(Of([]int{1, 2, 3}), Map(func(n int) int {
		calls++
		return n
	}))
	if calls != 0 {
		t.Fatalf("mapping must not run before dereference, ran %d times", calls)
	}
	v.Front()
	if calls != 1 {
		t.Errorf("expected 1 call after Front, got %d", calls)
	}
}

// --- Take ---

func TestTake_Prefix(t *testing.T) {
	s := []int{10, 20, 30, 40}
	for n := 0; n <= len(s); n++ {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			v := Of(s).Take(n)
			if got := ToSlice(v); !slices.Equal(got, s[:n]) {
				t.Errorf("got %v, want %v", got, s[:n])
			}
			if v.Size() != n {
				t.Errorf("Size() = %d, want %d", v.Size(), n)
			}
		})
	}
}

func TestTake_PrevRestoresCount(t *testing.T) {
	c := Of([]int{1, 2, 3, 4, 5}).Take(3).Begin().(*TakeCursor[int])
	if c.Remaining() != 2 {
		t.Fatalf("Remaining() = %d, want 2", c.Remaining())
	}
	c.Next()
	if c.Remaining() != 1 || c.Get() != 2 {
		t.Fatalf("after Next: remaining %d at %d", c.Remaining(), c.Get())
	}
	c.Prev()
	if c.Remaining() != 2 || c.Get() != 1 {
		t.Errorf("after Prev: remaining %d at %d", c.Remaining(), c.Get())
	}
}

func TestTake_EndsBeforeSource(t *testing.T) {
	c := Of([]int{1, 2, 3, 4, 5}).Take(2).Begin()
	c.Next()
	c.Next()
	mustViolate(t, errors.ErrCodeOutOfBounds, func() { c.Get() })
}

func TestTake_NegativeCount(t *testing.T) {
	mustViolate(t, errors.ErrCodeNegativeCount, func() { Take[int](-1) })
}

// Backward walks back from the take's source end, for the take itself and
// for every view layered on it. Materializing first restores the prefix.
func TestTake_BackwardIgnoresCount(t *testing.T) {
	tests := []struct {
		name     string
		view     View[int]
		forward  []int
		backward []int
	}{
		{"take", Of([]int{1, 2, 3, 4, 5}).Take(2), []int{1, 2}, []int{5, 4, 3, 2, 1}},
		{"filter over take", Of([]int{1, 2, 3, 4, 5, 6}).Take(3).Filter(isEven), []int{2}, []int{6, 4, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToSlice(tc.view); !slices.Equal(got, tc.forward) {
				t.Errorf("forward: got %v, want %v", got, tc.forward)
			}
			if got := collectBackward(tc.view); !slices.Equal(got, tc.backward) {
				t.Errorf("backward: got %v, want %v", got, tc.backward)
			}
			if got := collectBackward(Of(ToSlice(tc.view))); !slices.Equal(got, reversed(tc.forward)) {
				t.Errorf("materialized backward: got %v, want %v", got, reversed(tc.forward))
			}
		})
	}
}

func TestTake_OverFilter(t *testing.T) {
	got := ToSlice(Of([]int{1, 2, 3, 4, 5, 6, 7, 8}).Filter(isEven).Take(3))
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}
