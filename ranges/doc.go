// Package ranges implements lazy, composable views over sequences.
//
// A View is a non-owning (begin, end) pair of cursors. Adaptors (Filter, Map,
// Take, Zip and the numeric value generator) wrap the cursors of another view
// and transform or skip elements only as the consumer steps through them; no
// intermediate container is ever built.
//
//	s := []int{1, 2, 3, 4, 5, 6}
//	evenSquares := ranges.Then(
//		ranges.Filter(func(n int) bool { return n%2 == 0 }),
//		ranges.Map(func(n int) int { return n * n }),
//	).Then(ranges.Take[int](2))
//	ranges.ToSlice(ranges.Apply(ranges.Of(s), evenSquares)) // [4 16]
//
// # Descriptors and pipelines
//
// Filter, Map and Take return descriptors: values holding only the predicate,
// function or count. Pipe binds a descriptor to a view. Then composes two
// descriptors into a Pipeline, Append (or Pipeline.Then) adds one more, and
// Apply binds a whole pipeline to a view by applying its descriptors in order.
// A pipeline is built once and may be applied to any number of sources.
//
// # Complexity
//
// Every adaptor cursor is bidirectional, and View offers indexed access, but
// offsets and distances are always computed by stepping one element at a time.
// View.Size, View.At and View.Back are therefore O(n) for every view, and a
// single step of a Filter cursor is itself O(k) where k is the number of
// rejected elements skipped.
//
// # Contracts
//
// Views borrow their source: the source must outlive every view and cursor
// derived from it. Stepping a cursor past its sentinels, zipping sources of
// different lengths or indexing past the end are contract violations that
// panic with an *errors.AppError (see internal/contract for unchecked builds).
// Take does not clamp: taking more elements than the source holds is a
// precondition violation whose outcome is unspecified.
//
// Take views are forward-only from their end: View.Backward over a take, or
// over any Filter, Map or Zip view layered on one, walks back from the end of
// the take's source and yields elements the take excluded. No violation is
// raised.
package ranges
