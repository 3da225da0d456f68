// Package pipeline consumes range views through context-aware, pull-based
// iterators.
//
// A ranges.View is stepped by plain method calls and reports misuse by
// panicking. A Pipeline wraps a view so that consumers pull one element at a
// time with a context, stop on cancellation between elements, and receive
// contract violations raised while stepping as *errors.AppError values.
//
// Pipelines are lazy: nothing is pulled until Collect, Drain or ForEach runs.
// Every stage runs on the caller's goroutine.
//
// # Operators
//
//   - Apply: bind a ranges.Pipeline of filter, map and take stages
//   - Filter: keep values matching a predicate
//   - Map: transform each value, possibly failing
//   - FlatMap: expand each value into a view and flatten the results
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Chunk: group consecutive values into slices of a fixed size
//
// While a pipeline is still backed by a view (FromView, FromSlice, or Apply
// and Filter on such a pipeline), Apply and Filter become stages of that view
// and run inside its cursors. After Map, FlatMap, Tap or Chunk, Apply buffers
// the upstream values of each run into a slice first.
//
// # Usage
//
//	evens := ranges.Of(nums).Filter(func(n int) bool { return n%2 == 0 })
//	src := pipeline.FromView(evens)
//	logged := pipeline.Tap(src, func(_ context.Context, n int) error {
//	    log.Debug("element", logger.Fields("value", n))
//	    return nil
//	})
//	results, err := pipeline.Collect(ctx, logged)
package pipeline
