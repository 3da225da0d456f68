// Package callable provides Func, a nullable holder for a single-argument
// function value.
//
// Adaptors keep their predicate or transform in a Func so the zero value of
// an adaptor iterator is usable (an end position never calls its function)
// while still catching calls through a position that was never bound to one.
//
// Any Go function fits, including closures over non-copyable state and
// method expressions such as (*T).Valid, where the receiver is the first
// argument:
//
//	isValid := callable.Of((*Order).Valid)
//	ok := isValid.Call(order)
package callable
