// Package contract holds the precondition checks of the range engine.
//
// Checks panic with an *errors.AppError describing the violation. Building
// with the ltl_unchecked tag compiles every check out; violating a
// precondition is then undefined and usually surfaces as a runtime panic
// from the Go runtime itself (nil func call, index out of range) or as
// silently wrong results.
package contract
