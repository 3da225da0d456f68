// Package errors provides the structured error type shared by the library.
//
// Contract violations detected by the range engine (stepping past a sentinel,
// calling an empty callable, zipping sequences of different lengths) are
// reported by panicking with an *AppError; recoverable failures in the outer
// packages (recipe building, configuration) are returned as *AppError values.
package errors
