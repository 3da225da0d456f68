package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Contract violations raised by the range engine.
const (
	// ErrCodeEmptyCallable indicates a call through an empty callable holder.
	ErrCodeEmptyCallable ErrorCode = "EMPTY_CALLABLE"
	// ErrCodeOutOfBounds indicates a step past sentinel-begin or sentinel-end.
	ErrCodeOutOfBounds ErrorCode = "OUT_OF_BOUNDS"
	// ErrCodeLengthMismatch indicates zipped sources of different lengths.
	ErrCodeLengthMismatch ErrorCode = "LENGTH_MISMATCH"
	// ErrCodeIndexOutOfRange indicates an indexed access past the view size.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeEmptyView indicates front/back access on an empty view.
	ErrCodeEmptyView ErrorCode = "EMPTY_VIEW"
	// ErrCodePredicateViolated indicates a filter stepped backward past every match.
	ErrCodePredicateViolated ErrorCode = "PREDICATE_VIOLATED"
	// ErrCodeNegativeCount indicates a take descriptor built with a negative count.
	ErrCodeNegativeCount ErrorCode = "NEGATIVE_COUNT"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var contractCodes = map[ErrorCode]bool{
	ErrCodeEmptyCallable:     true,
	ErrCodeOutOfBounds:       true,
	ErrCodeLengthMismatch:    true,
	ErrCodeIndexOutOfRange:   true,
	ErrCodeEmptyView:         true,
	ErrCodePredicateViolated: true,
	ErrCodeNegativeCount:     true,
}

// IsContractCode reports whether code denotes a precondition violation
// rather than a recoverable failure.
func IsContractCode(code ErrorCode) bool {
	return contractCodes[code]
}
