package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Contract is true when the error reports a precondition violation.
	Contract bool `json:"contract"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError, flagging contract codes automatically.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Contract: IsContractCode(code),
	}
}

// --- Contract violations ---

// EmptyCallable reports a call through a callable holder that holds nothing.
func EmptyCallable() *AppError {
	return New(ErrCodeEmptyCallable, "callable holder is empty")
}

// OutOfBounds reports a step past the sentinel named by bound ("begin" or "end").
func OutOfBounds(op, bound string) *AppError {
	return &AppError{
		Code: ErrCodeOutOfBounds, Message: fmt.Sprintf("%s at sentinel-%s", op, bound),
		Contract: true,
		Details:  map[string]any{"operation": op, "sentinel": bound},
	}
}

// LengthMismatch reports zipped sources whose sizes differ.
func LengthMismatch(sizes []int) *AppError {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprint(s)
	}
	return &AppError{
		Code: ErrCodeLengthMismatch, Message: "zipped sources have different lengths: " + strings.Join(parts, ", "),
		Contract: true,
		Details:  map[string]any{"sizes": sizes},
	}
}

// IndexOutOfRange reports an indexed access at or past size.
func IndexOutOfRange(index, size int) *AppError {
	return &AppError{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("index %d out of range for size %d", index, size),
		Contract: true,
		Details:  map[string]any{"index": index, "size": size},
	}
}

// EmptyView reports front/back access on an empty view.
func EmptyView(op string) *AppError {
	return &AppError{
		Code: ErrCodeEmptyView, Message: fmt.Sprintf("%s of empty view", op),
		Contract: true,
		Details:  map[string]any{"operation": op},
	}
}

// PredicateViolated reports a filter position that does not satisfy its predicate.
func PredicateViolated() *AppError {
	return New(ErrCodePredicateViolated, "filter stepped backward past the first match")
}

// NegativeCount reports a take count below zero.
func NegativeCount(n int) *AppError {
	return &AppError{
		Code: ErrCodeNegativeCount, Message: fmt.Sprintf("take count %d is negative", n),
		Contract: true,
		Details:  map[string]any{"count": n},
	}
}

// --- Recoverable errors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}

// --- Helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Wrap converts any error into an AppError. AppErrors (wrapped or not) are
// returned as-is; anything else becomes an Internal error with err as cause.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// FromPanic converts a recovered panic value into an AppError.
// Returns nil when r is nil.
func FromPanic(r any) *AppError {
	switch v := r.(type) {
	case nil:
		return nil
	case *AppError:
		return v
	case error:
		return Wrap(v)
	default:
		return Internal(fmt.Errorf("%v", v))
	}
}
