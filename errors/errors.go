// Package errors defines the error values raised by the type system.
//
// Errors are ordinary Go errors. The surrounding runtime is responsible for
// converting them into its user-visible exception representation; ErrorKind
// names the exception class the error corresponds to.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrType indicates a type mismatch or a failed type construction.
	ErrType ErrorKind = iota
	// ErrAttribute indicates an attribute lookup that reached the end of the
	// resolution chain.
	ErrAttribute
	// ErrValue indicates an invalid value for an operation.
	ErrValue
	// ErrRuntime indicates a general runtime error.
	ErrRuntime
)

// String returns the exception class name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrType:
		return "TypeError"
	case ErrAttribute:
		return "AttributeError"
	case ErrValue:
		return "ValueError"
	case ErrRuntime:
		return "RuntimeError"
	default:
		return "Exception"
	}
}

// StructuredError is an error with a kind, an optional code and hint, and an
// optional underlying cause.
type StructuredError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns the error message followed by the hint, if any.
func (e *StructuredError) FriendlyErrorMessage() string {
	if e.Hint == "" {
		return e.Error()
	}
	return fmt.Sprintf("%s\n  hint: %s", e.Error(), e.Hint)
}

// WithCause wraps the error with a cause.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}

// WithHint attaches a hint such as a "did you mean" suggestion.
func (e *StructuredError) WithHint(hint string) *StructuredError {
	e.Hint = hint
	return e
}

// WithCode sets the error code.
func (e *StructuredError) WithCode(code ErrorCode) *StructuredError {
	e.Code = code
	return e
}

// ToFormatted converts the error for use with a Formatter.
func (e *StructuredError) ToFormatted() *FormattedError {
	return &FormattedError{
		Code:    e.Code,
		Kind:    e.Kind.String(),
		Message: e.Message,
		Hint:    e.Hint,
	}
}

// New creates a StructuredError of the given kind.
func New(kind ErrorKind, message string) *StructuredError {
	return &StructuredError{Kind: kind, Message: message}
}

// Newf creates a StructuredError of the given kind with a formatted message.
func Newf(kind ErrorKind, format string, args ...any) *StructuredError {
	return &StructuredError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// TypeErrorf returns a TypeError.
func TypeErrorf(format string, args ...any) *StructuredError {
	return Newf(ErrType, format, args...).WithCode(E4001)
}

// AttributeErrorf returns an AttributeError.
func AttributeErrorf(format string, args ...any) *StructuredError {
	return Newf(ErrAttribute, format, args...).WithCode(E4010)
}

// ValueErrorf returns a ValueError.
func ValueErrorf(format string, args ...any) *StructuredError {
	return Newf(ErrValue, format, args...)
}

// KindOf reports the kind of the first StructuredError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Is, As and Unwrap mirror the standard library so callers need only one
// errors import.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
