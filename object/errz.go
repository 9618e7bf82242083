package object

import (
	"github.com/deepnoodle-ai/pytypes/errors"
)

// Re-export types from errors package for convenience
type (
	StructuredError = errors.StructuredError
	ErrorKind       = errors.ErrorKind
	ErrorCode       = errors.ErrorCode
)

// Re-export error kind constants
const (
	ErrType      = errors.ErrType
	ErrAttribute = errors.ErrAttribute
	ErrValue     = errors.ErrValue
	ErrRuntime   = errors.ErrRuntime
)

// Re-export functions for convenience
var (
	TypeErrorf      = errors.TypeErrorf
	AttributeErrorf = errors.AttributeErrorf
	ValueErrorf     = errors.ValueErrorf
	IsKind          = errors.IsKind
)
