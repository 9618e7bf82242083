package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E4xxx: type system errors
//   - E9xxx: hierarchy definition errors
type ErrorCode string

const (
	// Type system errors (E4xxx)
	E4001 ErrorCode = "E4001" // Type error
	E4002 ErrorCode = "E4002" // Inconsistent method resolution order
	E4003 ErrorCode = "E4003" // Duplicate base class
	E4004 ErrorCode = "E4004" // Wrong kind of argument
	E4005 ErrorCode = "E4005" // Bad __init__ return value
	E4006 ErrorCode = "E4006" // Not a class
	E4007 ErrorCode = "E4007" // Not callable
	E4010 ErrorCode = "E4010" // Attribute not found
	E4011 ErrorCode = "E4011" // Read-only attribute

	// Hierarchy definition errors (E9xxx)
	E9001 ErrorCode = "E9001" // Unknown class name
	E9002 ErrorCode = "E9002" // Duplicate class name
	E9003 ErrorCode = "E9003" // Malformed definition
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E4001: "type error",
	E4002: "inconsistent method resolution order",
	E4003: "duplicate base class",
	E4004: "wrong kind of argument",
	E4005: "__init__ returned a value",
	E4006: "not a class",
	E4007: "not callable",
	E4010: "attribute not found",
	E4011: "read-only attribute",

	E9001: "unknown class name",
	E9002: "duplicate class name",
	E9003: "malformed definition",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '4':
		return "type"
	case '9':
		return "definition"
	default:
		return "unknown"
	}
}
