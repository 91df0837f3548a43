package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registration errors
const (
	// ErrCodeMissingReference indicates a required object parameter was nil.
	ErrCodeMissingReference ErrorCode = "MISSING_REFERENCE"
	// ErrCodeInvalidKey indicates a resource key was empty or whitespace-only.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"
)

// Resolution errors
const (
	// ErrCodeNotFound indicates no registration exists for the requested type.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTypeMismatch indicates a resolved value did not have the expected type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// General errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)
