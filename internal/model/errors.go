package model

import "errors"

// Common service errors.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStoryNotFound is returned when a requested story does not exist.
	ErrStoryNotFound = errors.New("story not found")
	// ErrInternalServer indicates an unexpected internal failure.
	ErrInternalServer = errors.New("internal server error")
	// ErrInvalidInput indicates a malformed or unacceptable request payload.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError describes a request that failed normalization. The message
// is safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
