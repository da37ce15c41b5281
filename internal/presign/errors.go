package presign

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrEmptyObjectKey      = errors.New("object key cannot be empty")
	ErrEmptyBucket         = errors.New("bucket name cannot be empty")
	ErrEmptyEndpoint       = errors.New("presign endpoint cannot be empty")
	ErrMissingPresignedURL = errors.New("response did not contain a presigned URL")
)

// HTTPError represents a response outside of the success range.
type HTTPError struct {
	StatusCode int
	Status     string
	Operation  string
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unsuccessful request to %s: %s: %s", e.Operation, e.Status, e.Message)
}

// NewHTTPError creates a new HTTPError with the given parameters.
func NewHTTPError(statusCode int, status, operation string, body []byte, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Operation:  operation,
		Body:       body,
		Message:    message,
	}
}

// UnknownModeError indicates an unsupported presign mode.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown presign mode %q, expected %q or %q", e.Mode, ModeEndpoint, ModeS3)
}
