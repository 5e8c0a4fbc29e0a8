package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed application error. Status carries the upstream HTTP
// status code when the error originated from the course source, zero otherwise.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUpstream   = New("UPSTREAM_UNAVAILABLE", 0, "failed to fetch courses")
	ErrBadPayload = New("BAD_PAYLOAD", 0, "malformed course payload")
	ErrValidation = New("VALIDATION_ERROR", 0, "validation failed")
)

// RequestFailed builds the error surfaced when the course source answers with
// a non-success status. The message keeps the status code visible to the user.
func RequestFailed(status int) *Error {
	return New("REQUEST_FAILED", status, fmt.Sprintf("request failed: %d", status))
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrUpstream.Code, ErrUpstream.Status, ErrUpstream.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
