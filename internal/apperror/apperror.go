// Package apperror defines the application's error taxonomy.
//
// Every layer below the HTTP handlers returns one of these domain errors
// (or wraps one with fmt.Errorf and %w). The handlers never inspect SQL or
// JWT library errors directly — they check the sentinels with errors.Is()
// and map them to status codes in exactly one place (handler/response.go).
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors. These represent the CLASS of failure; the AppError
// wrapper carries the human-readable detail.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError pairs a sentinel with a message safe to show to clients.
type AppError struct {
	Err     error  // one of the sentinels above
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is() walk through to the sentinel.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that a resource with the given id does not exist.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports a bad request field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a uniqueness violation on the given field.
func Conflict(field, message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
		Field:   field,
	}
}

// Unauthorized reports a missing, malformed, or expired credential.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
