// Package apperror defines the error taxonomy shared by services and handlers.
// Components translate transport and storage failures into these values at their
// boundary; handlers map them to status codes.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a missing or invalid setting the process cannot serve without.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks a resource that does not exist upstream or in storage.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a failure fetching data that is required to finish a request.
	ErrUpstream = errors.New("upstream failure")
	// ErrIgnored marks an input that was acknowledged and deliberately dropped.
	ErrIgnored = errors.New("ignored")
	// ErrConflict marks a write suppressed by a uniqueness constraint.
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

type AppError struct {
	Err     error  // taxonomy sentinel
	Message string // human-readable message
	Field   string // optional field causing the error
	Cause   error  // underlying error, logged only
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func Configuration(message string) *AppError {
	return &AppError{Err: ErrConfiguration, Message: message}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func Upstream(message string, cause error) *AppError {
	return &AppError{Err: ErrUpstream, Message: message, Cause: cause}
}

func Ignored(message string) *AppError {
	return &AppError{Err: ErrIgnored, Message: message}
}

func Conflict(resource, id string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s conflict with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
