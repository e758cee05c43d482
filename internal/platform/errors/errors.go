// Package errors provides structured error handling with HTTP status mapping
// and client-safe response shaping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the category of an error, used for status mapping and metrics.
type ErrorType string

const (
	// TypeValidation indicates client input failed shape, length or enum
	// constraints (HTTP 422).
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates a missing resource (HTTP 404).
	TypeNotFound ErrorType = "not_found"
	// TypeInternal indicates a server-side failure, storage included (HTTP 500).
	TypeInternal ErrorType = "internal"
)

// Error is a structured error carrying its category and an optional cause.
// Message is client-safe for validation errors; causes are logged server-side
// and never serialized.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error category to a status code.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates a validation error (HTTP 422). The message is sent
// to the client, so it must stay generic.
func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

// NotFoundError creates a not-found error (HTTP 404).
func NotFoundError(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

// InternalError creates an internal error (HTTP 500) wrapping its cause.
func InternalError(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// ErrorResponse is the JSON body sent for every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToResponse shapes the error for clients. Validation and not-found messages
// pass through; internal errors always collapse to a fixed detail string so
// storage internals never leak.
func (e *Error) ToResponse() ErrorResponse {
	switch e.Type {
	case TypeValidation:
		return ErrorResponse{Detail: e.Message}
	case TypeNotFound:
		return ErrorResponse{Detail: "Not found"}
	default:
		return ErrorResponse{Detail: "Internal database error"}
	}
}

// AsStructuredError converts any error into a structured *Error.
// Unrecognized errors become internal errors.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}

	return InternalError("internal server error", err)
}
