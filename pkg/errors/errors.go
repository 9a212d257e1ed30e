// Package errors provides structured error types for the elbow surfaces.
//
// The routing core reports failures through plain sentinel errors
// (router.ErrInvalidConfig, router.ErrUnroutable); this package carries
// the coded errors the CLI and HTTP layers wrap them in, so exit codes
// and HTTP statuses can be derived without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures
//   - UNROUTABLE: no path exists for a well-formed request
//   - NOT_FOUND: resource not found
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidScenario, "route %q: unknown side %q", name, side)
//	if errors.Is(err, errors.ErrCodeInvalidScenario) {
//	    // handle validation error
//	}
//
//	// Wrap core errors with a code
//	err := errors.Wrap(errors.ErrCodeUnroutable, coreErr, "route %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidScenario Code = "INVALID_SCENARIO"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Routing errors
	ErrCodeUnroutable Code = "UNROUTABLE"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the HTTP status the API surfaces it
// with: 400 for malformed input, 422 for well-formed but unroutable
// requests, 404 for missing resources, 500 otherwise.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidConfig, ErrCodeInvalidScenario, ErrCodeInvalidFormat:
		return 400
	case ErrCodeUnroutable:
		return 422
	case ErrCodeNotFound:
		return 404
	default:
		return 500
	}
}
