// Package errors provides structured error types for chartkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND / FILE_NOT_FOUND: Resource not found
//   - HOST_LOOKUP / ENGINE / DISPOSED: Render bridge failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidTheme) {
//	    // Handle validation error
//	}
//
//	// Wrap engine failures
//	err := errors.Wrap(errors.ErrCodeEngine, origErr, "setOption on %s", target)
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme     Code = "INVALID_THEME"
	ErrCodeInvalidEasing    Code = "INVALID_EASING"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidElementID Code = "INVALID_ELEMENT_ID"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Render bridge errors
	ErrCodeHostLookup Code = "HOST_LOOKUP"
	ErrCodeEngine     Code = "ENGINE"
	ErrCodeDisposed   Code = "DISPOSED"
	ErrCodeTimeout    Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// Coder is implemented by typed errors outside this package that carry a
// code of their own, such as render.HostLookupError.
type Coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a [Coder] with a
// matching code. The outermost coded error decides.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds neither an *Error nor a [Coder].
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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

// TimeoutError reports that a bridged call did not complete in time.
type TimeoutError struct {
	Op      string // Operation that timed out (e.g. "getDataURL")
	Seconds int    // Deadline that was exceeded, in seconds (0 if unknown)
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	if e.Seconds > 0 {
		return fmt.Sprintf("%s timed out after %d seconds", e.Op, e.Seconds)
	}
	return fmt.Sprintf("%s timed out", e.Op)
}

// Code returns the error code for this error type.
func (e *TimeoutError) Code() Code {
	return ErrCodeTimeout
}
