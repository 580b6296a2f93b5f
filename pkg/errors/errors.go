// Package errors provides structured error types for the Slidekit engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Tiers
//
// The engine distinguishes three failure tiers, and only two of them are
// expressed as errors from this package:
//   - Precondition failures (wrong selection size, invalid numeric input,
//     ambiguous table) are detected before any mutation and returned as an
//     *Error with a specific code.
//   - Whole-operation rejections (merged-cell swap) are detected after
//     read-only validation but before any mutation, also as an *Error.
//   - Per-element mutation failures are NOT errors at the operation level;
//     engines fold them into success/failure counts on the operation report.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSelection, "select at least %d objects", 2)
//	if errors.Is(err, errors.ErrCodeInvalidSelection) {
//	    // Handle precondition failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "apply payload to cell (%d,%d)", r, c)
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
	ErrCodeInvalidSelection Code = "INVALID_SELECTION"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidIndex     Code = "INVALID_INDEX"

	// Table resolution errors
	ErrCodeAmbiguousTable Code = "AMBIGUOUS_TABLE"
	ErrCodeMergedCell     Code = "MERGED_CELL"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

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
