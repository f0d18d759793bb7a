// Package errors provides structured error types for the sleigh application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - MATCH_*: Matching failures (recoverable candidate rejections or
//     definite infeasibility)
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRoster, "unknown column: %s", col)
//	if errors.Is(err, errors.ErrCodeInvalidRoster) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open roster %s", path)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRoster Code = "INVALID_ROSTER"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound            Code = "NOT_FOUND"
	ErrCodeFileNotFound        Code = "FILE_NOT_FOUND"
	ErrCodeParticipantNotFound Code = "PARTICIPANT_NOT_FOUND"

	// Matching errors. The first three are recoverable candidate rejections
	// ("try another permutation"); the last two terminate a strategy.
	ErrCodeInvalidPermutation Code = "MATCH_INVALID_PERMUTATION"
	ErrCodeNotDerangement     Code = "MATCH_NOT_DERANGEMENT"
	ErrCodeExclusionViolated  Code = "MATCH_EXCLUSION_VIOLATED"
	ErrCodeInfeasible         Code = "MATCH_INFEASIBLE"
	ErrCodeAttemptsExhausted  Code = "MATCH_ATTEMPTS_EXHAUSTED"

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

// Recoverable reports whether err is a candidate rejection rather than a
// terminal failure. Recoverable errors signal "try a different candidate"
// to search strategies and are never fatal to the process.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidPermutation, ErrCodeNotDerangement, ErrCodeExclusionViolated:
		return true
	}
	return false
}
