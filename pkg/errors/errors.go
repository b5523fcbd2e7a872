// Package errors provides structured error types for the stripeplan application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, TUI, and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - STORE_*: Room store backend errors
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWallLength, "wall length must be positive, got %.1f", length)
//	if errors.Is(err, errors.ErrCodeInvalidWallLength) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, origErr, "failed to load room %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout validation errors, checked in this order (fail-fast).
	ErrCodeInvalidWallLength Code = "INVALID_WALL_LENGTH"
	ErrCodeInvalidWallHeight Code = "INVALID_WALL_HEIGHT"
	ErrCodeNoConfigSelected  Code = "NO_CONFIGURATION_SELECTED"
	ErrCodeThicknessRange    Code = "THICKNESS_OUT_OF_RANGE"

	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidSelection Code = "INVALID_SELECTION"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeInvalidRoom      Code = "INVALID_ROOM"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeRoomNotFound Code = "ROOM_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Store backend errors
	ErrCodeStore Code = "STORE_ERROR"

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

// ThicknessError reports a chosen stripe configuration whose recomputed
// widths fall outside the constraint window. It carries both computed widths
// so callers can display them.
type ThicknessError struct {
	WhiteCm   float64 // recomputed white stripe width
	ColoredCm float64 // recomputed colored stripe width
	MinCm     float64 // lower constraint bound
	MaxCm     float64 // upper constraint bound
}

// Error implements the error interface.
func (e *ThicknessError) Error() string {
	return fmt.Sprintf("stripe widths out of range: colored %.1f cm, white %.1f cm (allowed %.1f-%.1f cm)",
		e.ColoredCm, e.WhiteCm, e.MinCm, e.MaxCm)
}

// Code returns the error code for this error type.
func (e *ThicknessError) Code() Code {
	return ErrCodeThicknessRange
}

// AsThickness extracts a ThicknessError from an error chain, if present.
func AsThickness(err error) (*ThicknessError, bool) {
	var te *ThicknessError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
