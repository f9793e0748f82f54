// Package errors defines coded errors for clio.
//
// The styling core reports expected failures (duplicate markup symbols,
// unknown colors, empty text) through return values. Coded errors are used by
// the surfaces around it: mode parsing, configuration, table documents,
// prompts and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Terminal errors
	ErrInvalidMode  ErrorCode = "INVALID_MODE"
	ErrInvalidColor ErrorCode = "INVALID_COLOR"
	ErrOutput       ErrorCode = "OUTPUT"
	ErrPrompt       ErrorCode = "PROMPT"

	// Widget errors
	ErrTableData ErrorCode = "TABLE_DATA"
	ErrNoChoice  ErrorCode = "NO_CHOICE"
)

// ClioError represents a structured error with code and details
type ClioError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClioError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClioError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ClioError with the same code
func (e *ClioError) Is(target error) bool {
	var targetErr *ClioError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClioError with the given code and message
func New(code ErrorCode, message string) *ClioError {
	return &ClioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClioError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClioError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *ClioError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClioError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *ClioError) WithDetail(key string, value interface{}) *ClioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var clioErr *ClioError
	if errors.As(err, &clioErr) {
		return clioErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClioError
func GetErrorCode(err error) ErrorCode {
	var clioErr *ClioError
	if errors.As(err, &clioErr) {
		return clioErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ClioError
func GetErrorDetails(err error) map[string]interface{} {
	var clioErr *ClioError
	if errors.As(err, &clioErr) {
		return clioErr.Details
	}
	return nil
}
