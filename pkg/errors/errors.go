package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Scan errors
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrScanAccess        ErrorCode = "SCAN_ACCESS"

	// Date prefix errors
	ErrInvalidDateFormat ErrorCode = "INVALID_DATE_FORMAT"

	// Rename errors
	ErrRenameConflict ErrorCode = "RENAME_CONFLICT"
	ErrRenameFailed   ErrorCode = "RENAME_FAILED"

	// Shortcut errors
	ErrUnresolvableShortcut  ErrorCode = "UNRESOLVABLE_SHORTCUT"
	ErrTargetParentMissing   ErrorCode = "TARGET_PARENT_MISSING"
	ErrShortcutCommitFailure ErrorCode = "SHORTCUT_COMMIT_FAILURE"
)

// RedateError represents a structured error with code and details
type RedateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RedateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RedateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RedateError) Is(target error) bool {
	var targetErr *RedateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RedateError with the given code and message
func New(code ErrorCode, message string) *RedateError {
	return &RedateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RedateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RedateError {
	return &RedateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RedateError
func Wrap(err error, code ErrorCode, message string) *RedateError {
	if err == nil {
		return nil
	}
	return &RedateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RedateError {
	if err == nil {
		return nil
	}
	return &RedateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RedateError) WithDetail(key string, value interface{}) *RedateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var redateErr *RedateError
	if errors.As(err, &redateErr) {
		return redateErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RedateError
func GetErrorCode(err error) ErrorCode {
	var redateErr *RedateError
	if errors.As(err, &redateErr) {
		return redateErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RedateError
func GetErrorDetails(err error) map[string]interface{} {
	var redateErr *RedateError
	if errors.As(err, &redateErr) {
		return redateErr.Details
	}
	return nil
}
