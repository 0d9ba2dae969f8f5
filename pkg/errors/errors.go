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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Environment errors
	ErrEnvMissing    ErrorCode = "ENV_MISSING"
	ErrEnvExists     ErrorCode = "ENV_EXISTS"
	ErrPythonMissing ErrorCode = "PYTHON_MISSING"

	// Operation errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// VenvupError represents a structured error with code and details
type VenvupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VenvupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VenvupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VenvupError) Is(target error) bool {
	var targetErr *VenvupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VenvupError with the given code and message
func New(code ErrorCode, message string) *VenvupError {
	return &VenvupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VenvupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VenvupError {
	return &VenvupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VenvupError
func Wrap(err error, code ErrorCode, message string) *VenvupError {
	if err == nil {
		return nil
	}
	return &VenvupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VenvupError {
	if err == nil {
		return nil
	}
	return &VenvupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VenvupError) WithDetail(key string, value interface{}) *VenvupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var verr *VenvupError
	if errors.As(err, &verr) {
		return verr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VenvupError
func GetErrorCode(err error) ErrorCode {
	var verr *VenvupError
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ErrUnknown
}
