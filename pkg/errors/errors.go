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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Input data errors
	ErrInputLoad  ErrorCode = "INPUT_LOAD"
	ErrInputParse ErrorCode = "INPUT_PARSE"

	// Deployment errors
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrComponentNone ErrorCode = "COMPONENT_NONE"

	// Rendering errors
	ErrTemplateLoad  ErrorCode = "TEMPLATE_LOAD"
	ErrRenderFailure ErrorCode = "RENDER_FAILURE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Command errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
)

// DeploygenError represents a structured error with code and details
type DeploygenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DeploygenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DeploygenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DeploygenError) Is(target error) bool {
	var targetErr *DeploygenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DeploygenError with the given code and message
func New(code ErrorCode, message string) *DeploygenError {
	return &DeploygenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DeploygenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DeploygenError {
	return &DeploygenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DeploygenError
func Wrap(err error, code ErrorCode, message string) *DeploygenError {
	if err == nil {
		return nil
	}
	return &DeploygenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DeploygenError {
	if err == nil {
		return nil
	}
	return &DeploygenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining
func (e *DeploygenError) WithDetail(key string, value interface{}) *DeploygenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, or ErrUnknown if it is not
// a DeploygenError.
func GetCode(err error) ErrorCode {
	var derr *DeploygenError
	if errors.As(err, &derr) {
		return derr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var derr *DeploygenError
	if errors.As(err, &derr) {
		return derr.Code == code
	}
	return false
}
