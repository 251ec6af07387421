package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scopeforge
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitEmptyScope   = 2
	ExitConfigError  = 3
)

// ScopeError is the base error type for scopeforge
type ScopeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ScopeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScopeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ScopeError) ExitCode() int {
	return e.Code
}

// New creates a new ScopeError
func New(code int, message string) *ScopeError {
	return &ScopeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ScopeError
func Wrap(code int, message string, cause error) *ScopeError {
	return &ScopeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InputUnreadable returns an error for a scope file that is missing or cannot be read
func InputUnreadable(path string, cause error) *ScopeError {
	return Wrap(ExitGeneralError, fmt.Sprintf("cannot read scope file %s", path), cause)
}

// OutputUnwritable returns an error for an output directory or artifact that cannot be written
func OutputUnwritable(path string, cause error) *ScopeError {
	return Wrap(ExitGeneralError, fmt.Sprintf("cannot write %s", path), cause)
}

// EmptyScope returns the error raised when exclusions remove every in-scope address
func EmptyScope() *ScopeError {
	return New(ExitEmptyScope, "final scope is empty after exclusion")
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ScopeError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ScopeError {
	return New(ExitConfigError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var scopeErr *ScopeError
	if errors.As(err, &scopeErr) {
		return scopeErr.ExitCode()
	}
	return ExitGeneralError
}
