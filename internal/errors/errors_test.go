package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestScopeError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ScopeError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestScopeError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestScopeError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitEmptyScope, "empty scope"},
		{ExitConfigError, "config error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	if ExitEmptyScope == ExitGeneralError {
		t.Error("empty scope must not share the generic failure code")
	}
	if ExitEmptyScope == ExitSuccess {
		t.Error("empty scope must be non-zero")
	}
}

func TestInputUnreadable(t *testing.T) {
	cause := fmt.Errorf("no such file or directory")
	err := InputUnreadable("in.txt", cause)

	if err.Code != ExitGeneralError {
		t.Errorf("Code = %d, want %d", err.Code, ExitGeneralError)
	}
	if err.Message != "cannot read scope file in.txt" {
		t.Errorf("Message = %q, want %q", err.Message, "cannot read scope file in.txt")
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestOutputUnwritable(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := OutputUnwritable("/out/scope_cleaned", cause)

	if err.Code != ExitGeneralError {
		t.Errorf("Code = %d, want %d", err.Code, ExitGeneralError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestEmptyScope(t *testing.T) {
	err := EmptyScope()

	if err.Code != ExitEmptyScope {
		t.Errorf("Code = %d, want %d", err.Code, ExitEmptyScope)
	}
	if err.Message != "final scope is empty after exclusion" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid toml")
	err := ConfigError("failed to parse config", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "ScopeError",
			err:      EmptyScope(),
			wantCode: ExitEmptyScope,
		},
		{
			name:     "wrapped ScopeError",
			err:      fmt.Errorf("outer: %w", ConfigError("bad", nil)),
			wantCode: ExitConfigError,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("output directory cannot be empty")

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}
	if err.Error() != "output directory cannot be empty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if GetExitCode(fmt.Errorf("wrapped: %w", err)) != ExitConfigError {
		t.Error("GetExitCode should see through wrapping")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var scopeErr *ScopeError
	if !errors.As(outer, &scopeErr) {
		t.Error("errors.As should find ScopeError")
	}

	if scopeErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", scopeErr.Code, ExitConfigError)
	}
}
