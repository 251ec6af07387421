// Package errors provides typed errors with exit codes for scopeforge.
//
// # Error Types
//
// ScopeError is the base error type that wraps an error with an exit code:
//
//	type ScopeError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // I/O failures: unreadable input, unwritable output
//	ExitEmptyScope   = 2  // Final scope empty and --fail-on-empty-scope set
//	ExitConfigError  = 3  // Invalid config file, environment or flag values
//
// # Extracting Exit Codes
//
// Only main translates errors into a process status:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
