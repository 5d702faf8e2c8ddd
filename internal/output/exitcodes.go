package output

import "errors"

// Exit codes:
// 0 = Success (including all-skip and soft-only failures)
// 1 = Usage error or no supported project detected
// 2 = At least one hard setup step failed
// 3 = A required external tool is missing
const (
	ExitSuccess     = 0
	ExitUsageError  = 1
	ExitStepFailure = 2
	ExitToolMissing = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, no supported project in the directory.
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsageError,
		Message: message,
	}
}

// NewStepFailureError creates an error for hard setup step failures (exit code 2).
// Use for: dependency install or venv creation failed.
func NewStepFailureError(message string) *ExitError {
	return &ExitError{
		Code:    ExitStepFailure,
		Message: message,
	}
}

// NewStepFailureErrorWithCause creates a step failure error wrapping an underlying cause.
func NewStepFailureErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitStepFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewToolMissingError creates an error for a missing external tool (exit code 3).
// Use for: package manager or interpreter not found in PATH.
func NewToolMissingError(message string) *ExitError {
	return &ExitError{
		Code:    ExitToolMissing,
		Message: message,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUsageError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to usage error for untyped errors
	return ExitUsageError
}
