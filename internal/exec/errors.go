package exec

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the command binary could not be resolved in PATH.
type NotFoundError struct {
	Cmd string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Cmd)
}

// ExitStatusError indicates the command ran but exited non-zero.
type ExitStatusError struct {
	Cmd      string
	ExitCode int
	Stderr   string
	cause    error
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed (exit %d): %s", e.Cmd, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed (exit %d)", e.Cmd, e.ExitCode)
}

// Unwrap returns the underlying exec error for errors.Is/errors.As support.
func (e *ExitStatusError) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether err indicates a missing command binary.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
