package ngcli

import (
	"errors"
	"fmt"
)

// Sentinel errors for Angular CLI delegation.
var (
	// ErrToolFailed indicates the Angular CLI exited with a non-zero status.
	ErrToolFailed = errors.New("angular cli command failed")

	// ErrToolNotFound indicates the Angular CLI binary is not on PATH.
	ErrToolNotFound = errors.New("angular cli not found")
)

// ToolError describes a failed Angular CLI invocation.
type ToolError struct {
	Command  Command
	ExitCode int
	Stderr   string
	Wrapped  error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + firstLine(e.Stderr)
	}
	if e.Wrapped != nil && !errors.Is(e.Wrapped, ErrToolFailed) {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Wrapped
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
