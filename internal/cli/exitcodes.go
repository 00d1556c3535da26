package cli

import (
	"errors"

	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags, malformed flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid priority, status or due date values.
	ExitValidation = 5
)

// CommandError carries the exit code of a failed command
type CommandError struct {
	Code int
	Err  error

	// reported is set once the error has been shown to the user
	reported bool
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// WithCode attaches an exit code to err
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code
	}
	if taskservice.IsValidation(err) {
		return ExitValidation
	}
	return ExitError
}

// IsReported reports whether the formatter already printed err
func IsReported(err error) bool {
	var ce *CommandError
	return errors.As(err, &ce) && ce.reported
}
