package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/models"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// RequireFlags fails with a usage error when any of names was not given
func RequireFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return WithCode(ExitUsage, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", ")))
}

// ParsePriority maps "1".."3" or "high", "medium", "low" to a priority
func ParsePriority(value string) (models.Priority, error) {
	p, ok := models.ParsePriority(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return 0, &taskservice.ValidationError{
			Field: "priority",
			Err:   fmt.Errorf("%w, got %q", taskservice.ErrInvalidPriority, value),
		}
	}
	return p, nil
}

// ParseStatus maps "todo", "doing" or "done" to a status
func ParseStatus(value string) (models.Status, error) {
	s, ok := models.ParseStatus(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return "", &taskservice.ValidationError{
			Field: "status",
			Err:   fmt.Errorf("%w, got %q", taskservice.ErrInvalidStatus, value),
		}
	}
	return s, nil
}

// ReadValue returns value, or everything read from stdin when value is "-"
func ReadValue(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
