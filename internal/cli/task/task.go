package task

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SummaryCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags every task command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// addIDFlag registers --id for commands that also accept the id positionally
func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
}

// taskID reads the id from the first argument or the --id flag
func taskID(cmd *cobra.Command, args []string) (int, error) {
	var id int
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, cli.WithCode(cli.ExitUsage, fmt.Errorf("invalid task ID %q", args[0]))
		}
		id = n
	} else {
		id, _ = cmd.Flags().GetInt("id")
	}

	if id <= 0 {
		return 0, cli.WithCode(cli.ExitUsage, errors.New("task ID must be a positive integer"))
	}
	return id, nil
}

// openCLI returns the CLI for cmd and a function that closes it
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close cli", "error", err)
		}
	}, nil
}

// usageError reports a malformed invocation
func usageError(formatter *cli.OutputFormatter, err error, usage string) error {
	return formatter.Fail(cli.ExitUsage, "USAGE_ERROR", err, usage)
}

// notFound reports a missing task
func notFound(formatter *cli.OutputFormatter, id int) error {
	return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
		fmt.Errorf("task %d not found", id),
		"Use 'tarefas task list' to see available tasks")
}

// serviceError reports a failure from the task service
func serviceError(formatter *cli.OutputFormatter, err error) error {
	if taskservice.IsValidation(err) {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	}
	slog.Error("task command failed", "error", err)
	return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err, "")
}
