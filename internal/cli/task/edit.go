package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update a task",
		Long: `Update the fields given on the command line and leave the rest untouched.
Passing an empty value to --description, --due or --tags clears that field.

Examples:
  tarefas task edit 3 --priority=high
  tarefas task edit --id=3 --status=doing --tags=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	addIDFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin, empty to clear)")
	cmd.Flags().String("due", "", "New due date YYYY-MM-DD (empty to clear)")
	cmd.Flags().String("priority", "", "New priority: 1-3 or high, medium, low")
	cmd.Flags().String("status", "", "New status: todo, doing, done")
	cmd.Flags().String("tags", "", "New comma separated tags (empty to clear)")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := taskID(cmd, args)
	if err != nil {
		return usageError(formatter, err, "Usage: tarefas task edit <id> [--title ...]")
	}

	req, err := updateRequest(cmd)
	if err != nil {
		return serviceError(formatter, err)
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cmd.Context()
	found, err := cliInstance.App.TaskService.UpdateTask(ctx, id, req)
	if err != nil {
		return serviceError(formatter, err)
	}
	if !found {
		return notFound(formatter, id)
	}

	task, _, err := cliInstance.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return serviceError(formatter, err)
	}

	return formatter.Success(task, styles.Success(fmt.Sprintf("✓ Task %d updated", id))+"\n")
}

// updateRequest turns the flags that were set into an update.
// An omitted flag keeps the stored value; an empty one clears it.
func updateRequest(cmd *cobra.Command) (taskservice.UpdateTaskRequest, error) {
	var req taskservice.UpdateTaskRequest
	flags := cmd.Flags()

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	req.Title = stringFlag("title")
	req.DueDate = stringFlag("due")
	req.Tags = stringFlag("tags")

	if description := stringFlag("description"); description != nil {
		v, err := cli.ReadValue(*description, cmd.InOrStdin())
		if err != nil {
			return req, err
		}
		req.Description = &v
	}

	if v := stringFlag("priority"); v != nil {
		priority, err := cli.ParsePriority(*v)
		if err != nil {
			return req, err
		}
		req.Priority = &priority
	}

	if v := stringFlag("status"); v != nil {
		status, err := cli.ParseStatus(*v)
		if err != nil {
			return req, err
		}
		req.Status = &status
	}

	return req, nil
}
