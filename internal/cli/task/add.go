package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/models"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task. New tasks always start in "todo".

Examples:
  # Simple task (human-readable output)
  tarefas task add --title="Buy milk"

  # Quiet mode for bash capture
  TASK_ID=$(tarefas task add --title="Pay rent" --due=2026-11-05 --priority=high --quiet)

  # Description from stdin
  echo "long notes" | tarefas task add --title="Write report" --description=-
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	cmd.Flags().String("priority", "medium", "Priority: 1-3 or high, medium, low")
	cmd.Flags().String("tags", "", "Comma separated tags")

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	if err := cli.RequireFlags(cmd, "title"); err != nil {
		return usageError(formatter, err, "Usage: tarefas task add --title=<title>")
	}

	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	dueDate, _ := cmd.Flags().GetString("due")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	tags, _ := cmd.Flags().GetString("tags")

	description, err := cli.ReadValue(descriptionFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err, "")
	}

	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
			"Valid priorities are: 1 (high), 2 (medium), 3 (low)")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cmd.Context()
	id, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Tags:        tags,
	})
	if err != nil {
		return serviceError(formatter, err)
	}

	task, _, err := cliInstance.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return serviceError(formatter, err)
	}
	if task == nil {
		task = &models.Task{ID: id, Title: title}
	}

	return formatter.Success(task, styles.Success(fmt.Sprintf("✓ Task %d created", id))+"\n")
}
