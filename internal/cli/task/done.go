package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as done",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDone,
	}

	addIDFlag(cmd)
	addOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := taskID(cmd, args)
	if err != nil {
		return usageError(formatter, err, "Usage: tarefas task done <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	found, err := cliInstance.App.TaskService.MarkDone(cmd.Context(), id)
	if err != nil {
		return serviceError(formatter, err)
	}
	if !found {
		return notFound(formatter, id)
	}

	return formatter.Success(taskResult{ID: id}, styles.Success(fmt.Sprintf("✓ Task %d marked as done", id))+"\n")
}

// taskResult is the JSON payload of commands that only touch one id
type taskResult struct {
	ID int `json:"task_id"`
}

func (r taskResult) GetID() int { return r.ID }
