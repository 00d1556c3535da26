package task

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task permanently (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	addIDFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	id, err := taskID(cmd, args)
	if err != nil {
		return usageError(formatter, err, "Usage: tarefas task delete <id> [--force]")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cmd.Context()

	// Get task details for confirmation
	task, found, err := cliInstance.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return serviceError(formatter, err)
	}
	if !found {
		return notFound(formatter, id)
	}

	// Ask for confirmation unless force or quiet mode.
	// In JSON mode the prompt goes to stderr so stdout stays parseable.
	if !force && !formatter.Quiet {
		prompt := formatter.Out
		if formatter.JSON {
			prompt = formatter.Err
		}
		fmt.Fprintf(prompt, "Delete task #%d '%s'? (y/N): ", id, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(prompt, "Cancelled")
			return nil
		}
	}

	found, err = cliInstance.App.TaskService.DeleteTask(ctx, id)
	if err != nil {
		return serviceError(formatter, err)
	}
	if !found {
		return notFound(formatter, id)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Success(taskResult{ID: id}, styles.Success(fmt.Sprintf("✓ Task %d deleted", id))+"\n")
}
