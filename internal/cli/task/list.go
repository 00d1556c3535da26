package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/models"
	"github.com/thenoetrevino/tarefas/internal/render"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks ordered by priority, newest first within a priority.
Filters combine with AND.

Examples:
  tarefas task list
  tarefas task list --status=doing --priority=high
  tarefas task list --tag=work --json
`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only tasks with this status: todo, doing, done")
	cmd.Flags().String("priority", "", "Only tasks with this priority: 1-3 or high, medium, low")
	cmd.Flags().String("tag", "", "Only tasks whose tags contain this text")

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var filter models.TaskFilter
	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		status, err := cli.ParseStatus(statusFlag)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err, "Valid statuses are: todo, doing, done")
		}
		filter.Status = &status
	}
	if priorityFlag, _ := cmd.Flags().GetString("priority"); priorityFlag != "" {
		priority, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Valid priorities are: 1 (high), 2 (medium), 3 (low)")
		}
		filter.Priority = &priority
	}
	filter.Tag, _ = cmd.Flags().GetString("tag")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cmd.Context()
	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, filter)
	if err != nil {
		return serviceError(formatter, err)
	}

	if formatter.Quiet {
		printIDs(formatter, tasks)
		return nil
	}

	counts, err := cliInstance.App.TaskService.CountByStatus(ctx)
	if err != nil {
		return serviceError(formatter, err)
	}

	human := render.Table(tasks) + styles.Subtitle(render.SummaryLine(counts)) + "\n"
	return formatter.Success(tasks, human)
}

// printIDs writes one id per line, the quiet form of a listing
func printIDs(formatter *cli.OutputFormatter, tasks []*models.Task) {
	var b strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&b, "%d\n", task.ID)
	}
	fmt.Fprint(formatter.Out, b.String())
}
