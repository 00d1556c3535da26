package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/models"
	"github.com/thenoetrevino/tarefas/internal/render"
)

// SummaryCmd returns the task summary subcommand
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"board", "kanban"},
		Short:   "Show task counts and a board grouped by status",
		RunE:    runSummary,
	}

	addOutputFlags(cmd)

	return cmd
}

// summaryResult is the JSON payload of the summary command
type summaryResult struct {
	Total  int                 `json:"total"`
	Counts models.StatusCounts `json:"counts"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	ctx := cmd.Context()
	counts, err := cliInstance.App.TaskService.CountByStatus(ctx)
	if err != nil {
		return serviceError(formatter, err)
	}

	result := summaryResult{Total: counts.Total(), Counts: counts}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(result, "")
	}

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return serviceError(formatter, err)
	}
	return formatter.Success(result, render.Board(counts, tasks, styles.StatusHeading))
}
