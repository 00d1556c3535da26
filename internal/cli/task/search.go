package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/render"
)

// SearchCmd returns the task search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search tasks by keyword",
		Long: `Find tasks whose title, description or tags contain the term.
Matching is case-sensitive.

Examples:
  tarefas task search milk
  tarefas task search --term="quarterly report" --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().String("term", "", "Text to look for (can also be provided as positional argument)")

	addOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	term, _ := cmd.Flags().GetString("term")
	if len(args) > 0 {
		term = args[0]
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	tasks, err := cliInstance.App.TaskService.SearchTasks(cmd.Context(), term)
	if err != nil {
		return serviceError(formatter, err)
	}

	if formatter.Quiet {
		printIDs(formatter, tasks)
		return nil
	}
	return formatter.Success(tasks, render.Table(tasks))
}
