package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/config"
	"github.com/thenoetrevino/tarefas/internal/render"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display every field of a task, rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	addIDFlag(cmd)
	cmd.Flags().String("style", "", "Markdown style: auto, dark, light, notty, ascii (defaults to the config value)")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	id, err := taskID(cmd, args)
	if err != nil {
		return usageError(formatter, err, "Usage: tarefas task show <id> or tarefas task show --id=<id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	task, found, err := cliInstance.App.TaskService.GetTask(cmd.Context(), id)
	if err != nil {
		return serviceError(formatter, err)
	}
	if !found {
		return notFound(formatter, id)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task, "")
	}

	style, _ := cmd.Flags().GetString("style")
	if style != "" && !config.ValidMarkdownStyle(style) {
		return usageError(formatter, fmt.Errorf("unknown markdown style %q", style),
			"Valid styles are: "+strings.Join(config.MarkdownStyles, ", "))
	}
	if style == "" {
		style = cliInstance.Config.Session.MarkdownStyle
	}
	if !styles.ShouldStyle(formatter.Out) && style == "auto" {
		style = "notty"
	}

	out, err := render.Detail(task, style, styles.TerminalWidth(formatter.Out, render.DefaultWidth))
	if err != nil {
		slog.Warn("markdown rendering failed, showing raw text", "task_id", id, "error", err)
	}
	return formatter.Success(task, out)
}
