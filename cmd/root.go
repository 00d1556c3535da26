// Package cmd assembles the tarefas command tree
package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	configcmd "github.com/thenoetrevino/tarefas/internal/cli/config"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/cli/task"
	"github.com/thenoetrevino/tarefas/internal/render"
	"github.com/thenoetrevino/tarefas/internal/session"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "tarefas",
		Short: "Tarefas - a personal task tracker",
		Long: `Tarefas keeps your tasks in a local SQLite database.

Run it without a subcommand for the interactive menu, or use the
task subcommands from scripts.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(cli.WithOptions(cmd.Context(), opts))

			if styles.ShouldStyle(cmd.OutOrStdout()) {
				cfg, err := cli.LoadConfig(opts)
				if err != nil {
					return err
				}
				styles.Init(cfg.Theme)
			}
			return nil
		},
		RunE: runSession,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tarefas/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "Task database path (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	return rootCmd
}

// Execute runs the command tree against the process arguments
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// runSession starts the interactive menu on the command's streams
func runSession(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close cli", "error", err)
		}
	}()

	out := cmd.OutOrStdout()
	style := cliInstance.Config.Session.MarkdownStyle
	if !styles.ShouldStyle(out) && style == "auto" {
		style = "notty"
	}

	s := session.New(cliInstance.App.TaskService, cmd.InOrStdin(), out,
		session.WithMaxAttempts(cliInstance.Config.Session.MaxAttempts),
		session.WithMarkdownStyle(style),
		session.WithWidth(styles.TerminalWidth(out, render.DefaultWidth)),
		session.WithLogger(slog.Default()),
	)
	return s.Run(cmd.Context())
}
