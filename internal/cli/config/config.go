package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	appconfig "github.com/thenoetrevino/tarefas/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration to --config, or to
$XDG_CONFIG_HOME/tarefas/config.yaml when no path is given.
An existing file is left alone unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := cli.OptionsFromContext(cmd.Context()).ConfigPath
	if path == "" {
		p, err := appconfig.Path()
		if err != nil {
			return fmt.Errorf("failed to locate config file: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.WithCode(cli.ExitUsage, fmt.Errorf("%s already exists (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	written, err := appconfig.Default().Save(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Success("✓ Config written to "+written))
	return nil
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the file, environment variables and
global flags have been applied.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().Bool("env", false, "Also list the environment variables that override the file")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cli.OptionsFromContext(cmd.Context()))
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))

	if showEnv, _ := cmd.Flags().GetBool("env"); showEnv {
		desc, err := appconfig.EnvDescription()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, desc)
	}
	return nil
}
