package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tarefas/internal/app"
	"github.com/thenoetrevino/tarefas/internal/config"
	"github.com/thenoetrevino/tarefas/internal/database"
	"github.com/thenoetrevino/tarefas/internal/logging"
)

// Options are the global flag values shared by every command
type Options struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	closeLog func() error
	owned    bool // false when App was supplied by the caller
}

// LoadConfig reads the config file named by opts and applies flag overrides
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, nil
}

// NewCLI loads configuration, starts logging and opens the database
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	closeLog, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Logger.Debug("cli started", "db", cfg.Database.Path)

	return &CLI{
		App:      app.New(db, app.WithLogger(logging.Logger)),
		Config:   cfg,
		closeLog: closeLog,
		owned:    true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	var errs []error
	if err := c.App.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.closeLog != nil {
		if err := c.closeLog(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
