package cli

import (
	"context"

	"github.com/thenoetrevino/tarefas/internal/app"
	"github.com/thenoetrevino/tarefas/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	appKey     contextKey = "app"
	optionsKey contextKey = "options"
)

// WithApp stores a ready App in ctx. Commands then use it instead of
// opening the configured database, which is how tests inject one.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithOptions stores the global flag values in ctx
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// OptionsFromContext returns the global flag values, or zero Options
func OptionsFromContext(ctx context.Context) Options {
	if ctx == nil {
		return Options{}
	}
	opts, _ := ctx.Value(optionsKey).(Options)
	return opts
}

// GetCLIFromContext returns a CLI for the running command.
// The caller must Close it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}

	return NewCLI(ctx, OptionsFromContext(ctx))
}
