package app

import (
	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/database"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sqlx.DB

	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sqlx.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db, cfg.logger)

	return &App{
		db:          db,
		repo:        repo,
		TaskService: taskservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database connection
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
