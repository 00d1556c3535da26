package database

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
// A nil logger falls back to slog.Default.
func NewRepository(db *sqlx.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		TaskRepo: &TaskRepo{db: db, log: logger},
	}
}

// Wrapper methods for TaskRepo to maintain the DataStore API
func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (int, error) {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) GetTask(ctx context.Context, id int) (*models.Task, bool, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filter)
}

func (r *Repository) SearchTasks(ctx context.Context, term string) ([]*models.Task, error) {
	return r.TaskRepo.Search(ctx, term)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, update models.TaskUpdate) (bool, error) {
	return r.TaskRepo.Update(ctx, id, update)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) (bool, error) {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) CountTasks(ctx context.Context) (int, error) {
	return r.TaskRepo.Count(ctx)
}

func (r *Repository) CountTasksByStatus(ctx context.Context) (models.StatusCounts, error) {
	return r.TaskRepo.CountByStatus(ctx)
}
