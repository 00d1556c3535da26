package database

import (
	"context"

	"github.com/thenoetrevino/tarefas/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, bool, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	SearchTasks(ctx context.Context, term string) ([]*models.Task, error)
	CountTasks(ctx context.Context) (int, error)
	CountTasksByStatus(ctx context.Context) (models.StatusCounts, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) (int, error)
	UpdateTask(ctx context.Context, id int, update models.TaskUpdate) (bool, error)
	DeleteTask(ctx context.Context, id int) (bool, error)
}

// TaskRepository combines all task operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
