package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestDB creates an in-memory database with all migrations applied
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestTask inserts a task through the repository and returns its ID
func createTestTask(t *testing.T, repo *Repository, title string, priority models.Priority, tags string) int {
	t.Helper()
	id, err := repo.CreateTask(context.Background(), &models.Task{
		Title:    title,
		Priority: priority,
		Tags:     models.OptionalString(tags),
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return id
}

func taskIDs(tasks []*models.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func ptr[T any](v T) *T {
	return &v
}
