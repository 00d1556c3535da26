package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarefas/internal/models"
)

func TestInitDB_CreatesFileAndDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "tarefas.db")

	db, err := InitDB(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var name string
	err = db.GetContext(context.Background(), &name,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks'")
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)
}

func TestInitDB_IdempotentAndPersistent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tarefas.db")

	// First run creates the schema and a task
	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	repo := NewRepository(db, nil)
	id, err := repo.CreateTask(ctx, &models.Task{Title: "Survives restart", Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Second run must not touch existing data
	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo = NewRepository(db, nil)

	task, found, err := repo.GetTask(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Survives restart", task.Title)

	count, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var version int
	var dirty bool
	err = db.QueryRowContext(ctx, "SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.False(t, dirty)
}

func TestInitDB_IDsNeverReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t), nil)

	first := createTestTask(t, repo, "first", models.PriorityMedium, "")
	second := createTestTask(t, repo, "second", models.PriorityMedium, "")

	found, err := repo.DeleteTask(ctx, second)
	require.NoError(t, err)
	require.True(t, found)

	third := createTestTask(t, repo, "third", models.PriorityMedium, "")
	assert.Greater(t, third, second, "AUTOINCREMENT must not hand out a deleted id")
	assert.Greater(t, second, first)
}
