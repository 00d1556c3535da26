package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/database"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with every migration applied.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TaskSeed describes a row inserted directly by CreateTestTask
type TaskSeed struct {
	Title       string
	Description string
	DueDate     string
	Priority    models.Priority
	Status      models.Status
	Tags        string
}

// CreateTestTask inserts a task with raw SQL and returns its ID.
// Zero priority and status fall back to the column defaults.
func CreateTestTask(t *testing.T, db *sqlx.DB, seed TaskSeed) int {
	t.Helper()

	if seed.Priority == 0 {
		seed.Priority = models.DefaultPriority
	}
	if seed.Status == "" {
		seed.Status = models.DefaultStatus
	}

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (title, description, due_date, priority, status, tags)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		seed.Title,
		nullIfEmpty(seed.Description),
		nullIfEmpty(seed.DueDate),
		int(seed.Priority),
		string(seed.Status),
		nullIfEmpty(seed.Tags),
	)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test task id: %v", err)
	}
	return int(id)
}

// CountTasks returns the number of rows in the tasks table
func CountTasks(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	if err := db.GetContext(context.Background(), &n, "SELECT COUNT(*) FROM tasks"); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return n
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
