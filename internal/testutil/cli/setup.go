package cli

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/app"
	"github.com/thenoetrevino/tarefas/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sqlx.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sqlx.DB, seed testutil.TaskSeed) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, seed)
}
