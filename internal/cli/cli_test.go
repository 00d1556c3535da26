package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarefas/internal/app"
	"github.com/thenoetrevino/tarefas/internal/database"
	"github.com/thenoetrevino/tarefas/internal/models"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	validation := &taskservice.ValidationError{Field: "title", Err: taskservice.ErrEmptyTitle}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitError},
		{"validation", validation, ExitValidation},
		{"wrapped validation", fmt.Errorf("create: %w", validation), ExitValidation},
		{"explicit code", WithCode(ExitNotFound, errors.New("task 4 not found")), ExitNotFound},
		{"explicit code wins over validation", WithCode(ExitUsage, validation), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWithCode_Nil(t *testing.T) {
	assert.NoError(t, WithCode(ExitError, nil))
}

// ============================================================================
// Output Formatter Tests
// ============================================================================

type taskRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (r taskRef) GetID() int { return r.ID }

func TestOutputFormatter_Success(t *testing.T) {
	data := taskRef{ID: 12, Title: "Buy milk"}

	t.Run("human", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{Out: &out}
		require.NoError(t, f.Success(data, "✓ Task 12 created\n"))
		assert.Equal(t, "✓ Task 12 created\n", out.String())
	})

	t.Run("quiet prints the id", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{Quiet: true, Out: &out}
		require.NoError(t, f.Success(data, "ignored"))
		assert.Equal(t, "12\n", out.String())
	})

	t.Run("quiet without id prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{Quiet: true, Out: &out}
		require.NoError(t, f.Success([]int{1, 2}, "ignored"))
		assert.Empty(t, out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}
		require.NoError(t, f.Success(data, "ignored"))
		assert.JSONEq(t, `{"success":true,"data":{"id":12,"title":"Buy milk"}}`, out.String())
	})
}

func TestOutputFormatter_Fail(t *testing.T) {
	t.Run("human goes to stderr", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := &OutputFormatter{Out: &out, Err: &errOut}

		err := f.Fail(ExitNotFound, "TASK_NOT_FOUND", errors.New("task 9 not found"), "Use 'tarefas task list'")

		assert.Equal(t, ExitNotFound, ExitCode(err))
		assert.True(t, IsReported(err))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "❌ Error: task 9 not found")
		assert.Contains(t, errOut.String(), "💡 Suggestion: Use 'tarefas task list'")
	})

	t.Run("json goes to stdout", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}

		err := f.Fail(ExitValidation, "VALIDATION_ERROR", errors.New("title is required"), "")

		assert.Equal(t, ExitValidation, ExitCode(err))
		assert.JSONEq(t, `{"success":false,"error":{"code":"VALIDATION_ERROR","message":"title is required"}}`, out.String())
	})
}

func TestIsReported_PlainError(t *testing.T) {
	assert.False(t, IsReported(errors.New("x")))
	assert.False(t, IsReported(WithCode(ExitUsage, errors.New("x"))))
}

// ============================================================================
// Helper Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("High")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, p)

	p, err = ParsePriority("3")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, taskservice.ErrInvalidPriority)
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("DOING")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDoing, s)

	_, err = ParseStatus("blocked")
	assert.ErrorIs(t, err, taskservice.ErrInvalidStatus)
}

func TestRequireFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Int("id", 0, "")
	cmd.Flags().String("title", "", "")

	err := RequireFlags(cmd, "id", "title")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, err.Error(), "--id, --title")

	require.NoError(t, cmd.Flags().Set("id", "3"))
	require.NoError(t, cmd.Flags().Set("title", ""))
	assert.NoError(t, RequireFlags(cmd, "id", "title"))
}

func TestReadValue(t *testing.T) {
	v, err := ReadValue("inline", strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "inline", v)

	v, err = ReadValue("-", strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", v)
}

// ============================================================================
// Context Tests
// ============================================================================

func TestGetCLIFromContext_InjectedApp(t *testing.T) {
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	a := app.New(db)
	defer func() { _ = a.Close() }()

	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// Closing a borrowed app is a no-op
	require.NoError(t, c.Close())
	assert.NoError(t, db.Ping())
}

func TestNewCLI_UsesOptions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TAREFAS_LOG_PATH", filepath.Join(dir, "logs", "tarefas.log"))

	prev := slog.Default()
	defer func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	}()

	opts := Options{DBPath: filepath.Join(dir, "data", "tasks.db"), LogLevel: "debug"}
	c, err := GetCLIFromContext(WithOptions(context.Background(), opts))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, opts.DBPath, c.Config.Database.Path)
	assert.Equal(t, "debug", c.Config.Log.Level)
	assert.FileExists(t, opts.DBPath)
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAREFAS_DB_PATH", "/from/env.db")

	cfg, err := LoadConfig(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Database.Path)

	cfg, err = LoadConfig(Options{DBPath: "/from/flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.Database.Path)
}
