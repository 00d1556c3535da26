package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/tarefas/internal/cli"
	"github.com/thenoetrevino/tarefas/internal/models"
	"github.com/thenoetrevino/tarefas/internal/testutil"
	"github.com/thenoetrevino/tarefas/internal/testutil/cli"
)

func TestShowTask(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestTask(t, db, testutil.TaskSeed{
		Title:       "Buy milk",
		Description: "two litres",
		DueDate:     "2026-11-01",
		Tags:        "home",
	})

	t.Run("Rendered detail", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{itoa(id), "--style", "notty"})
		require.NoError(t, err)

		assert.Contains(t, output, "Buy milk")
		assert.Contains(t, output, "two litres")
		assert.Contains(t, output, "2026-11-01")
	})

	t.Run("JSON via --id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", itoa(id), "--json"})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, "Buy milk", data["title"])
		assert.Equal(t, "home", data["tags"])
	})

	t.Run("Not found", func(t *testing.T) {
		res := cli.Run(t, app, ShowCmd(), []string{"999"}, "")
		assert.Equal(t, clipkg.ExitNotFound, res.ExitCode())
		assert.Contains(t, res.Stderr, "task 999 not found")
	})

	t.Run("Unknown style", func(t *testing.T) {
		res := cli.Run(t, app, ShowCmd(), []string{itoa(id), "--style", "neon"}, "")
		assert.Equal(t, clipkg.ExitUsage, res.ExitCode())
		assert.Contains(t, res.Stderr, "unknown markdown style")
		assert.Contains(t, res.Stderr, "Valid styles are: auto, dark, light, notty, ascii")
	})

	t.Run("Bad id", func(t *testing.T) {
		res := cli.Run(t, app, ShowCmd(), []string{"abc"}, "")
		assert.Equal(t, clipkg.ExitUsage, res.ExitCode())

		res = cli.Run(t, app, ShowCmd(), []string{}, "")
		assert.Equal(t, clipkg.ExitUsage, res.ExitCode())
	})
}

func TestEditTask(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestTask(t, db, testutil.TaskSeed{
		Title:       "Write report",
		Description: "draft",
		DueDate:     "2026-12-01",
		Tags:        "work",
	})

	get := func(t *testing.T) *models.Task {
		t.Helper()
		task, found, err := app.TaskService.GetTask(t.Context(), id)
		require.NoError(t, err)
		require.True(t, found)
		return task
	}

	t.Run("Omitted flags keep their values", func(t *testing.T) {
		before := get(t)

		output, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(id), "--priority", "high"})
		require.NoError(t, err)
		assert.Contains(t, output, "✓ Task 1 updated")

		after := get(t)
		before.Priority = models.PriorityHigh
		assert.Equal(t, before, after)
	})

	t.Run("Empty flags clear optional fields", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(id), "--tags=", "--due="})
		require.NoError(t, err)

		task := get(t)
		assert.Nil(t, task.Tags)
		assert.Nil(t, task.DueDate)
		assert.Equal(t, "draft", models.StringValue(task.Description))
	})

	t.Run("Status change", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{"--id", itoa(id), "--status", "doing"})
		require.NoError(t, err)
		assert.Equal(t, models.StatusDoing, get(t).Status)
	})

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"nothing to update", []string{itoa(id)}, clipkg.ExitValidation},
		{"empty title", []string{itoa(id), "--title", ""}, clipkg.ExitValidation},
		{"bad status", []string{itoa(id), "--status", "blocked"}, clipkg.ExitValidation},
		{"bad date", []string{itoa(id), "--due", "01/02/2026"}, clipkg.ExitValidation},
		{"missing task", []string{"999", "--title", "x"}, clipkg.ExitNotFound},
		{"missing id", []string{"--title", "x"}, clipkg.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := get(t)
			res := cli.Run(t, app, EditCmd(), tt.args, "")

			require.Error(t, res.Err)
			assert.Equal(t, tt.exitCode, res.ExitCode())
			assert.Equal(t, before, get(t))
		})
	}
}

func TestDoneTask(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Water plants"})

	output, err := cli.ExecuteCLICommand(t, app, DoneCmd(), []string{itoa(id)})
	require.NoError(t, err)
	assert.Contains(t, output, "✓ Task 1 marked as done")

	task, _, err := app.TaskService.GetTask(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, task.Status)

	output, err = cli.ExecuteCLICommand(t, app, DoneCmd(), []string{itoa(id), "--json"})
	require.NoError(t, err)
	data := cli.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, float64(id), data["task_id"])

	res := cli.Run(t, app, DoneCmd(), []string{"42"}, "")
	assert.Equal(t, clipkg.ExitNotFound, res.ExitCode())
}

func TestDeleteTask(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("Declined confirmation keeps the task", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Keep me"})

		res := cli.Run(t, app, DeleteCmd(), []string{itoa(id)}, "n\n")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Delete task #"+itoa(id)+" 'Keep me'? (y/N): ")
		assert.Contains(t, res.Stdout, "Cancelled")

		_, found, err := app.TaskService.GetTask(t.Context(), id)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Confirmed delete", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Remove me"})

		res := cli.Run(t, app, DeleteCmd(), []string{itoa(id)}, "yes\n")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "✓ Task "+itoa(id)+" deleted")

		_, found, err := app.TaskService.GetTask(t.Context(), id)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("JSON output still asks for confirmation", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Keep me too"})

		res := cli.Run(t, app, DeleteCmd(), []string{itoa(id), "--json"}, "n\n")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stderr, "Delete task #"+itoa(id)+" 'Keep me too'? (y/N): ")
		assert.Contains(t, res.Stderr, "Cancelled")
		assert.Empty(t, res.Stdout)

		_, found, err := app.TaskService.GetTask(t.Context(), id)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("JSON output after confirming", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Confirmed JSON"})

		res := cli.Run(t, app, DeleteCmd(), []string{itoa(id), "--json"}, "y\n")
		require.NoError(t, res.Err)

		data := cli.ParseJSON(t, res.Stdout)["data"].(map[string]interface{})
		assert.Equal(t, float64(id), data["task_id"])
	})

	t.Run("Force skips the prompt", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Forced"})

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", itoa(id), "--force"})
		require.NoError(t, err)
		assert.NotContains(t, output, "(y/N)")
		assert.Contains(t, output, "deleted")
	})

	t.Run("Quiet prints nothing", func(t *testing.T) {
		id := cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Silent"})

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{itoa(id), "--quiet"})
		require.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("Not found", func(t *testing.T) {
		res := cli.Run(t, app, DeleteCmd(), []string{"999", "--force"}, "")
		assert.Equal(t, clipkg.ExitNotFound, res.ExitCode())
	})

	assert.Equal(t, 2, testutil.CountTasks(t, db))
}

func TestSummary(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "One", DueDate: "2026-10-20", Priority: models.PriorityHigh})
	cli.CreateTestTask(t, db, testutil.TaskSeed{Title: "Two", Status: models.StatusDone})

	t.Run("Board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SummaryCmd(), nil)
		require.NoError(t, err)

		assert.Contains(t, output, "Summary: total=2 | todo=1 | doing=0 | done=1")
		assert.Contains(t, output, "TODO (1)")
		assert.Contains(t, output, "  #1 One (due: 2026-10-20) [p1]")
		assert.Contains(t, output, "DOING (0)\n  — empty —")
	})

	t.Run("JSON counts", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, SummaryCmd(), []string{"--json"})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["total"])
		counts := data["counts"].(map[string]interface{})
		assert.Equal(t, float64(1), counts["todo"])
		assert.Equal(t, float64(0), counts["doing"])
		assert.Equal(t, float64(1), counts["done"])
	})
}
