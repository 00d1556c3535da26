package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// errNoFields guards against an UPDATE with an empty SET clause
var errNoFields = errors.New("no fields to update")

// ============================================================================
// Task Operations
// ============================================================================

const taskColumns = `id, title, description, due_date, priority, status, tags`

// listOrder puts the most urgent first and, within a priority, the newest first
const listOrder = ` ORDER BY priority ASC, id DESC`

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db  *sqlx.DB
	log *slog.Logger
}

// Create inserts a new task and returns its id.
// Status is forced to the default; the caller has already validated the fields.
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, due_date, priority, status, tags)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			task.Title,
			nullableText(task.Description),
			nullableText(task.DueDate),
			int(task.Priority),
			string(models.DefaultStatus),
			nullableText(task.Tags),
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read task id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Debug("task created", "id", id, "priority", int(task.Priority))
	return int(id), nil
}

// GetByID retrieves a single task. The boolean is false when no such id exists.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, bool, error) {
	task := &models.Task{}
	err := r.db.GetContext(ctx, task,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, true, nil
}

// List retrieves tasks matching every constraint set in filter
func (r *TaskRepo) List(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	where, args := filterClause(filter)
	return r.selectTasks(ctx, `SELECT `+taskColumns+` FROM tasks`+where+listOrder, args...)
}

// Search retrieves tasks whose title, description or tags contain term.
// Matching is case-sensitive.
func (r *TaskRepo) Search(ctx context.Context, term string) ([]*models.Task, error) {
	return r.selectTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE instr(title, ?) > 0
		    OR instr(COALESCE(description, ''), ?) > 0
		    OR instr(COALESCE(tags, ''), ?) > 0`+listOrder,
		term, term, term,
	)
}

// Update changes only the columns present in update.
// The boolean is false when no row has the given id.
func (r *TaskRepo) Update(ctx context.Context, id int, update models.TaskUpdate) (bool, error) {
	sets, args := setClause(update)
	if len(sets) == 0 {
		return false, errNoFields
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))

	var affected int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update task %d: %w", id, err)
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	r.log.Debug("task updated", "id", id, "fields", len(sets), "found", affected > 0)
	return affected > 0, nil
}

// Delete removes a task permanently.
// The boolean is false when no row has the given id.
func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	r.log.Debug("task deleted", "id", id, "found", affected > 0)
	return affected > 0, nil
}

// Count returns the exact number of tasks
func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of tasks per status.
// Every known status is present in the result, even when zero.
func (r *TaskRepo) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	var rows []struct {
		Status models.Status `db:"status"`
		Count  int           `db:"n"`
	}
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT status, COUNT(*) AS n FROM tasks GROUP BY status"); err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}

	counts := models.NewStatusCounts()
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *TaskRepo) selectTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	tasks := []*models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}

// filterClause builds the WHERE clause for a listing, joined with AND
func filterClause(filter models.TaskFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conds = append(conds, "priority = ?")
		args = append(args, int(*filter.Priority))
	}
	if filter.Tag != "" {
		conds = append(conds, "instr(COALESCE(tags, ''), ?) > 0")
		args = append(args, filter.Tag)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// setClause names only the supplied fields, in a fixed column order
func setClause(update models.TaskUpdate) ([]string, []any) {
	var sets []string
	var args []any

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullableText(update.Description))
	}
	if update.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableText(update.DueDate))
	}
	if update.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, int(*update.Priority))
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, nullableText(update.Tags))
	}

	return sets, args
}
