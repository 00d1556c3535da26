package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tarefas/internal/database"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, id int) (*models.Task, bool, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	SearchTasks(ctx context.Context, term string) ([]*models.Task, error)
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (models.StatusCounts, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (int, error)
	UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (bool, error)
	MarkDone(ctx context.Context, id int) (bool, error)
	DeleteTask(ctx context.Context, id int) (bool, error)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Empty optional strings are stored as absent.
type CreateTaskRequest struct {
	Title       string
	Description string
	DueDate     string          // Optional: YYYY-MM-DD
	Priority    models.Priority // Optional: 0 means use default
	Tags        string
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update,
// a pointer to "" clears description, due date or tags.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *models.Priority
	Status      *models.Status
	Tags        *string
}

// IsEmpty reports whether the request carries no field at all
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.toUpdate().IsEmpty()
}

func (r UpdateTaskRequest) toUpdate() models.TaskUpdate {
	return models.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Status:      r.Status,
		Tags:        r.Tags,
	}
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateTask validates the request and stores a new task with status todo
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (int, error) {
	task, err := s.validateCreateTask(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return id, nil
}

// GetTask retrieves a single task. Ids that cannot exist report not found.
func (s *service) GetTask(ctx context.Context, id int) (*models.Task, bool, error) {
	if id <= 0 {
		return nil, false, nil
	}

	task, found, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get task: %w", err)
	}
	return task, found, nil
}

// ListTasks returns tasks matching every constraint in filter,
// ordered by priority and then newest first
func (s *service) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, invalid("status", ErrInvalidStatus)
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, invalid("priority", ErrInvalidPriority)
	}

	tasks, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// SearchTasks returns tasks whose title, description or tags contain term
func (s *service) SearchTasks(ctx context.Context, term string) ([]*models.Task, error) {
	if term == "" {
		return nil, invalid("term", ErrEmptySearchTerm)
	}

	tasks, err := s.repo.SearchTasks(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the fields present in req.
// The boolean is false when the task does not exist.
func (s *service) UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (bool, error) {
	update, err := s.validateUpdateTask(req)
	if err != nil {
		return false, err
	}
	if id <= 0 {
		return false, nil
	}

	found, err := s.repo.UpdateTask(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("failed to update task: %w", err)
	}
	return found, nil
}

// MarkDone moves a task to done
func (s *service) MarkDone(ctx context.Context, id int) (bool, error) {
	done := models.StatusDone
	return s.UpdateTask(ctx, id, UpdateTaskRequest{Status: &done})
}

// DeleteTask removes a task permanently
func (s *service) DeleteTask(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	found, err := s.repo.DeleteTask(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return found, nil
}

// CountAll returns the total number of tasks
func (s *service) CountAll(ctx context.Context) (int, error) {
	n, err := s.repo.CountTasks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

// CountByStatus returns per-status counts with every status present
func (s *service) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	counts, err := s.repo.CountTasksByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}
	return counts, nil
}

// validateCreateTask validates a CreateTaskRequest and builds the task to store
func (s *service) validateCreateTask(req CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title", ErrEmptyTitle)
	}

	priority := req.Priority
	if priority == 0 {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return nil, invalid("priority", ErrInvalidPriority)
	}

	dueDate := strings.TrimSpace(req.DueDate)
	if err := validateDueDate(dueDate); err != nil {
		return nil, err
	}

	return &models.Task{
		Title:       title,
		Description: models.OptionalString(req.Description),
		DueDate:     models.OptionalString(dueDate),
		Priority:    priority,
		Status:      models.DefaultStatus,
		Tags:        models.OptionalString(req.Tags),
	}, nil
}

// validateUpdateTask validates an UpdateTaskRequest and normalises the fields it carries
func (s *service) validateUpdateTask(req UpdateTaskRequest) (models.TaskUpdate, error) {
	if req.IsEmpty() {
		return models.TaskUpdate{}, invalid("", ErrNothingToUpdate)
	}

	update := req.toUpdate()

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.TaskUpdate{}, invalid("title", ErrEmptyTitle)
		}
		update.Title = &title
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return models.TaskUpdate{}, invalid("priority", ErrInvalidPriority)
	}
	if req.Status != nil && !req.Status.Valid() {
		return models.TaskUpdate{}, invalid("status", ErrInvalidStatus)
	}
	if req.DueDate != nil {
		dueDate := strings.TrimSpace(*req.DueDate)
		if err := validateDueDate(dueDate); err != nil {
			return models.TaskUpdate{}, err
		}
		update.DueDate = &dueDate
	}

	return update, nil
}

// validateDueDate accepts an empty value or a real calendar date
func validateDueDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, value); err != nil {
		return invalid("due_date", ErrInvalidDueDate)
	}
	return nil
}
