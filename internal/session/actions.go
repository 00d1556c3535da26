package session

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tarefas/internal/cli/styles"
	"github.com/thenoetrevino/tarefas/internal/models"
	"github.com/thenoetrevino/tarefas/internal/render"
	taskservice "github.com/thenoetrevino/tarefas/internal/services/task"
)

const (
	msgNotFound  = "Not found."
	msgCancelled = "Cancelled."
)

func (s *Session) create(ctx context.Context) error {
	title, err := s.readLine(styles.Label("Title: "))
	if err != nil {
		return err
	}
	if title == "" {
		s.warn("Title is required. Operation cancelled.")
		return nil
	}

	description, err := s.readLine(styles.Label("Description (optional): "))
	if err != nil {
		return err
	}

	dueDate, err := s.ask(styles.Label("Due date YYYY-MM-DD (optional): "),
		"Invalid date, use YYYY-MM-DD.", optionalDueDate)
	if err != nil {
		return err
	}

	priorityAnswer, err := s.ask(styles.Label("Priority 1=high 2=medium 3=low [2]: "),
		"Invalid priority, choose 1, 2 or 3.", optionalPriority)
	if err != nil {
		return err
	}
	priority, _ := models.ParsePriority(priorityAnswer)

	tags, err := s.readLine(styles.Label("Tags, comma separated (optional): "))
	if err != nil {
		return err
	}

	id, err := s.svc.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Tags:        tags,
	})
	if err != nil {
		return err
	}

	s.ok(fmt.Sprintf("Task created with id %d.", id))
	return nil
}

// list applies the optional filters. Unrecognised status or priority
// answers are treated as "no filter".
func (s *Session) list(ctx context.Context) error {
	var filter models.TaskFilter

	statusAnswer, err := s.readLine(styles.Label("Filter by status todo/doing/done (enter = all): "))
	if err != nil {
		return err
	}
	if status, ok := models.ParseStatus(statusAnswer); ok {
		filter.Status = &status
	}

	priorityAnswer, err := s.readLine(styles.Label("Filter by priority 1/2/3 (enter = all): "))
	if err != nil {
		return err
	}
	if priority, ok := models.ParsePriority(priorityAnswer); ok {
		filter.Priority = &priority
	}

	filter.Tag, err = s.readLine(styles.Label("Filter by tag (enter = all): "))
	if err != nil {
		return err
	}

	tasks, err := s.svc.ListTasks(ctx, filter)
	if err != nil {
		return err
	}
	counts, err := s.svc.CountByStatus(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, render.Table(tasks))
	s.say(styles.Subtitle(render.SummaryLine(counts)))
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	id, err := s.askID()
	if err != nil {
		return err
	}

	task, found, err := s.svc.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}

	s.say(styles.Subtitle(fmt.Sprintf("Editing #%d. Press enter to keep a value, %q to clear it.", task.ID, clearValue)))

	var req taskservice.UpdateTaskRequest

	title, err := s.readLine(styles.Label(fmt.Sprintf("Title [%s]: ", task.Title)))
	if err != nil {
		return err
	}
	if title != "" {
		req.Title = &title
	}

	description, err := s.readLine(styles.Label(fmt.Sprintf("Description [%s]: ", models.StringValue(task.Description))))
	if err != nil {
		return err
	}
	req.Description = editedText(description)

	dueDate, err := s.ask(styles.Label(fmt.Sprintf("Due date [%s]: ", models.StringValue(task.DueDate))),
		"Invalid date, use YYYY-MM-DD.", func(v string) bool { return v == clearValue || optionalDueDate(v) })
	if err != nil {
		return err
	}
	req.DueDate = editedText(dueDate)

	priorityAnswer, err := s.ask(styles.Label(fmt.Sprintf("Priority [%d]: ", int(task.Priority))),
		"Invalid priority, choose 1, 2 or 3.", optionalPriority)
	if err != nil {
		return err
	}
	if priority, ok := models.ParsePriority(priorityAnswer); ok {
		req.Priority = &priority
	}

	statusAnswer, err := s.ask(styles.Label(fmt.Sprintf("Status [%s]: ", task.Status)),
		"Invalid status, choose todo, doing or done.", optionalStatus)
	if err != nil {
		return err
	}
	if status, ok := models.ParseStatus(statusAnswer); ok {
		req.Status = &status
	}

	tags, err := s.readLine(styles.Label(fmt.Sprintf("Tags [%s]: ", models.StringValue(task.Tags))))
	if err != nil {
		return err
	}
	req.Tags = editedText(tags)

	if req.IsEmpty() {
		s.say("Nothing to update.")
		return nil
	}

	found, err = s.svc.UpdateTask(ctx, id, req)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}
	s.ok("Updated!")
	return nil
}

func (s *Session) complete(ctx context.Context) error {
	id, err := s.askID()
	if err != nil {
		return err
	}

	found, err := s.svc.MarkDone(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}
	s.ok("Completed!")
	return nil
}

// remove deletes a task only after the user types YES exactly
func (s *Session) remove(ctx context.Context) error {
	id, err := s.askID()
	if err != nil {
		return err
	}

	task, found, err := s.svc.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}

	confirm, err := s.readLine(styles.Label(fmt.Sprintf("Type YES to delete #%d '%s': ", task.ID, task.Title)))
	if err != nil {
		return err
	}
	if confirm != "YES" {
		s.say(msgCancelled)
		return nil
	}

	found, err = s.svc.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}
	s.ok("Removed!")
	return nil
}

func (s *Session) summary(ctx context.Context) error {
	counts, err := s.svc.CountByStatus(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.svc.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, render.Board(counts, tasks, styles.StatusHeading))
	return nil
}

func (s *Session) search(ctx context.Context) error {
	term, err := s.readLine(styles.Label("Search term: "))
	if err != nil {
		return err
	}

	tasks, err := s.svc.SearchTasks(ctx, term)
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, render.Table(tasks))
	return nil
}

func (s *Session) show(ctx context.Context) error {
	id, err := s.askID()
	if err != nil {
		return err
	}

	task, found, err := s.svc.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.warn(msgNotFound)
		return nil
	}

	out, err := render.Detail(task, s.markdownStyle, s.width)
	if err != nil {
		s.log.Warn("markdown rendering failed, showing raw text", "task_id", id, "error", err)
	}
	fmt.Fprint(s.out, out)
	return nil
}
