package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tarefas/internal/models"
)

// EmptySection marks a board column without tasks
const EmptySection = "— empty —"

// Styler decorates a board heading for the given status.
// A nil Styler leaves headings unstyled.
type Styler func(status models.Status, text string) string

// SummaryLine renders the one-line status breakdown shown under listings
func SummaryLine(counts models.StatusCounts) string {
	return fmt.Sprintf("Summary: total=%d | todo=%d | doing=%d | done=%d",
		counts.Total(),
		counts[models.StatusTodo],
		counts[models.StatusDoing],
		counts[models.StatusDone],
	)
}

// Board renders the kanban view: a totals line followed by one section per
// status, each listing its tasks in the order given.
func Board(counts models.StatusCounts, tasks []*models.Task, heading Styler) string {
	byStatus := make(map[models.Status][]*models.Task, len(models.Statuses))
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	var b strings.Builder
	b.WriteString(SummaryLine(counts))
	b.WriteByte('\n')

	for _, status := range models.Statuses {
		title := fmt.Sprintf("%s (%d)", strings.ToUpper(status.String()), counts[status])
		if heading != nil {
			title = heading(status, title)
		}
		b.WriteByte('\n')
		b.WriteString(title)
		b.WriteByte('\n')

		section := byStatus[status]
		if len(section) == 0 {
			b.WriteString("  " + EmptySection + "\n")
			continue
		}
		for _, task := range section {
			b.WriteString("  " + CardLine(task) + "\n")
		}
	}

	return b.String()
}

// CardLine is the compact one-line form of a task: "#id title (due: D) [pN]"
func CardLine(task *models.Task) string {
	line := fmt.Sprintf("#%d %s", task.ID, flatten(task.Title))
	if task.DueDate != nil && *task.DueDate != "" {
		line += fmt.Sprintf(" (due: %s)", *task.DueDate)
	}
	return line + fmt.Sprintf(" [p%d]", int(task.Priority))
}
