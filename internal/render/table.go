package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// EmptyList is printed instead of a table when there is nothing to show
const EmptyList = "No tasks found."

const (
	separator = " | "
	ellipsis  = "…"
)

type column struct {
	name  string
	width int
	value func(*models.Task) string
}

var columns = []column{
	{"id", 4, func(t *models.Task) string { return strconv.Itoa(t.ID) }},
	{"title", 24, func(t *models.Task) string { return t.Title }},
	{"description", 28, func(t *models.Task) string { return models.StringValue(t.Description) }},
	{"due_date", 12, func(t *models.Task) string { return models.StringValue(t.DueDate) }},
	{"priority", 10, func(t *models.Task) string { return PriorityLabel(t.Priority) }},
	{"status", 10, func(t *models.Task) string { return t.Status.String() }},
	{"tags", 18, func(t *models.Task) string { return models.StringValue(t.Tags) }},
}

// Table renders tasks as fixed-width rows under a header and a dash rule.
// Cells wider than their column are cut to fit and end with an ellipsis.
func Table(tasks []*models.Task) string {
	if len(tasks) == 0 {
		return EmptyList + "\n"
	}

	var b strings.Builder

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.name
	}
	writeRow(&b, header)
	b.WriteString(strings.Repeat("-", ruleWidth()))
	b.WriteByte('\n')

	cells := make([]string, len(columns))
	for _, task := range tasks {
		for i, col := range columns {
			cells[i] = col.value(task)
		}
		writeRow(&b, cells)
	}

	return b.String()
}

// PriorityLabel shows the rank together with its name, e.g. "1 (high)"
func PriorityLabel(p models.Priority) string {
	return fmt.Sprintf("%d (%s)", int(p), p.Description())
}

// Fit truncates s to width display cells and pads it on the right
func Fit(s string, width int) string {
	s = flatten(s)
	return runewidth.FillRight(runewidth.Truncate(s, width, ellipsis), width)
}

func writeRow(b *strings.Builder, cells []string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = Fit(cell, columns[i].width)
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, separator), " "))
	b.WriteByte('\n')
}

func ruleWidth() int {
	total := 0
	for _, col := range columns {
		total += col.width
	}
	return total + len(separator)*(len(columns)-1)
}

// flatten keeps multi-line descriptions on a single table row
func flatten(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
