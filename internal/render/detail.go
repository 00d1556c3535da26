package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tarefas/internal/models"
)

// DefaultWidth is the word-wrap width used when the terminal size is unknown
const DefaultWidth = 80

// Cache renderers by style and width, they are expensive to build
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

type rendererKey struct {
	style string
	width int
}

// DetailMarkdown builds the markdown document describing a single task
func DetailMarkdown(task *models.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# #%d %s\n\n", task.ID, task.Title)

	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Status | %s |\n", task.Status)
	fmt.Fprintf(&b, "| Priority | %s |\n", PriorityLabel(task.Priority))
	fmt.Fprintf(&b, "| Due date | %s |\n", orDash(models.StringValue(task.DueDate)))
	fmt.Fprintf(&b, "| Tags | %s |\n", tagList(models.StringValue(task.Tags)))

	b.WriteString("\n## Description\n\n")
	if desc := strings.TrimSpace(models.StringValue(task.Description)); desc != "" {
		b.WriteString(desc)
	} else {
		b.WriteString("_No description_")
	}
	b.WriteByte('\n')

	return b.String()
}

// Detail renders the task as styled terminal markdown.
// When rendering fails the raw markdown is returned along with the error.
func Detail(task *models.Task, style string, width int) (string, error) {
	doc := DetailMarkdown(task)

	renderer, err := getRenderer(style, width)
	if err != nil {
		return doc, err
	}

	out, err := renderer.Render(doc)
	if err != nil {
		return doc, fmt.Errorf("render task %d: %w", task.ID, err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if style == "" {
		style = "auto"
	}
	if width <= 0 {
		width = DefaultWidth
	}
	key := rendererKey{style: style, width: width}

	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown style %q: %w", style, err)
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

func tagList(tags string) string {
	var chips []string
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			chips = append(chips, "`"+tag+"`")
		}
	}
	if len(chips) == 0 {
		return "-"
	}
	return strings.Join(chips, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
