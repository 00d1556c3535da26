package styles

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarefas/internal/config"
	"github.com/thenoetrevino/tarefas/internal/models"
	"golang.org/x/term"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For prompts like "Title:", "Priority:"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	statusColors   map[models.Status]string
	priorityColors map[models.Priority]string

	// enabled is false until Init runs, so output stays plain by default
	enabled bool
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	statusColors = map[models.Status]string{
		models.StatusTodo:  colors.Todo,
		models.StatusDoing: colors.Doing,
		models.StatusDone:  colors.Done,
	}
	priorityColors = map[models.Priority]string{
		models.PriorityHigh:   colors.PriorityHigh,
		models.PriorityMedium: colors.PriorityMedium,
		models.PriorityLow:    colors.PriorityLow,
	}

	enabled = true
}

// Disable turns every helper back into a pass-through
func Disable() {
	enabled = false
}

// Enabled reports whether Init has been called and styles are applied
func Enabled() bool {
	return enabled
}

// ShouldStyle reports whether w is a terminal that accepts colour.
// NO_COLOR and TERM=dumb always win.
func ShouldStyle(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of w, or fallback when w is not a terminal
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

func render(style lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return style.Render(text)
}

func Title(text string) string    { return render(TitleStyle, text) }
func Subtitle(text string) string { return render(SubtitleStyle, text) }
func Label(text string) string    { return render(LabelStyle, text) }
func Success(text string) string  { return render(SuccessStyle, text) }
func Error(text string) string    { return render(ErrorStyle, text) }
func Warning(text string) string  { return render(WarningStyle, text) }

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if !enabled || hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	if !enabled || hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// StatusHeading renders a board heading in the colour of its status
func StatusHeading(status models.Status, text string) string {
	return BoldColoredText(text, statusColors[status])
}

// PriorityText renders text in the colour of the given priority
func PriorityText(p models.Priority, text string) string {
	return ColoredText(text, priorityColors[p])
}
