package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Board
		Todo:  "#5F87D7",
		Doing: "#FFD700",
		Done:  "#5FD75F",

		// Priorities
		PriorityHigh:   "#F97316",
		PriorityMedium: "#EAB308",
		PriorityLow:    "#22C55E",

		// Messages
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
