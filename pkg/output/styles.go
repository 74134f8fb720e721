package output

import "github.com/charmbracelet/lipgloss"

// Semantic styles for terminal output. Adaptive colors adjust to light
// and dark terminal themes.
var (
	// StyleHeader styles the per-application section line
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1A56DB", Dark: "#76ADFF"})

	// StyleSuccess styles completion messages
	StyleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#057A55", Dark: "#31C48D"})

	// StyleError styles failure messages
	StyleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#C81E1E", Dark: "#F98080"})

	// StylePath styles filesystem paths embedded in messages
	StylePath = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5521B5", Dark: "#AC94FA"})
)
