package cmd

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primary   = lipgloss.Color("#7C3AED") // Purple
	secondary = lipgloss.Color("#10B981") // Green
	muted     = lipgloss.Color("#6B7280") // Gray
	warning   = lipgloss.Color("#F59E0B") // Amber
	failure   = lipgloss.Color("#EF4444") // Red

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	successStyle = lipgloss.NewStyle().
			Foreground(secondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(failure)

	// Entry styles
	directoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	noteStyle = lipgloss.NewStyle()

	// Change event styles, keyed by event type
	eventStyles = map[string]lipgloss.Style{
		"create": lipgloss.NewStyle().Foreground(secondary),
		"modify": lipgloss.NewStyle().Foreground(warning),
		"delete": lipgloss.NewStyle().Foreground(failure),
		"rename": lipgloss.NewStyle().Foreground(primary),
	}
)
