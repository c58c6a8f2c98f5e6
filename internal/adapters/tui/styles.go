package tui

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	iris  = lipgloss.Color("#8B5CF6")
	slate = lipgloss.Color("#667085")
	white = lipgloss.Color("#FFFFFF")
	green = lipgloss.Color("#22A06B")
	red   = lipgloss.Color("#D93025")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(iris).
			Foreground(white)

	statusStyle = lipgloss.NewStyle().
			Foreground(slate)

	cursorStyle = lipgloss.NewStyle().
			Foreground(iris).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(slate).
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)

	paneStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
