package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorAccent  = "#FF6B00" // safety orange
	colorOK      = "#3DDC84"
	colorFail    = "#E63946"
	colorMuted   = "#8A8A8A"
	colorInverse = "#101010"
	colorFrame   = "#FFB347"
	colorLink    = "#4EA8DE"
)

// Styles for the control panel
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			MarginTop(1).
			MarginBottom(1)

	PostTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorOK))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFail))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorLink)).
			Underline(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(colorFrame)).
			Padding(0, 2).
			Width(96)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorInverse)).
			Background(lipgloss.Color(colorAccent)).
			Padding(0, 1)
)
