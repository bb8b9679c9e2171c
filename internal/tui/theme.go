package tui

import "charm.land/lipgloss/v2"

// Color palette, muted and readable on dark terminals.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorEthical = lipgloss.Color("#22C55E") // Green
	colorUneth   = lipgloss.Color("#F43F5E") // Rose
	colorAmbig   = lipgloss.Color("#F97316") // Orange
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Dark slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	verdictStyles = map[string]lipgloss.Style{
		"ethical":   lipgloss.NewStyle().Foreground(colorEthical).Bold(true),
		"unethical": lipgloss.NewStyle().Foreground(colorUneth).Bold(true),
		"ambiguous": lipgloss.NewStyle().Foreground(colorAmbig).Bold(true),
	}
)
