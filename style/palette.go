package style

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status output.
var (
	SuccessColor = lipgloss.Color("#a6e3a1")
	InfoColor    = lipgloss.Color("#89b4fa")
	WarningColor = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	FaintColor   = lipgloss.Color("#6c7086")
)
