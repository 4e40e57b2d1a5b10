package console

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	headerStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// ErrorStyle is used by the entry point to render fatal errors.
var ErrorStyle = errorStyle
