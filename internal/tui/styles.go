// Package tui renders the interactive calculator and its styled output:
// the input form, the summary box, and the cash-flow chart.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
//
//nolint:gochecknoglobals // Shared lipgloss styles are idiomatic package globals.
var (
	ColorHeader  = lipgloss.Color("12")
	ColorBorder  = lipgloss.Color("8")
	ColorLabel   = lipgloss.Color("7")
	ColorValue   = lipgloss.Color("15")
	ColorOK      = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorMuted   = lipgloss.Color("8")
)

// Shared styles.
//
//nolint:gochecknoglobals // Shared lipgloss styles are idiomatic package globals.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	FocusedFieldStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
)
