package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/meetingbank/internal/table"
)

// Colors used throughout the terminal output.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)

// TableStyles colours printed report tables.
func TableStyles() table.Styles {
	return table.Styles{
		Title:   TitleStyle,
		Header:  HeaderStyle,
		Divider: DividerStyle,
		Empty:   DimStyle,
	}
}
