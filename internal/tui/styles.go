package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#00ffff")
	colorSuccess = lipgloss.Color("#00ff00")
	colorError   = lipgloss.Color("#ff0000")
	colorMuted   = lipgloss.Color("#666666")
	colorBorder  = lipgloss.Color("#3d5a80")
)

type styles struct {
	Title    lipgloss.Style
	Password lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	On       lipgloss.Style
	Off      lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		Password: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Background(colorPrimary).
			Foreground(lipgloss.Color("#000000")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Width(20),
		On:      lipgloss.NewStyle().Foreground(colorSuccess),
		Off:     lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Panel: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
