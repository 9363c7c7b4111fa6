package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")
	border      = lipgloss.Color("#2a3850")
)

// Styles groups the lipgloss styles used by the form shell.
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	FocusLabel  lipgloss.Style
	Info        lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Form        lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Label:       lipgloss.NewStyle().Width(10),
		FocusLabel:  lipgloss.NewStyle().Width(10).Bold(true).Foreground(accent),
		Info:        lipgloss.NewStyle().Foreground(accent),
		Error:       lipgloss.NewStyle().Foreground(destructive),
		Help:        lipgloss.NewStyle().Foreground(muted),
		Form:        lipgloss.NewStyle().MarginBottom(1),
		Dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
	}
}
