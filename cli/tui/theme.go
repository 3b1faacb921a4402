package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	TitleStyle     lipgloss.Style
	LineStyle      lipgloss.Style
	OutputStyle    lipgloss.Style
	SuccessStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	StatusBarStyle lipgloss.Style
	BorderStyle    lipgloss.Style
	ListStyle      lipgloss.Style
	CommandStyle   lipgloss.Style
	HelpStyle      lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		LineStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		OutputStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		SuccessStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		ErrorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		ListStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CommandStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")),
		HelpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
