package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#9CA3AF")).
				Background(lipgloss.Color("#374151"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2)

	focusedCardStyle = cardStyle.BorderForeground(lipgloss.Color("#F472B6"))

	faceLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)
