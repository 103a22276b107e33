package params

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	borderColor  = lipgloss.Color("240")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	toggleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	toggleOpenStyle = toggleStyle.
			BorderForeground(primaryColor).
			Foreground(accentColor).
			Bold(true)

	pickerTitleStyle        = lipgloss.NewStyle().Bold(true).Foreground(mutedColor)
	pickerTitleFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	optionStyle         = lipgloss.NewStyle()
	optionSelectedStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	optionCursorStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	filterStyle         = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	separatorStyle = lipgloss.NewStyle().Foreground(borderColor)

	buttonStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(mutedColor)
	buttonPrimaryStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(primaryColor).Bold(true)
	buttonFocusedStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true).Bold(true)
)

// panel content starts after the border and the left padding.
const (
	contentOffsetX = 2
	contentOffsetY = 1
)
