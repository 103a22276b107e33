package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const minPageWidth = 24

// View renders the sidebar (toggle and panel), the article and the help
// line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sidebar := []string{m.toggle.View(m.state.IsOpen)}
	if m.state.IsOpen {
		sidebar = append(sidebar, m.panel.View())
	}
	left := lipgloss.JoinVertical(lipgloss.Left, sidebar...)

	pageWidth := 0
	if m.width > 0 {
		pageWidth = max(m.width-lipgloss.Width(left)-1, minPageWidth)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.page.Render(pageWidth))

	sections := []string{body}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
