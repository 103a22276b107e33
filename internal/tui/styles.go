package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).PaddingLeft(1)
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).PaddingLeft(1)
	helpStyle        = lipgloss.NewStyle().PaddingLeft(1).MarginTop(1)
)
