package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/articleparams/internal/pointer"
)

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, waitForConfigCmd(m.reloads, m.reloadErrors)

	case ConfigErrorMsg:
		m.status = fmt.Sprintf("Configuration not reloaded: %v", msg.Err)
		m.statusErr = true
		return m, waitForConfigCmd(m.reloads, m.reloadErrors)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	// An expanded select takes plain keys as filter input.
	if !m.panel.Capturing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
	}
	if m.toggle.HandleKey(msg) {
		return nil
	}
	return m.panel.Update(msg)
}

// handleMouse routes a left press to the document listeners first, then to
// the toggle, then to the panel.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	ev := pointer.Event{X: msg.X, Y: msg.Y}
	m.doc.Dispatch(ev)
	if m.toggle.HandleClick(ev, m.state.IsOpen) {
		return
	}
	m.panel.Update(msg)
}
