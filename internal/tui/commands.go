package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/articleparams/internal/config"
)

// waitForConfigCmd blocks until the watcher publishes a configuration or an
// error. A closed channel stops being watched while the other one is still
// read. It returns nil when there is nothing to wait on.
func waitForConfigCmd(changes <-chan *config.Config, errs <-chan error) tea.Cmd {
	if changes == nil && errs == nil {
		return nil
	}
	return func() tea.Msg {
		for changes != nil || errs != nil {
			select {
			case cfg, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				return ConfigReloadedMsg{Config: cfg}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				return ConfigErrorMsg{Err: err}
			}
		}
		return nil
	}
}
