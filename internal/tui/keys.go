package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/articleparams/internal/tui/params"
)

// keyMap extends the panel bindings with the host's own.
type keyMap struct {
	params.KeyMap
	Help key.Binding
}

func newKeyMap(base params.KeyMap) keyMap {
	return keyMap{
		KeyMap: base,
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Help})
}
