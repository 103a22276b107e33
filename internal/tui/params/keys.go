package params

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings used by the toggle, the panel and its host.
type KeyMap struct {
	Toggle  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Press   key.Binding
	Submit  key.Binding
	Reset   key.Binding
	Dismiss key.Binding
	Erase   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:  key.NewBinding(key.WithKeys("ctrl+o", "f2"), key.WithHelp("ctrl+o", "parameters")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Up:      key.NewBinding(key.WithKeys("up")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Submit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Erase:   key.NewBinding(key.WithKeys("backspace")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Right, k.Submit, k.Reset, k.Dismiss, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Dismiss, k.Quit},
		{k.Next, k.Prev, k.Left, k.Right, k.Press},
		{k.Submit, k.Reset},
	}
}
