package params

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/articleparams/internal/pointer"
)

// ToggleLabel describes the toggle for help output.
const ToggleLabel = "Open/close article parameters"

// ToggleControl is the arrow button that opens and closes the panel. It
// keeps no open/closed state of its own: the view is a function of isOpen
// and activation is reported through onActivate.
type ToggleControl struct {
	onActivate func()
	binding    key.Binding
}

// NewToggleControl creates a toggle that calls onActivate once per
// activation.
func NewToggleControl(onActivate func(), binding key.Binding) ToggleControl {
	return ToggleControl{onActivate: onActivate, binding: binding}
}

// View renders the closed or open variant.
func (t ToggleControl) View(isOpen bool) string {
	if isOpen {
		return toggleOpenStyle.Render("◀ Parameters")
	}
	return toggleStyle.Render("▶ Parameters")
}

// Bounds returns the screen rectangle of the toggle, anchored at the top
// left corner.
func (t ToggleControl) Bounds(isOpen bool) pointer.Rect {
	view := t.View(isOpen)
	return pointer.Rect{Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
}

// HandleKey activates the toggle when msg matches its binding.
func (t ToggleControl) HandleKey(msg tea.KeyMsg) bool {
	if !key.Matches(msg, t.binding) {
		return false
	}
	t.activate()
	return true
}

// HandleClick activates the toggle when ev lands on it.
func (t ToggleControl) HandleClick(ev pointer.Event, isOpen bool) bool {
	if !t.Bounds(isOpen).Contains(ev.X, ev.Y) {
		return false
	}
	t.activate()
	return true
}

func (t ToggleControl) activate() {
	if t.onActivate != nil {
		t.onActivate()
	}
}
