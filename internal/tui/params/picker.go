package params

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

// picker is a form control bound to one article field. Pickers report user
// choices through their onChange callback; the panel pushes selections back
// with setSelected.
type picker interface {
	field() article.Field
	selected() article.OptionValue
	setSelected(article.OptionValue)
	setOptions(article.OptionList)
	handleKey(msg tea.KeyMsg) bool
	activate(t target)
	rows(focused bool, width int) []row
	capturing() bool
	collapse()
}

func titleRow(title string, focused bool, width int) row {
	style := pickerTitleStyle
	if focused {
		style = pickerTitleFocusedStyle
	}
	return row{{text: style.Render(truncate(title, width)), hit: target{kind: targetHeader}}}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// step returns the option next to current in direction delta, clamped to
// the list bounds.
func step(options article.OptionList, current article.OptionValue, delta int) (article.OptionValue, bool) {
	if len(options) == 0 {
		return article.OptionValue{}, false
	}
	idx := options.Index(current)
	next := idx + delta
	if idx < 0 {
		next = 0
	}
	if next < 0 || next >= len(options) || next == idx {
		return article.OptionValue{}, false
	}
	return options[next], true
}
