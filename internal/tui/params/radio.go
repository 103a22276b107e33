package params

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

const radioGap = 2

// RadioGroup shows the options side by side, wrapping onto further lines
// when they do not fit, and selects with left/right.
type RadioGroup struct {
	title    string
	fld      article.Field
	options  article.OptionList
	current  article.OptionValue
	keys     KeyMap
	onChange func(article.OptionValue)
}

// NewRadioGroup creates a radio group for field.
func NewRadioGroup(field article.Field, options article.OptionList, selected article.OptionValue, keys KeyMap, onChange func(article.OptionValue)) *RadioGroup {
	return &RadioGroup{
		title:    field.Title(),
		fld:      field,
		options:  options,
		current:  selected,
		keys:     keys,
		onChange: onChange,
	}
}

func (r *RadioGroup) field() article.Field               { return r.fld }
func (r *RadioGroup) selected() article.OptionValue      { return r.current }
func (r *RadioGroup) setSelected(v article.OptionValue)  { r.current = v }
func (r *RadioGroup) setOptions(opts article.OptionList) { r.options = opts }
func (r *RadioGroup) capturing() bool                    { return false }
func (r *RadioGroup) collapse()                          {}

func (r *RadioGroup) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, r.keys.Left):
		if next, ok := step(r.options, r.current, -1); ok {
			r.choose(next)
		}
		return true
	case key.Matches(msg, r.keys.Right):
		if next, ok := step(r.options, r.current, 1); ok {
			r.choose(next)
		}
		return true
	}
	return false
}

func (r *RadioGroup) activate(t target) {
	if t.kind != targetOption || t.option < 0 || t.option >= len(r.options) {
		return
	}
	r.choose(r.options[t.option])
}

func (r *RadioGroup) choose(v article.OptionValue) {
	r.current = v
	if r.onChange != nil {
		r.onChange(v)
	}
}

// rows lays the options out left to right and starts a new line when the
// next option would not fit in width.
func (r *RadioGroup) rows(focused bool, width int) []row {
	out := []row{titleRow(r.title, focused, width)}
	line := row{}
	used := 0
	for i, opt := range r.options {
		mark := "( )"
		style := optionStyle
		if opt.Equal(r.current) {
			mark = "(•)"
			style = optionSelectedStyle
		}
		text := style.Render(mark + " " + truncate(opt.String(), width-4))
		w := lipgloss.Width(text)
		if len(line) > 0 && used+radioGap+w > width {
			out = append(out, line)
			line, used = row{}, 0
		}
		if len(line) > 0 {
			line = append(line, plain(strings.Repeat(" ", radioGap)))
			used += radioGap
		}
		line = append(line, segment{text: text, hit: target{kind: targetOption, option: i}})
		used += w
	}
	if len(line) > 0 {
		out = append(out, line)
	}
	return out
}
