package params

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

const selectVisibleRows = 5

// Select is a single-select dropdown. Collapsed it shows the selection;
// expanded it lists the options, filtered by whatever the user types.
type Select struct {
	title    string
	fld      article.Field
	options  article.OptionList
	current  article.OptionValue
	keys     KeyMap
	onChange func(article.OptionValue)

	expanded bool
	filter   string
	cursor   int // index into matches()
	offset   int
}

// NewSelect creates a dropdown for field.
func NewSelect(field article.Field, options article.OptionList, selected article.OptionValue, keys KeyMap, onChange func(article.OptionValue)) *Select {
	return &Select{
		title:    field.Title(),
		fld:      field,
		options:  options,
		current:  selected,
		keys:     keys,
		onChange: onChange,
	}
}

func (s *Select) field() article.Field          { return s.fld }
func (s *Select) selected() article.OptionValue { return s.current }
func (s *Select) capturing() bool               { return s.expanded }

// Expanded reports whether the option list is shown.
func (s *Select) Expanded() bool { return s.expanded }

// Filter returns the current filter text.
func (s *Select) Filter() string { return s.filter }

func (s *Select) setSelected(v article.OptionValue) { s.current = v }

func (s *Select) setOptions(opts article.OptionList) {
	s.options = opts
	s.collapse()
}

func (s *Select) expand() {
	s.expanded = true
	s.filter = ""
	s.cursor = max(s.options.Index(s.current), 0)
	s.offset = 0
	s.scroll()
}

func (s *Select) collapse() {
	s.expanded = false
	s.filter = ""
	s.cursor = 0
	s.offset = 0
}

// matches returns option indices that pass the filter, best match first.
func (s *Select) matches() []int {
	if s.filter == "" {
		all := make([]int, len(s.options))
		for i := range s.options {
			all[i] = i
		}
		return all
	}
	found := fuzzy.Find(s.filter, s.options.Titles())
	out := make([]int, len(found))
	for i, m := range found {
		out[i] = m.Index
	}
	return out
}

func (s *Select) scroll() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+selectVisibleRows {
		s.offset = s.cursor - selectVisibleRows + 1
	}
}

func (s *Select) handleKey(msg tea.KeyMsg) bool {
	if !s.expanded {
		switch {
		case key.Matches(msg, s.keys.Press):
			s.expand()
			return true
		case key.Matches(msg, s.keys.Left):
			if next, ok := step(s.options, s.current, -1); ok {
				s.choose(next)
			}
			return true
		case key.Matches(msg, s.keys.Right):
			if next, ok := step(s.options, s.current, 1); ok {
				s.choose(next)
			}
			return true
		}
		return false
	}

	matches := s.matches()
	switch {
	case key.Matches(msg, s.keys.Dismiss):
		s.collapse()
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
			s.scroll()
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(matches)-1 {
			s.cursor++
			s.scroll()
		}
	case msg.Type == tea.KeyEnter:
		if s.cursor < len(matches) {
			s.choose(s.options[matches[s.cursor]])
		}
		s.collapse()
	case key.Matches(msg, s.keys.Erase):
		if s.filter != "" {
			runes := []rune(s.filter)
			s.filter = string(runes[:len(runes)-1])
			s.cursor, s.offset = 0, 0
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if len(msg.Runes) == 0 {
			s.filter += " "
		} else {
			s.filter += string(msg.Runes)
		}
		s.cursor, s.offset = 0, 0
	default:
		return false
	}
	return true
}

func (s *Select) activate(t target) {
	switch t.kind {
	case targetHeader:
		if s.expanded {
			s.collapse()
		} else {
			s.expand()
		}
	case targetOption:
		if t.option >= 0 && t.option < len(s.options) {
			s.choose(s.options[t.option])
		}
		s.collapse()
	}
}

func (s *Select) choose(v article.OptionValue) {
	s.current = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

func (s *Select) rows(focused bool, width int) []row {
	arrow := "▾"
	if s.expanded {
		arrow = "▴"
	}
	label := truncate(s.current.String(), width-4)
	pad := width - 4 - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	headerStyle := optionStyle
	if focused {
		headerStyle = optionCursorStyle
	}
	header := row{{
		text: headerStyle.Render("▸ " + label + strings.Repeat(" ", pad) + " " + arrow),
		hit:  target{kind: targetHeader},
	}}

	out := []row{titleRow(s.title, focused, width), header}
	if !s.expanded {
		return out
	}

	out = append(out, row{plain(filterStyle.Render("  / " + truncate(s.filter+"_", width-4)))})
	matches := s.matches()
	if len(matches) == 0 {
		return append(out, row{plain(filterStyle.Render("    no matches"))})
	}
	end := min(s.offset+selectVisibleRows, len(matches))
	for i := s.offset; i < end; i++ {
		opt := s.options[matches[i]]
		prefix := "    "
		style := optionStyle
		switch {
		case i == s.cursor:
			prefix = "  › "
			style = optionCursorStyle
		case opt.Equal(s.current):
			style = optionSelectedStyle
		}
		out = append(out, row{{
			text: style.Render(prefix + truncate(opt.String(), width-4)),
			hit:  target{kind: targetOption, option: matches[i]},
		}})
	}
	return out
}
