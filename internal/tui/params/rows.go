package params

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetHeader
	targetOption
	targetButton
)

// target identifies what a panel cell activates when clicked.
type target struct {
	kind   targetKind
	index  int // picker index, or button id for targetButton
	option int // option index for targetOption
}

// segment is a rendered piece of a row together with its click target.
type segment struct {
	text string
	hit  target
}

type row []segment

func (r row) render() string {
	var b strings.Builder
	for _, seg := range r {
		b.WriteString(seg.text)
	}
	return b.String()
}

// at returns the target under column x, measured from the row start.
func (r row) at(x int) target {
	if x < 0 {
		return target{}
	}
	col := 0
	for _, seg := range r {
		w := lipgloss.Width(seg.text)
		if x < col+w {
			return seg.hit
		}
		col += w
	}
	return target{}
}

// stamp assigns the picker index to every picker target of the row.
func (r row) stamp(index int) row {
	out := make(row, len(r))
	for i, seg := range r {
		if seg.hit.kind == targetHeader || seg.hit.kind == targetOption {
			seg.hit.index = index
		}
		out[i] = seg
	}
	return out
}

func plain(text string) segment {
	return segment{text: text}
}
