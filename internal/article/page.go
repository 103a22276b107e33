package article

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultPxPerColumn converts CSS content widths into terminal columns.
	DefaultPxPerColumn = 16

	minPageColumns = 24
)

// DefaultTitle and DefaultBody make up the article shown when the
// configuration does not supply one.
const (
	DefaultTitle = "A Portrait of Western Switzerland"
	DefaultBody  = `Lake Geneva wakes slowly. Fishing boats leave Ouchy before the first trains, and by the time the funicular starts climbing towards the old town the water has already changed colour twice.

Lausanne is built on three hills and the locals measure distance in stairs rather than metres. Markets fill the Place de la Riponne on Wednesdays and Saturdays, and the vineyards of Lavaux begin where the last suburb ends.

Further along the shore Montreux keeps its promenade lined with palms, a reminder that the Alps shelter this stretch of coast from the northern wind.`
)

// PageOptions configures a Page.
type PageOptions struct {
	Title       string
	Body        string
	PxPerColumn int
	Initial     ParameterSet
}

// Page is the host document. It owns the committed parameter set and
// renders the article with it. Page implements Applier: the committed set
// is only ever replaced as a whole.
type Page struct {
	title       string
	body        string
	pxPerColumn int
	committed   ParameterSet
	revision    int
}

// NewPage creates a page showing opts.Initial.
func NewPage(opts PageOptions) *Page {
	p := &Page{committed: opts.Initial}
	p.SetContent(opts.Title, opts.Body, opts.PxPerColumn)
	return p
}

// SetContent replaces the article text and the px to column ratio.
// Empty values fall back to the built-in defaults.
func (p *Page) SetContent(title, body string, pxPerColumn int) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if strings.TrimSpace(body) == "" {
		body = DefaultBody
	}
	if pxPerColumn <= 0 {
		pxPerColumn = DefaultPxPerColumn
	}
	p.title = title
	p.body = body
	p.pxPerColumn = pxPerColumn
}

// ChangeArticle commits params atomically.
func (p *Page) ChangeArticle(params ParameterSet) {
	p.committed = params
	p.revision++
}

// Committed returns the last applied parameter set.
func (p *Page) Committed() ParameterSet {
	return p.committed
}

// Revision counts how many times a parameter set has been committed.
func (p *Page) Revision() int {
	return p.revision
}

// Columns returns the rendered width for the committed content width,
// clamped to maxWidth when maxWidth is positive.
func (p *Page) Columns(maxWidth int) int {
	cols := minPageColumns
	if px, err := ParsePixels(p.committed.ContentWidth.Value); err == nil {
		cols = px / p.pxPerColumn
	}
	if cols < minPageColumns {
		cols = minPageColumns
	}
	if maxWidth > 0 && cols > maxWidth {
		cols = maxWidth
	}
	return cols
}

// Render draws the article using the committed parameters.
func (p *Page) Render(maxWidth int) string {
	params := p.committed
	cols := p.Columns(maxWidth)

	base := lipgloss.NewStyle()
	if !params.FontColor.IsZero() {
		base = base.Foreground(lipgloss.Color(params.FontColor.Value))
	}
	if !params.BackgroundColor.IsZero() {
		base = base.Background(lipgloss.Color(params.BackgroundColor.Value))
	}

	inner := cols - 4
	titleStyle := base.Bold(true).Width(inner)
	bodyStyle := familyStyle(base, params.FontFamily).Width(inner)

	title := p.title
	gap := 1
	size, _ := ParsePixels(params.FontSize.Value)
	switch {
	case size > 25:
		title = strings.ToUpper(title)
		gap = 2
	case size > 18:
		titleStyle = titleStyle.Underline(true)
	}

	paragraphs := strings.Split(strings.TrimSpace(p.body), "\n\n")
	blocks := []string{titleStyle.Render(title)}
	spacer := base.Width(inner).Render(strings.Repeat("\n", gap-1))
	for _, paragraph := range paragraphs {
		blocks = append(blocks, spacer, bodyStyle.Render(strings.TrimSpace(paragraph)))
	}

	return base.Width(cols).Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func familyStyle(base lipgloss.Style, family OptionValue) lipgloss.Style {
	switch family.Class {
	case "serif":
		return base.Italic(true)
	case "display":
		return base.Bold(true)
	case "mono":
		return base.Faint(true)
	default:
		return base
	}
}
