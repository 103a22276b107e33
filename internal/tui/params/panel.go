// Package params implements the article parameters panel: a toggle
// control, the collapsible panel with its pickers, and the open/close state
// machine that scopes the panel's click-outside listener to its open
// lifetime.
package params

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	"github.com/alexisbeaulieu97/articleparams/internal/logger"
	"github.com/alexisbeaulieu97/articleparams/internal/pointer"
)

const (
	buttonReset = iota
	buttonApply
	buttonCount
)

// DefaultWidth is the content width of the panel in columns.
const DefaultWidth = 32

// Options configures a Panel.
type Options struct {
	Catalog article.Catalog
	// Applier receives committed parameter sets (submit and reset).
	Applier article.Applier
	// Document is where the panel listens for pointer-downs while open.
	Document *pointer.Document
	Policy   SubmitPolicy
	// OnDismiss asks the owner of the open state to close the panel.
	// When nil the panel closes itself.
	OnDismiss func(DismissReason)
	// Anchor returns the rectangle of the control that opens the panel.
	// Clicks inside it do not count as outside clicks.
	Anchor func() pointer.Rect
	Width  int
	Keys   KeyMap
	Logger *logger.Logger
}

// Panel holds the draft parameter set and renders the form while open.
type Panel struct {
	catalog   article.Catalog
	applier   article.Applier
	doc       *pointer.Document
	policy    SubmitPolicy
	onDismiss func(DismissReason)
	anchor    func() pointer.Rect
	width     int
	keys      KeyMap
	log       *logger.Logger

	open    bool
	draft   article.ParameterSet
	pickers []picker
	focus   int
	originX int
	originY int
	outside *pointer.Subscription
}

// NewPanel creates a closed panel whose draft starts at the catalog defaults.
func NewPanel(opts Options) *Panel {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	keys := opts.Keys
	if len(keys.Submit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	p := &Panel{
		catalog:   opts.Catalog,
		applier:   opts.Applier,
		doc:       opts.Document,
		policy:    opts.Policy,
		onDismiss: opts.OnDismiss,
		anchor:    opts.Anchor,
		width:     width,
		keys:      keys,
		log:       opts.Logger.WithFields(map[string]any{"component": "params_panel"}),
		draft:     opts.Catalog.Defaults,
	}

	for _, field := range article.Fields() {
		onChange := p.changeHandler(field)
		options := p.catalog.OptionsFor(field)
		selected := p.draft.Get(field)
		if field == article.FieldFontSize {
			p.pickers = append(p.pickers, NewRadioGroup(field, options, selected, keys, onChange))
			continue
		}
		p.pickers = append(p.pickers, NewSelect(field, options, selected, keys, onChange))
	}

	return p
}

func (p *Panel) changeHandler(field article.Field) func(article.OptionValue) {
	return func(v article.OptionValue) {
		p.SetField(field, v)
	}
}

// IsOpen reports whether the panel is mounted.
func (p *Panel) IsOpen() bool {
	return p.open
}

// Draft returns the in-progress parameter set.
func (p *Panel) Draft() article.ParameterSet {
	return p.draft
}

// Catalog returns the catalog the panel currently offers.
func (p *Panel) Catalog() article.Catalog {
	return p.catalog
}

// Listening reports whether the outside-click listener is attached.
func (p *Panel) Listening() bool {
	return p.outside.Active()
}

// Capturing reports whether an expanded select consumes plain key presses.
func (p *Panel) Capturing() bool {
	if !p.open {
		return false
	}
	if pk := p.focusedPicker(); pk != nil {
		return pk.capturing()
	}
	return false
}

// SetOrigin places the panel's top left corner on screen.
func (p *Panel) SetOrigin(x, y int) {
	p.originX, p.originY = x, y
}

// SetOpen receives the open state from the panel's owner. Only the edges
// matter: entering the open state attaches the outside-click listener and
// leaving it releases the listener.
func (p *Panel) SetOpen(open bool) {
	if open == p.open {
		return
	}
	p.open = open
	if open {
		p.mount()
		return
	}
	p.unmount()
}

func (p *Panel) mount() {
	p.focus = 0
	for _, pk := range p.pickers {
		pk.collapse()
	}
	if p.doc != nil && !p.outside.Active() {
		p.outside = p.doc.Subscribe(p.handleDocumentPointer)
		p.log.Debug("outside click listener attached")
	}
	p.log.Info("panel opened")
}

func (p *Panel) unmount() {
	p.releaseListener()
	for _, pk := range p.pickers {
		pk.collapse()
	}
	p.log.Info("panel closed")
}

func (p *Panel) releaseListener() {
	if !p.outside.Active() {
		return
	}
	p.outside.Release()
	p.outside = nil
	p.log.Debug("outside click listener released")
}

// Close tears the panel down. The listener is released regardless of the
// current state.
func (p *Panel) Close() {
	p.open = false
	p.releaseListener()
}

func (p *Panel) handleDocumentPointer(ev pointer.Event) {
	if !p.open || p.Contains(ev.X, ev.Y) {
		return
	}
	p.dismiss(DismissOutside)
}

func (p *Panel) dismiss(reason DismissReason) {
	p.log.WithFields(map[string]any{"reason": reason.String()}).Debug("dismiss requested")
	if p.onDismiss != nil {
		p.onDismiss(reason)
		return
	}
	p.SetOpen(false)
}

// Bounds returns the panel's screen rectangle, empty while closed.
func (p *Panel) Bounds() pointer.Rect {
	if !p.open {
		return pointer.Rect{}
	}
	view := p.View()
	return pointer.Rect{X: p.originX, Y: p.originY, Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
}

// Contains reports whether (x, y) is inside the panel or its anchor.
func (p *Panel) Contains(x, y int) bool {
	region := pointer.Region{p.Bounds()}
	if p.anchor != nil {
		region = append(region, p.anchor())
	}
	return region.Contains(x, y)
}

// SetField replaces one field of the draft. Values outside the field's
// enumeration are ignored.
func (p *Panel) SetField(field article.Field, value article.OptionValue) bool {
	options := p.catalog.OptionsFor(field)
	idx := options.Index(value)
	if idx < 0 {
		p.log.Warn("ignoring option outside enumeration: " + field.String() + "=" + value.Value)
		return false
	}
	p.draft = p.draft.With(field, options[idx])
	if pk := p.pickerFor(field); pk != nil {
		pk.setSelected(options[idx])
	}
	p.log.WithFields(map[string]any{"field": field.String(), "value": value.Value}).Debug("draft updated")
	return true
}

// Submit commits the draft. Under SubmitClose it also asks to be closed.
func (p *Panel) Submit() {
	if !p.open {
		return
	}
	draft := p.draft
	if p.applier != nil {
		p.applier.ChangeArticle(draft)
	}
	p.log.WithFields(map[string]any{"params": draft.Map(), "policy": p.policy.String()}).Info("parameters applied")
	if p.policy == SubmitClose {
		p.dismiss(DismissSubmit)
	}
}

// Reset restores the defaults in the draft and commits them.
func (p *Panel) Reset() {
	if !p.open {
		return
	}
	p.draft = p.catalog.Defaults
	p.syncPickers()
	if p.applier != nil {
		p.applier.ChangeArticle(p.draft)
	}
	p.log.Info("parameters reset to defaults")
}

// SetCatalog swaps the enumerations. Draft values that are no longer
// offered fall back to the new defaults.
func (p *Panel) SetCatalog(catalog article.Catalog) {
	p.catalog = catalog
	p.draft = catalog.Reconcile(p.draft)
	for _, pk := range p.pickers {
		pk.setOptions(catalog.OptionsFor(pk.field()))
	}
	p.syncPickers()
	p.log.Debug("catalog replaced")
}

// SetPolicy changes what a submit does from now on.
func (p *Panel) SetPolicy(policy SubmitPolicy) {
	p.policy = policy
}

// SetWidth changes the content width. Non-positive values select
// DefaultWidth.
func (p *Panel) SetWidth(width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	p.width = width
}

func (p *Panel) syncPickers() {
	for _, pk := range p.pickers {
		pk.setSelected(p.draft.Get(pk.field()))
	}
}

func (p *Panel) pickerFor(field article.Field) picker {
	for _, pk := range p.pickers {
		if pk.field() == field {
			return pk
		}
	}
	return nil
}

func (p *Panel) focusedPicker() picker {
	if p.focus >= 0 && p.focus < len(p.pickers) {
		return p.pickers[p.focus]
	}
	return nil
}

func (p *Panel) focusCount() int {
	return len(p.pickers) + buttonCount
}

func (p *Panel) setFocus(index int) {
	n := p.focusCount()
	index = ((index % n) + n) % n
	if index == p.focus {
		return
	}
	if pk := p.focusedPicker(); pk != nil {
		pk.collapse()
	}
	p.focus = index
}

// Update handles keys and pointer presses while the panel is open.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if !p.open {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			p.HandleClick(pointer.Event{X: msg.X, Y: msg.Y})
		}
	}
	return nil
}

func (p *Panel) handleKey(msg tea.KeyMsg) {
	pk := p.focusedPicker()
	if pk != nil && pk.capturing() && pk.handleKey(msg) {
		return
	}

	switch {
	case key.Matches(msg, p.keys.Submit):
		p.Submit()
		return
	case key.Matches(msg, p.keys.Reset):
		p.Reset()
		return
	case key.Matches(msg, p.keys.Next):
		p.setFocus(p.focus + 1)
		return
	case key.Matches(msg, p.keys.Prev):
		p.setFocus(p.focus - 1)
		return
	case key.Matches(msg, p.keys.Dismiss):
		p.dismiss(DismissEscape)
		return
	}

	if pk != nil {
		pk.handleKey(msg)
		return
	}
	if key.Matches(msg, p.keys.Press) {
		p.press(p.focus - len(p.pickers))
	}
}

func (p *Panel) press(button int) {
	switch button {
	case buttonReset:
		p.Reset()
	case buttonApply:
		p.Submit()
	}
}

// HandleClick operates the control under an absolute screen position.
func (p *Panel) HandleClick(ev pointer.Event) {
	if !p.open {
		return
	}
	x := ev.X - p.originX - contentOffsetX
	y := ev.Y - p.originY - contentOffsetY
	rows := p.rows()
	if y < 0 || y >= len(rows) {
		return
	}

	t := rows[y].at(x)
	switch t.kind {
	case targetHeader, targetOption:
		p.setFocus(t.index)
		p.pickers[t.index].activate(t)
	case targetButton:
		p.setFocus(len(p.pickers) + t.index)
		p.press(t.index)
	}
}

func (p *Panel) rows() []row {
	var out []row
	for i, pk := range p.pickers {
		if i > 0 {
			out = append(out, row{})
		}
		// Background options start a new group.
		if pk.field() == article.FieldBackgroundColor {
			out = append(out, row{plain(separatorStyle.Render(strings.Repeat("─", p.width)))}, row{})
		}
		for _, r := range pk.rows(p.focus == i, p.width) {
			out = append(out, r.stamp(i))
		}
	}
	out = append(out, row{}, p.buttonRow())
	return out
}

func (p *Panel) buttonRow() row {
	render := func(id int, label string, style lipgloss.Style) segment {
		if p.focus == len(p.pickers)+id {
			style = buttonFocusedStyle
		}
		return segment{text: style.Render(label), hit: target{kind: targetButton, index: id}}
	}
	return row{
		render(buttonReset, "Reset", buttonStyle),
		plain("  "),
		render(buttonApply, "Apply", buttonPrimaryStyle),
	}
}

// View renders the panel, or nothing while closed.
func (p *Panel) View() string {
	if !p.open {
		return ""
	}
	rows := p.rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.render()
	}
	return panelStyle.Width(p.width + 2).Render(strings.Join(lines, "\n"))
}
