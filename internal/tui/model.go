// Package tui hosts the article page, the parameters toggle and the
// parameters panel in a single Bubble Tea program.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	"github.com/alexisbeaulieu97/articleparams/internal/config"
	"github.com/alexisbeaulieu97/articleparams/internal/logger"
	"github.com/alexisbeaulieu97/articleparams/internal/pointer"
	"github.com/alexisbeaulieu97/articleparams/internal/tui/params"
)

// PanelState is the panel state owned by the host. The panel and the
// toggle only ever see it through SetOpen and View.
type PanelState struct {
	IsOpen bool
}

// Options configures a Model.
type Options struct {
	Config *config.Config
	// SubmitPolicy overrides the configured policy when set.
	SubmitPolicy string
	Logger       *logger.Logger
	Keys         params.KeyMap
	// Reloads and ReloadErrors usually come from a config.Watcher.
	Reloads      <-chan *config.Config
	ReloadErrors <-chan error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg            *config.Config
	policyOverride string
	log            *logger.Logger

	doc    *pointer.Document
	page   *article.Page
	toggle params.ToggleControl
	panel  *params.Panel
	state  PanelState

	keys keyMap
	help help.Model

	reloads      <-chan *config.Config
	reloadErrors <-chan error

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// NewModel builds the host with the panel closed and the defaults applied
// to the page.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	policy, err := resolvePolicy(cfg, opts.SubmitPolicy)
	if err != nil {
		return nil, err
	}

	keys := opts.Keys
	if len(keys.Toggle.Keys()) == 0 {
		keys = params.DefaultKeyMap()
	}

	catalog := cfg.Catalog()
	m := &Model{
		cfg:            cfg,
		policyOverride: opts.SubmitPolicy,
		log:            opts.Logger.WithFields(map[string]any{"component": "tui"}),
		doc:            pointer.NewDocument(),
		keys:           newKeyMap(keys),
		help:           help.New(),
		reloads:        opts.Reloads,
		reloadErrors:   opts.ReloadErrors,
	}
	m.page = article.NewPage(article.PageOptions{
		Title:       cfg.Article.Title,
		Body:        cfg.Article.Body,
		PxPerColumn: cfg.PxPerColumn,
		Initial:     catalog.Defaults,
	})
	m.toggle = params.NewToggleControl(func() { m.setOpen(!m.state.IsOpen) }, keys.Toggle)
	m.panel = params.NewPanel(params.Options{
		Catalog:   catalog,
		Applier:   article.ApplierFunc(m.changeArticle),
		Document:  m.doc,
		Policy:    policy,
		OnDismiss: func(params.DismissReason) { m.setOpen(false) },
		Anchor:    func() pointer.Rect { return m.toggle.Bounds(m.state.IsOpen) },
		Width:     panelContentWidth(cfg),
		Keys:      keys,
		Logger:    opts.Logger,
	})
	m.panel.SetOrigin(0, m.toggle.Bounds(false).Height)

	return m, nil
}

// Init starts listening for configuration reloads.
func (m *Model) Init() tea.Cmd {
	return waitForConfigCmd(m.reloads, m.reloadErrors)
}

// State returns the panel state.
func (m *Model) State() PanelState {
	return m.state
}

// Page returns the article page holding the committed parameters.
func (m *Model) Page() *article.Page {
	return m.page
}

// Panel returns the parameters panel.
func (m *Model) Panel() *params.Panel {
	return m.panel
}

// Document returns the pointer document the panel listens on.
func (m *Model) Document() *pointer.Document {
	return m.doc
}

// setOpen is the only writer of the panel state.
func (m *Model) setOpen(open bool) {
	if m.state.IsOpen == open {
		return
	}
	m.state.IsOpen = open
	m.panel.SetOpen(open)
}

func (m *Model) changeArticle(p article.ParameterSet) {
	m.page.ChangeArticle(p)
	m.status = fmt.Sprintf("Applied %s, %s, %s on %s, %s",
		p.FontFamily.Title, p.FontSize.Title, p.FontColor.Title, p.BackgroundColor.Title, p.ContentWidth.Title)
	m.statusErr = false
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	policy, err := resolvePolicy(cfg, m.policyOverride)
	if err != nil {
		m.log.Error(err, "ignoring reloaded config")
		return
	}

	m.cfg = cfg
	catalog := cfg.Catalog()
	m.panel.SetCatalog(catalog)
	m.panel.SetPolicy(policy)
	m.panel.SetWidth(panelContentWidth(cfg))
	m.page.SetContent(cfg.Article.Title, cfg.Article.Body, cfg.PxPerColumn)

	committed := m.page.Committed()
	if reconciled := catalog.Reconcile(committed); !reconciled.Equal(committed) {
		m.page.ChangeArticle(reconciled)
	}

	m.status = "Configuration reloaded"
	m.statusErr = false
	m.log.Info("configuration applied")
}

func (m *Model) quit() tea.Cmd {
	m.panel.Close()
	m.state.IsOpen = false
	m.quitting = true
	return tea.Quit
}

func resolvePolicy(cfg *config.Config, override string) (params.SubmitPolicy, error) {
	name := cfg.SubmitPolicy
	if override != "" {
		name = override
	}
	return params.ParseSubmitPolicy(name)
}

// panel_width counts the border and padding around the content.
func panelContentWidth(cfg *config.Config) int {
	return cfg.PanelWidth - 4
}
