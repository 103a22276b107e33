package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	"github.com/alexisbeaulieu97/articleparams/internal/config"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := NewModel(opts)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 48})
	return m
}

func press(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func sendKey(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func sendRunes(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func TestNewModelStartsClosed(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.False(t, m.State().IsOpen)
	assert.False(t, m.Panel().IsOpen())
	assert.Equal(t, 0, m.Document().Listeners())
	assert.Equal(t, article.DefaultCatalog().Defaults, m.Page().Committed())
	assert.Equal(t, 0, m.Page().Revision())

	view := m.View()
	assert.Contains(t, view, "Parameters")
	assert.Contains(t, view, article.DefaultTitle)
	assert.NotContains(t, view, "Font size")
}

func TestNewModelRejectsUnknownPolicy(t *testing.T) {
	_, err := NewModel(Options{SubmitPolicy: "sometimes"})
	require.Error(t, err)
}

func TestToggleKeyOpensAndCloses(t *testing.T) {
	m := newTestModel(t, Options{})

	sendKey(m, tea.KeyCtrlO)
	require.True(t, m.State().IsOpen)
	require.True(t, m.Panel().IsOpen())
	require.Equal(t, 1, m.Document().Listeners())
	require.Contains(t, m.View(), "Font size")

	sendKey(m, tea.KeyCtrlO)
	require.False(t, m.State().IsOpen)
	require.False(t, m.Panel().IsOpen())
	require.Equal(t, 0, m.Document().Listeners())
}

func TestToggleClickOpensAndCloses(t *testing.T) {
	m := newTestModel(t, Options{})

	press(m, 1, 1)
	require.True(t, m.State().IsOpen)

	// The toggle is part of the panel boundary: one click, one transition.
	press(m, 1, 1)
	require.False(t, m.State().IsOpen)
	require.Equal(t, 0, m.Document().Listeners())
}

func TestOutsideClickCloses(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)

	press(m, 120, 2)

	require.False(t, m.State().IsOpen)
	require.False(t, m.Panel().IsOpen())
	require.Equal(t, 0, m.Document().Listeners())
}

func TestInsideClickKeepsOpen(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)

	bounds := m.Panel().Bounds()
	press(m, bounds.X+bounds.Width-1, bounds.Y+bounds.Height-1)

	require.True(t, m.State().IsOpen)
	require.Equal(t, 1, m.Document().Listeners())
}

func TestClicksWhileClosedChangeNothing(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)
	sendKey(m, tea.KeyCtrlO)

	press(m, 120, 2)
	press(m, 20, 20)

	require.False(t, m.State().IsOpen)
	require.Equal(t, 0, m.Page().Revision())
	require.Equal(t, 0, m.Document().Listeners())
}

func TestNonLeftPressIgnored(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	require.False(t, m.State().IsOpen)
}

func TestSubmitAppliesDraftAndCloses(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)

	sendKey(m, tea.KeyRight) // font family
	sendKey(m, tea.KeyTab)
	sendKey(m, tea.KeyRight) // font size
	draft := m.Panel().Draft()

	sendKey(m, tea.KeyCtrlS)

	require.Equal(t, 1, m.Page().Revision())
	require.Equal(t, draft, m.Page().Committed())
	require.False(t, m.State().IsOpen)
	require.Equal(t, 0, m.Document().Listeners())
	require.Contains(t, m.View(), "Applied Ubuntu, 25px")
}

func TestSubmitKeepOpenOverride(t *testing.T) {
	m := newTestModel(t, Options{SubmitPolicy: config.SubmitPolicyKeepOpen})
	sendKey(m, tea.KeyCtrlO)

	sendKey(m, tea.KeyCtrlS)

	require.Equal(t, 1, m.Page().Revision())
	require.True(t, m.State().IsOpen)
}

func TestResetAppliesDefaults(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)
	sendKey(m, tea.KeyRight)

	sendKey(m, tea.KeyCtrlR)

	defaults := article.DefaultCatalog().Defaults
	require.Equal(t, 1, m.Page().Revision())
	require.Equal(t, defaults, m.Page().Committed())
	require.Equal(t, defaults, m.Panel().Draft())
	require.True(t, m.State().IsOpen)
}

func TestEscapeCloses(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)

	sendKey(m, tea.KeyEsc)

	require.False(t, m.State().IsOpen)
	require.Equal(t, 0, m.Document().Listeners())
}

func TestQuitReleasesListener(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)

	cmd := sendRunes(m, "q")

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, 0, m.Document().Listeners())
	require.Empty(t, m.View())
}

func TestQuitKeyIsFilterInputWhileSelectExpanded(t *testing.T) {
	m := newTestModel(t, Options{})
	sendKey(m, tea.KeyCtrlO)
	sendKey(m, tea.KeyEnter)
	require.True(t, m.Panel().Capturing())

	cmd := sendRunes(m, "q")

	require.Nil(t, cmd)
	require.True(t, m.State().IsOpen)
	require.True(t, m.Panel().Capturing())

	cmd = sendKey(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	require.Equal(t, 0, m.Document().Listeners())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	short := m.View()

	sendRunes(m, "?")

	require.True(t, m.help.ShowAll)
	require.NotEqual(t, short, m.View())
}

func TestConfigReloadUpdatesCatalog(t *testing.T) {
	reloads := make(chan *config.Config, 1)
	m := newTestModel(t, Options{Reloads: reloads})
	sendKey(m, tea.KeyCtrlO)
	sendKey(m, tea.KeyCtrlS) // commit defaults
	require.Equal(t, 1, m.Page().Revision())

	next := config.Default()
	next.Options.ContentWidth = []config.Option{{Title: "Full", Value: "1600px"}}
	next.Defaults.ContentWidth = "1600px"
	next.Article.Title = "Reloaded"
	reloads <- &next

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ConfigReloadedMsg{}, msg)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd, "keeps waiting for the next reload")

	require.Equal(t, "1600px", m.Panel().Draft().ContentWidth.Value)
	require.Equal(t, "1600px", m.Page().Committed().ContentWidth.Value)
	require.Equal(t, 2, m.Page().Revision())
	require.Contains(t, m.View(), "Reloaded")
}

func TestConfigReloadKeepsPolicyOverride(t *testing.T) {
	m := newTestModel(t, Options{SubmitPolicy: config.SubmitPolicyKeepOpen})

	next := config.Default()
	next.SubmitPolicy = config.SubmitPolicyClose
	m.Update(ConfigReloadedMsg{Config: &next})

	sendKey(m, tea.KeyCtrlO)
	sendKey(m, tea.KeyCtrlS)
	require.True(t, m.State().IsOpen)
}

func TestConfigErrorShowsStatus(t *testing.T) {
	errs := make(chan error, 1)
	m := newTestModel(t, Options{ReloadErrors: errs})

	errs <- errors.New("bad yaml")
	msg := m.Init()()
	require.IsType(t, ConfigErrorMsg{}, msg)

	m.Update(msg)
	require.Contains(t, m.View(), "bad yaml")
}

func TestInitWithoutWatcher(t *testing.T) {
	m := newTestModel(t, Options{})
	require.Nil(t, m.Init())
}
