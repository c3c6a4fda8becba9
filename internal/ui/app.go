package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/prefs"
	"github.com/five82/vitrine/internal/state"
)

// pane identifies which side of the screen receives navigation keys.
type pane int

const (
	paneResults pane = iota
	paneFeature
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Client         museum.Searcher
	Store          *state.Store
	Logger         *log.Logger
	Prefs          *prefs.Store
	ThemeName      string
	RequestTimeout time.Duration

	// StartTerm and StartValue, when both set, run a search from Init.
	StartTerm  string
	StartValue string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	client  museum.Searcher
	store   *state.Store
	logger  *log.Logger
	prefs   *prefs.Store
	timeout time.Duration
	start   *Searchable

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	focus    pane
	showHelp bool

	// showing describes the query behind the installed results.
	showing string

	prompt  promptState
	preview previewState
	feature featureState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore(state.Policy{})
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	m := Model{
		ctx:     ctx,
		client:  opts.Client,
		store:   store,
		logger:  logger,
		prefs:   opts.Prefs,
		timeout: opts.RequestTimeout,
		theme:   GetTheme(themeName),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		prompt:  newPrompt(),
		feature: featureState{viewport: viewport.New(0, 0)},
	}
	if term, value := strings.TrimSpace(opts.StartTerm), strings.TrimSpace(opts.StartValue); term != "" && value != "" {
		m.start = &Searchable{Term: term, Value: value}
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.start != nil {
		m.logger.Info("running startup search", "term", m.start.Term, "value", m.start.Value)
		cmds = append(cmds, m.start.Activate(m.fetcher()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case fetchDoneMsg:
		if m.fetcher().settle(msg) {
			m.showing = msg.query
		}
		m.syncStore()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt.active {
		return m.handlePromptKey(msg)
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.openPrompt()
		return m, cmd

	case key.Matches(msg, m.keys.Tab):
		if m.focus == paneResults {
			m.focus = paneFeature
		} else {
			m.focus = paneResults
		}
		m.refreshFeature()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.NextPage):
		return m, m.activatePager(key.Matches(msg, m.keys.NextPage))
	}

	switch m.focus {
	case paneFeature:
		return m.handleFeatureKey(msg)
	default:
		return m.handleResultsKey(msg)
	}
}

// handleResultsKey processes keyboard input for the results pane.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.preview.cards) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.preview.move(1)
	case key.Matches(msg, m.keys.Up):
		m.preview.move(-1)
	case key.Matches(msg, m.keys.Top):
		m.preview.setCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.preview.bottom()
	case key.Matches(msg, m.keys.Confirm):
		if selectCard(m.store, m.preview.results, m.preview.cursor) {
			m.syncStore()
		}
		return m, nil
	}
	m.preview.ensureVisible(m.resultsBodyHeight())
	return m, nil
}

// handleFeatureKey processes keyboard input for the feature pane.
func (m Model) handleFeatureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.feature.moveLink(1)
		m.refreshFeature()
	case key.Matches(msg, m.keys.Up):
		m.feature.moveLink(-1)
		m.refreshFeature()
	case key.Matches(msg, m.keys.Top):
		m.feature.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.feature.viewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.feature.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.feature.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.Confirm):
		if link, ok := m.feature.activeLink(); ok {
			return m, link.Activate(m.fetcher())
		}
	}
	return m, nil
}

// activatePager runs the Next (or Previous) control when it is enabled.
func (m Model) activatePager(forward bool) tea.Cmd {
	if m.preview.results == nil {
		return nil
	}
	prev, next := pageControls(m.preview.results.Info)
	if forward {
		return next.Activate(m.fetcher())
	}
	return prev.Activate(m.fetcher())
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.refreshFeature()
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Save(prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefs.Path(), "err", err)
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.WarningText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.prompt.input.PromptStyle = styles.AccentText
	m.prompt.input.TextStyle = styles.Text
}

// fetcher hands controls what they need to run a fetch.
func (m Model) fetcher() fetcher {
	return fetcher{
		ctx:     m.ctx,
		client:  m.client,
		store:   m.store,
		timeout: m.timeout,
		logger:  m.logger,
	}
}

// syncStore pulls the current results and feature into the panes.
func (m *Model) syncStore() {
	snap := m.store.Snapshot()
	m.preview.sync(snap.Results)
	m.preview.ensureVisible(m.resultsBodyHeight())
	m.feature.sync(snap.Feature)
	m.refreshFeature()
}

// Layout

func (m Model) compact() bool {
	return m.width < LayoutCompactWidth
}

func (m Model) bodyHeight() int {
	return maxInt(m.height-headerHeight-footerHeight, 0)
}

// paneSizes returns outer sizes for the results and feature panes.
func (m Model) paneSizes() (resultsW, resultsH, featureW, featureH int) {
	body := m.bodyHeight()
	if m.compact() {
		resultsH = body * 2 / 5
		return m.width, resultsH, m.width, body - resultsH
	}
	resultsW = LayoutResultsWidth
	return resultsW, body, m.width - resultsW, body
}

func (m Model) resultsBodyHeight() int {
	_, h, _, _ := m.paneSizes()
	return maxInt(h-paneChrome-previewChrome, 0)
}

func (m *Model) resize() {
	_, _, fw, fh := m.paneSizes()
	m.feature.viewport.Width = maxInt(fw-4, 0)
	m.feature.viewport.Height = maxInt(fh-paneChrome, 0)
	m.help.Width = m.width
	m.prompt.input.Width = maxInt(m.width-6, 0)
	m.preview.ensureVisible(m.resultsBodyHeight())
	m.refreshFeature()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	snap := m.store.Snapshot()

	rw, rh, fw, fh := m.paneSizes()
	results := m.renderPane("Results", m.renderPreview(maxInt(rw-4, 0), maxInt(rh-paneChrome, 0), snap.Feature), rw, rh, m.focus == paneResults)
	feature := m.renderPane("Feature", m.feature.viewport.View(), fw, fh, m.focus == paneFeature)

	var body string
	if m.compact() {
		body = lipgloss.JoinVertical(lipgloss.Left, results, feature)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, results, feature)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap),
		m.renderStatusLine(snap),
		body,
		m.help.View(m.keys),
	)
}

// renderPane draws a bordered pane with a title row. The pane is always
// drawn, even when content is empty.
func (m Model) renderPane(title, content string, width, height int, focused bool) string {
	styles := m.theme.Styles()
	border := m.theme.Border
	titleStyle := styles.MutedText.Bold(true)
	if focused {
		border = m.theme.BorderFocus
		titleStyle = styles.AccentText.Bold(true)
	}
	inner := titleStyle.Render(title) + "\n" + content
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(maxInt(width-2, 0)).
		Height(maxInt(height-2, 0)).
		MaxHeight(maxInt(height, 0)).
		Render(inner)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
