package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
	"github.com/five82/playpen/internal/prefs"
	"github.com/five82/playpen/internal/state"
)

// focusArea is the widget receiving keystrokes.
type focusArea int

const (
	focusElm focusArea = iota
	focusHTML
	focusTitle
	focusDescription
	focusPackages
	focusSearch
)

// focusCycle is the order Tab walks through. Search is entered with its own
// key and is not part of the cycle.
var focusCycle = []focusArea{focusElm, focusHTML, focusTitle, focusDescription, focusPackages}

// inboxMsg carries a message that arrived on the inbox channel.
type inboxMsg struct{ msg editor.Msg }

// Model is the Bubble Tea model hosting the editor core. It owns the
// widgets, translates terminal events into editor messages and editor
// effects into commands.
type Model struct {
	ctx       context.Context
	client    api.Service
	store     *state.Store
	cfg       config.Config
	inbox     chan editor.Msg
	prefsPath string
	now       func() time.Time

	core    editor.Model
	startup []tea.Cmd // commands for the starting route's effects

	elm    textarea.Model
	html   textarea.Model
	title  textinput.Model
	desc   textinput.Model
	search textinput.Model
	result viewport.Model
	help   help.Model

	keys  keyMap
	theme Theme

	focus        focusArea
	returnFocus  focusArea
	searchIndex  int
	packageIndex int
	location     string

	// showLog switches the result pane from compile output to the tail of
	// the log file.
	showLog    bool
	logGen     int
	logEntries []logtail.Entry
}

func newModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	inbox := opts.Inbox
	if inbox == nil {
		inbox = make(chan editor.Msg, 64)
	}

	flags := editor.Flags{
		Online:     opts.Online,
		ElmVersion: opts.Config.ElmVersion,
		Layout: editor.Layout{
			HeaderHeight: opts.Config.HeaderHeight,
			SidebarWidth: opts.Config.SidebarWidth,
		},
		EditorSplit: opts.Prefs.EditorSplit,
		ResultSplit: opts.Prefs.ResultSplit,
		Collapse:    editor.ParseCollapse(opts.Prefs.Collapse),
	}
	core, effects := editor.Init(flags, opts.Route)

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		cfg:       opts.Config,
		inbox:     inbox,
		prefsPath: opts.PrefsPath,
		now:       time.Now,
		core:      core,
		elm:       newEditor("Elm"),
		html:      newEditor("HTML"),
		title:     newInput("Title", 80),
		desc:      newInput("Description", 240),
		search:    newInput("Search packages", 80),
		result:    viewport.New(0, 0),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		location:  opts.Route.Path(),
	}
	m.syncWidgets()
	m.setResultContent()
	m.applyFocus(focusElm)
	if m.store != nil {
		m.store.Publish(m.core)
	}
	// Effects run here rather than in Init so host state they set (location,
	// focus) lands on the model Bubble Tea keeps.
	for _, e := range effects {
		if cmd := m.perform(e); cmd != nil {
			m.startup = append(m.startup, cmd)
		}
	}
	return m
}

func newEditor(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	return ta
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

// Init starts the starting route's commands and the inbox reader.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{waitForInbox(m.inbox), textarea.Blink}, m.startup...)
	return tea.Batch(cmds...)
}

// waitForInbox blocks for the next inbox message.
func waitForInbox(inbox <-chan editor.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-inbox
		if !ok {
			return nil
		}
		return inboxMsg{msg: msg}
	}
}

// send delivers msg through the inbox from an effect goroutine.
func (m Model) send(msg editor.Msg) {
	select {
	case m.inbox <- msg:
	case <-m.ctx.Done():
	}
}

// Core returns the current editor model.
func (m Model) Core() editor.Model {
	return m.core
}

// syncWidgets copies editor state the user did not type into the widgets:
// loaded or formatted code, metadata and the search query.
func (m *Model) syncWidgets() {
	if m.elm.Value() != m.core.StagedElmCode() {
		m.elm.SetValue(m.core.StagedElmCode())
	}
	if m.html.Value() != m.core.StagedHTMLCode() {
		m.html.SetValue(m.core.StagedHTMLCode())
	}
	rev := m.core.ClientRevision()
	if m.title.Value() != rev.Title {
		m.title.SetValue(rev.Title)
	}
	if m.desc.Value() != rev.Description {
		m.desc.SetValue(rev.Description)
	}
	if m.search.Value() != m.core.SearchValue() {
		m.search.SetValue(m.core.SearchValue())
	}

	if results := m.core.SearchResults(); m.searchIndex >= len(results) {
		m.searchIndex = max(0, len(results)-1)
	}
	if pkgs := rev.Packages; m.packageIndex >= len(pkgs) {
		m.packageIndex = max(0, len(pkgs)-1)
	}

	if m.focus == focusSearch && !m.core.SearchOpen() {
		m.applyFocus(m.returnFocus)
	}
	switch {
	case m.focus == focusElm && m.core.Collapse() == editor.JustHTMLOpen:
		m.applyFocus(focusHTML)
	case m.focus == focusHTML && m.core.Collapse() == editor.JustElmOpen:
		m.applyFocus(focusElm)
	}
	m.resize()
}

// resize fits the widgets to the current geometry.
func (m *Model) resize() {
	g := layoutFor(m.core)
	innerW := max(1, g.editorsW-2)
	m.elm.SetWidth(innerW)
	m.elm.SetHeight(max(1, g.elmH-2))
	m.html.SetWidth(innerW)
	m.html.SetHeight(max(1, g.htmlH-2))

	sideW := max(1, g.sidebarWidth-4)
	m.title.Width = sideW
	m.desc.Width = sideW
	m.search.Width = sideW

	m.result.Width = max(1, g.resultW-2)
	m.result.Height = max(1, g.bodyH-2-notificationRows(m.core))
	m.help.Width = g.width
}

// applyFocus moves keyboard focus to area.
func (m *Model) applyFocus(area focusArea) tea.Cmd {
	m.elm.Blur()
	m.html.Blur()
	m.title.Blur()
	m.desc.Blur()
	m.search.Blur()

	if area == focusSearch && m.focus != focusSearch {
		m.returnFocus = m.focus
	}
	m.focus = area

	switch area {
	case focusElm:
		return m.elm.Focus()
	case focusHTML:
		return m.html.Focus()
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.desc.Focus()
	case focusSearch:
		return m.search.Focus()
	default:
		return nil
	}
}

func (m *Model) nextFocus() tea.Cmd {
	next := focusCycle[0]
	for i, area := range focusCycle {
		if area == m.focus {
			next = focusCycle[(i+1)%len(focusCycle)]
			break
		}
	}
	if next == focusElm && m.core.Collapse() == editor.JustHTMLOpen {
		next = focusHTML
	}
	if next == focusHTML && m.core.Collapse() == editor.JustElmOpen {
		next = focusTitle
	}
	return m.applyFocus(next)
}

// persistTheme saves the theme choice without touching layout prefs.
func (m Model) persistTheme() tea.Cmd {
	path, name := m.prefsPath, m.theme.Name
	return func() tea.Msg {
		p, _ := prefs.Load(path)
		p.Theme = name
		if err := prefs.Save(path, p); err != nil {
			return hostFailure("Could Not Save Theme", err)
		}
		return nil
	}
}

// Log pane refresh.
const (
	logRefreshInterval = 2 * time.Second
	logTailLines       = 500
)

// Log messages carry the generation of the log view that asked for them so
// a refresh loop from an earlier toggle stops on its own.
type logLoadedMsg struct {
	gen     int
	entries []logtail.Entry
	err     error
}

type logTickMsg struct{ gen int }

func (m Model) loadLog() tea.Cmd {
	path, gen := m.cfg.LogFile, m.logGen
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logLoadedMsg{gen: gen, entries: logtail.ParseAll(lines), err: err}
	}
}

func (m Model) scheduleLogRefresh() tea.Cmd {
	gen := m.logGen
	return tea.Tick(logRefreshInterval, func(time.Time) tea.Msg { return logTickMsg{gen: gen} })
}
