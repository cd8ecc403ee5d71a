package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.dispatch(editor.WindowSizeChanged{Size: editor.Size{
			Width:  msg.Width,
			Height: max(0, msg.Height-footerHeight),
		}})

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case inboxMsg:
		next, cmd := m.dispatch(msg.msg)
		return next, tea.Batch(cmd, waitForInbox(m.inbox))

	case hostNotice:
		return m.dispatch(editor.NotificationReceived{Notification: editor.Notification{
			Level:     msg.level,
			Title:     msg.title,
			Message:   msg.message,
			Action:    msg.action,
			Timestamp: m.now(),
		}})

	case editor.Msg:
		return m.dispatch(msg)

	case logLoadedMsg:
		if !m.showLog || msg.gen != m.logGen {
			return m, nil
		}
		if msg.err != nil {
			logtail.Errorf("read log: %v", msg.err)
		}
		m.logEntries = msg.entries
		m.setResultContent()
		m.result.GotoBottom()
		return m, m.scheduleLogRefresh()

	case logTickMsg:
		if !m.showLog || msg.gen != m.logGen {
			return m, nil
		}
		return m, m.loadLog()
	}

	// Cursor blink and other widget-internal messages.
	var cmd tea.Cmd
	switch m.focus {
	case focusElm:
		m.elm, cmd = m.elm.Update(msg)
	case focusHTML:
		m.html, cmd = m.html.Update(msg)
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.desc, cmd = m.desc.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// dispatch runs msg through the editor reducer, commits the result and
// turns the effects into commands.
func (m Model) dispatch(msg editor.Msg) (tea.Model, tea.Cmd) {
	next, effects := editor.Reduce(msg, m.core)
	m.core = next
	m.syncWidgets()
	if m.store != nil {
		m.store.Publish(m.core)
	}

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		if cmd := m.perform(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.setResultContent()
	return m, tea.Batch(cmds...)
}

// dispatchAll dispatches msgs in order and batches their commands.
func (m Model) dispatchAll(msgs ...editor.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(msgs))
	var model tea.Model = m
	for _, msg := range msgs {
		var cmd tea.Cmd
		model, cmd = model.(Model).dispatch(msg)
		cmds = append(cmds, cmd)
	}
	return model, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Compile):
		return m.dispatch(editor.KeyComboPressed{Combo: editor.ComboCompile})
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(editor.KeyComboPressed{Combo: editor.ComboSave})
	case key.Matches(msg, m.keys.Format):
		return m.dispatch(editor.KeyComboPressed{Combo: editor.ComboFormat})
	case key.Matches(msg, m.keys.Search):
		return m.dispatch(editor.KeyComboPressed{Combo: editor.ComboSearch})
	case key.Matches(msg, m.keys.Gist):
		return m.dispatch(editor.CreateGistRequested{})
	case key.Matches(msg, m.keys.Debugger):
		return m.dispatch(editor.OpenDebuggerRequested{})
	case key.Matches(msg, m.keys.Preview):
		return m.dispatch(editor.ReloadIframeRequested{})
	case key.Matches(msg, m.keys.EmbedLink):
		return m.dispatch(editor.TogglePopouts{Popout: editor.EmbedLinkOpen})
	case key.Matches(msg, m.keys.ClearCache):
		return m.dispatch(editor.ClearElmStuffRequested{})
	case key.Matches(msg, m.keys.Dismiss):
		if notes := m.core.Notifications(); len(notes) > 0 {
			return m.dispatch(editor.ClearNotification{Notification: notes[0]})
		}
		return m, nil
	case key.Matches(msg, m.keys.CollapseElm):
		return m.dispatch(editor.ToggleElmCollapse{})
	case key.Matches(msg, m.keys.CollapseHTML):
		return m.dispatch(editor.ToggleHTMLCollapse{})
	case key.Matches(msg, m.keys.GrowEditors):
		return m.nudgeResultSplit(splitStep)
	case key.Matches(msg, m.keys.ShrinkEditors):
		return m.nudgeResultSplit(-splitStep)
	case key.Matches(msg, m.keys.GrowElm):
		return m.nudgeEditorSplit(splitStep)
	case key.Matches(msg, m.keys.ShrinkElm):
		return m.nudgeEditorSplit(-splitStep)
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.setResultContent()
		log.Printf("theme changed to %s", m.theme.Name)
		return m, m.persistTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = !m.showLog
		m.setResultContent()
		if m.showLog {
			m.logGen++
			return m, m.loadLog()
		}
		m.result.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		return m.escape()
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	if key.Matches(msg, m.keys.NextFocus) {
		return m, m.nextFocus()
	}
	return m.handleEditingKey(msg)
}

func (m Model) escape() (tea.Model, tea.Cmd) {
	switch {
	case m.core.SearchOpen():
		return m.dispatch(editor.ToggleSearch{})
	case m.core.Popout() != editor.AllClosed:
		return m.dispatch(editor.TogglePopouts{Popout: m.core.Popout()})
	default:
		return m.dispatch(editor.ClearAllNotifications{})
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.core.SearchResults()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.searchIndex > 0 {
			m.searchIndex--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.searchIndex < len(results)-1 {
			m.searchIndex++
		}
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if len(results) == 0 {
			return m, nil
		}
		return m.dispatch(editor.PackageSelected{Package: results[m.searchIndex]})
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.searchIndex = 0
		next, dispatched := m.dispatch(editor.SearchChanged{Query: after})
		return next, tea.Batch(cmd, dispatched)
	}
	return m, cmd
}

// handleEditingKey feeds the key to the focused widget and reports any text
// change to the editor.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusElm:
		before := m.elm.Value()
		m.elm, cmd = m.elm.Update(msg)
		if after := m.elm.Value(); after != before {
			return m.withCmd(cmd, editor.ElmCodeChanged{Code: after})
		}
	case focusHTML:
		before := m.html.Value()
		m.html, cmd = m.html.Update(msg)
		if after := m.html.Value(); after != before {
			return m.withCmd(cmd, editor.HTMLCodeChanged{Code: after})
		}
	case focusTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if after := m.title.Value(); after != before {
			return m.withCmd(cmd, editor.TitleChanged{Title: after})
		}
	case focusDescription:
		before := m.desc.Value()
		m.desc, cmd = m.desc.Update(msg)
		if after := m.desc.Value(); after != before {
			return m.withCmd(cmd, editor.DescriptionChanged{Description: after})
		}
	case focusPackages:
		pkgs := m.core.ClientRevision().Packages
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.packageIndex > 0 {
				m.packageIndex--
			}
		case key.Matches(msg, m.keys.Down):
			if m.packageIndex < len(pkgs)-1 {
				m.packageIndex++
			}
		case key.Matches(msg, m.keys.Remove):
			if len(pkgs) > 0 {
				return m.dispatch(editor.RemovePackageRequested{Package: pkgs[m.packageIndex]})
			}
		}
	}
	return m, cmd
}

func (m Model) withCmd(cmd tea.Cmd, msg editor.Msg) (tea.Model, tea.Cmd) {
	next, dispatched := m.dispatch(msg)
	return next, tea.Batch(cmd, dispatched)
}

// nudgeResultSplit and nudgeEditorSplit move a splitter from the keyboard
// by replaying a short drag.
func (m Model) nudgeResultSplit(delta float64) (tea.Model, tea.Cmd) {
	pos := layoutFor(m.core).splitPosition(m.core.ResultSplit() + delta)
	return m.dispatchAll(
		editor.ResultDragStarted{},
		editor.ResultDragged{Position: pos},
		editor.ResultDragEnded{},
	)
}

func (m Model) nudgeEditorSplit(delta float64) (tea.Model, tea.Cmd) {
	pos := layoutFor(m.core).splitPosition(m.core.EditorSplit() + delta)
	return m.dispatchAll(
		editor.EditorDragStarted{},
		editor.EditorDragged{Position: pos},
		editor.EditorDragEnded{},
	)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := editor.Position{X: msg.X, Y: msg.Y}

	// Active drags: motion moves the splitter, release ends the drag.
	if m.core.ResultDragging() || m.core.EditorDragging() {
		switch msg.Action {
		case tea.MouseActionRelease:
			if m.core.ResultDragging() {
				return m.dispatch(editor.ResultDragEnded{})
			}
			return m.dispatch(editor.EditorDragEnded{})
		case tea.MouseActionMotion:
			if m.core.ResultDragging() {
				return m.dispatch(editor.ResultDragged{Position: pos})
			}
			return m.dispatch(editor.EditorDragged{Position: pos})
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	g := layoutFor(m.core)
	switch {
	case g.onResultSplitter(msg.X, msg.Y):
		return m.dispatch(editor.ResultDragStarted{})
	case g.onEditorSplitter(msg.X, msg.Y):
		return m.dispatch(editor.EditorDragStarted{})
	case g.inElm(msg.X, msg.Y) && m.focus != focusSearch:
		return m, m.applyFocus(focusElm)
	case g.inHTML(msg.X, msg.Y) && m.focus != focusSearch:
		return m, m.applyFocus(focusHTML)
	}
	return m, nil
}
