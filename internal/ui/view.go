package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
)

// maxVisibleNotifications caps the stack above the result output.
const maxVisibleNotifications = 3

// View implements tea.Model.
func (m Model) View() string {
	g := layoutFor(m.core)
	if g.width <= 0 || g.height <= footerHeight {
		return "Starting playpen..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(g),
		m.renderEditors(g),
		m.renderResult(g),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(g),
		body,
		m.renderFooter(g),
	)
}

// renderHeader renders the status bar: identity on the first row, project
// details on the second.
func (m Model) renderHeader(g geometry) string {
	styles := m.theme.Styles()
	compact := g.width < LayoutCompactWidth
	sep := m.theme.onSurface("  ", styles.Text)

	parts := []string{m.theme.onSurface("playpen", styles.Logo)}
	if m.core.Online() {
		parts = append(parts, m.theme.onSurface("● Online", styles.SuccessText))
	} else {
		parts = append(parts, m.theme.onSurface("● Offline", styles.DangerText))
	}

	stage := m.core.CompileStage()
	parts = append(parts, m.theme.Badge(stageLabel(stage), m.theme.StageColor(stage.Kind)))

	rev := m.core.ClientRevision()
	title := rev.Title
	if title == "" {
		title = "Untitled"
	}
	parts = append(parts, m.theme.onSurface(title, styles.Text.Bold(true)))
	if m.core.Unsaved() {
		parts = append(parts, m.theme.onSurface("● Unsaved", styles.WarningText))
	}
	if m.core.Saving() {
		parts = append(parts, m.theme.onSurface("Saving...", styles.AccentText))
	}
	if m.core.CreatingGist() {
		parts = append(parts, m.theme.onSurface("Creating gist...", styles.AccentText))
	}
	if !compact {
		parts = append(parts, m.theme.onSurface(m.location, styles.MutedText))
	}

	lines := []string{strings.Join(parts, sep)}
	if g.headerHeight > 1 {
		details := fmt.Sprintf("Elm %s  %d packages  %s theme",
			rev.ElmVersion, len(rev.Packages), m.theme.Name)
		lines = append(lines, m.theme.onSurface(details, styles.MutedText))
	}

	return styles.Header.
		Width(g.width).
		Height(g.headerHeight).
		MaxHeight(g.headerHeight).
		Render(strings.Join(lines, "\n"))
}

func stageLabel(stage editor.CompileStage) string {
	switch stage.Kind {
	case editor.StageCompiling:
		if stage.Total > 0 {
			return fmt.Sprintf("COMPILING %d/%d", stage.Complete, stage.Total)
		}
		return "COMPILING"
	case editor.StageSuccess:
		return "COMPILED"
	case editor.StageFinishedWithErrors:
		return fmt.Sprintf("%d ERRORS", len(stage.Errors))
	case editor.StageFailed:
		return "FAILED"
	default:
		return "READY"
	}
}

func (m Model) renderSidebar(g geometry) string {
	if g.sidebarWidth < minPane || g.bodyH < minPane {
		return ""
	}
	styles := m.theme.Styles()
	innerW := g.sidebarWidth - 2
	innerH := g.bodyH - 2

	label := func(text string, area focusArea) string {
		if m.focus == area {
			return styles.AccentText.Bold(true).Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Title", focusTitle) + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(label("Description", focusDescription) + "\n")
	b.WriteString(m.desc.View() + "\n\n")

	pkgs := m.core.ClientRevision().Packages
	b.WriteString(label(fmt.Sprintf("Packages (%d)", len(pkgs)), focusPackages) + "\n")
	if len(pkgs) == 0 {
		b.WriteString(styles.FaintText.Render("none") + "\n")
	}
	for i, pkg := range pkgs {
		line := truncate(pkg.String(), innerW)
		if m.focus == focusPackages && i == m.packageIndex {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.core.PackagesChanged() {
		b.WriteString(styles.WarningText.Render(truncate("Recompile to apply", innerW)) + "\n")
	}

	if m.core.SearchOpen() {
		b.WriteString("\n" + label("Search", focusSearch) + "\n")
		b.WriteString(m.search.View() + "\n")
		b.WriteString(m.renderSearchResults(innerW))
	}

	if m.core.Popout() == editor.EmbedLinkOpen {
		b.WriteString("\n" + styles.AccentText.Render("Embed link") + "\n")
		if id := m.core.ClientRevision().ID; id != "" {
			b.WriteString(m.client.EmbedURL(id, false) + "\n")
		} else {
			b.WriteString(styles.FaintText.Render("Save to get an embed link.") + "\n")
		}
	}

	return styles.Pane.
		Width(innerW).
		Height(innerH).
		MaxHeight(g.bodyH).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderSearchResults(width int) string {
	styles := m.theme.Styles()
	results := m.core.SearchResults()
	if len(results) == 0 {
		if m.core.SearchValue() == "" {
			return styles.FaintText.Render("Type to search") + "\n"
		}
		return styles.FaintText.Render("No matches") + "\n"
	}

	installed := make(map[string]struct{})
	for _, pkg := range m.core.ClientRevision().Packages {
		installed[pkg.Name] = struct{}{}
	}

	var b strings.Builder
	for i, pkg := range results {
		text := truncate(pkg.String(), width-2)
		_, have := installed[pkg.Name]
		switch {
		case i == m.searchIndex:
			b.WriteString(styles.Selected.Render("> "+text) + "\n")
		case have:
			b.WriteString("  " + styles.FaintText.Render(text) + "\n")
		default:
			b.WriteString("  " + text + "\n")
		}
	}
	return b.String()
}

func (m Model) renderEditors(g geometry) string {
	var panes []string
	if g.elmH >= minPane {
		panes = append(panes, m.pane(m.elm.View(), g.editorsW, g.elmH,
			m.focus == focusElm, m.core.EditorDragging()))
	}
	if g.htmlH >= minPane {
		panes = append(panes, m.pane(m.html.View(), g.editorsW, g.htmlH,
			m.focus == focusHTML, m.core.EditorDragging()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

func (m Model) renderResult(g geometry) string {
	if g.resultW < minPane || g.bodyH < minPane {
		return ""
	}
	content := m.result.View()
	if m.help.ShowAll {
		content = m.help.FullHelpView(m.keys.FullHelp())
	}
	if notes := m.renderNotifications(g.resultW - 2); notes != "" {
		content = notes + "\n\n" + content
	}
	return m.pane(content, g.resultW, g.bodyH, false, m.core.ResultDragging())
}

// pane draws content in a bordered box of the given outer size.
func (m Model) pane(content string, width, height int, focused, dragging bool) string {
	styles := m.theme.Styles()
	style := styles.Pane
	switch {
	case dragging:
		style = styles.DraggingPane
	case focused:
		style = styles.FocusedPane
	}
	return style.
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height).
		Render(content)
}

func (m Model) renderFooter(g geometry) string {
	help := m.help
	help.Width = g.width
	help.ShowAll = false
	return m.theme.Styles().MutedText.
		Width(g.width).
		MaxHeight(footerHeight).
		Render(help.View(m.keys))
}

// notificationRows is the number of rows the notification stack takes at
// the top of the result pane: two per visible notification, one for the
// overflow line and a blank separator.
func notificationRows(m editor.Model) int {
	n := len(m.Notifications())
	if n == 0 {
		return 0
	}
	rows := 2*min(n, maxVisibleNotifications) + 1
	if n > maxVisibleNotifications {
		rows++
	}
	return rows
}

func (m Model) renderNotifications(width int) string {
	notes := m.core.Notifications()
	if len(notes) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	now := m.now()
	clip := lipgloss.NewStyle().MaxWidth(max(1, width))

	var lines []string
	for _, n := range notes[:min(len(notes), maxVisibleNotifications)] {
		title := m.theme.Badge(strings.ToUpper(n.Level.String()), m.theme.LevelColor(n.Level)) + " " +
			styles.Text.Bold(true).Render(n.Title) + " " +
			styles.FaintText.Render(age(now.Sub(n.Timestamp)))
		if n.Action == editor.ActionClearElmStuff {
			title += " " + styles.AccentText.Render("alt+c clears cache")
		}
		lines = append(lines,
			clip.Render(title),
			clip.Render(styles.MutedText.Render(firstLine(n.Message))),
		)
	}
	if extra := len(notes) - maxVisibleNotifications; extra > 0 {
		lines = append(lines, styles.FaintText.Render(fmt.Sprintf("+%d more, esc clears all", extra)))
	}
	return strings.Join(lines, "\n")
}

// setResultContent refreshes the scrollable part of the result pane.
func (m *Model) setResultContent() {
	width := max(1, m.result.Width)
	if m.showLog {
		m.result.SetContent(m.renderLog(width))
		return
	}
	m.result.SetContent(m.renderOutput(width))
}

func (m Model) renderOutput(width int) string {
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().Width(width)
	stage := m.core.CompileStage()

	var b strings.Builder
	switch stage.Kind {
	case editor.StageInitial:
		b.WriteString(styles.MutedText.Render(wrap.Render("Nothing compiled yet. Press ctrl+r to compile.")))

	case editor.StageCompiling:
		b.WriteString(styles.AccentText.Render("Compiling") + "\n")
		if stage.Total > 0 {
			b.WriteString(progressBar(stage.Complete, stage.Total, width))
		}

	case editor.StageSuccess:
		b.WriteString(styles.SuccessText.Render("Compiled successfully.") + "\n")
		if m.core.PackagesChanged() || m.core.PreviousElmCode() != m.core.StagedElmCode() {
			b.WriteString(styles.WarningText.Render(wrap.Render("The code changed since this compile.")) + "\n")
		}
		if id := m.core.ClientRevision().ID; id != "" {
			b.WriteString("\n" + styles.MutedText.Render("ctrl+l opens the preview:") + "\n")
			b.WriteString(wrap.Render(m.client.EmbedURL(id, false)))
		} else {
			b.WriteString("\n" + styles.MutedText.Render(wrap.Render("Save to preview it in the browser.")))
		}

	case editor.StageFinishedWithErrors:
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("%d compile errors", len(stage.Errors))) + "\n")
		for _, e := range stage.Errors {
			b.WriteString("\n" + renderCompileError(e, width, styles))
		}

	case editor.StageFailed:
		b.WriteString(styles.DangerText.Render("Compilation failed") + "\n\n")
		b.WriteString(wrap.Render(stage.Message))
	}
	return b.String()
}

func renderCompileError(e api.CompileError, width int, styles Styles) string {
	wrap := lipgloss.NewStyle().Width(width)
	heading := fmt.Sprintf("-- %s -- line %d, column %d", strings.ToUpper(e.Tag), e.Line, e.Column)

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(truncate(heading, width)) + "\n")
	b.WriteString(styles.Text.Render(wrap.Render(e.Overview)) + "\n")
	if e.Details != "" {
		b.WriteString(styles.MutedText.Render(wrap.Render(e.Details)) + "\n")
	}
	return b.String()
}

func (m Model) renderLog(width int) string {
	styles := m.theme.Styles()
	if len(m.logEntries) == 0 {
		return styles.FaintText.Render("The log is empty.")
	}
	clip := lipgloss.NewStyle().MaxWidth(width)

	lines := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		style := styles.Text
		switch e.Severity {
		case logtail.SeverityError:
			style = styles.DangerText
		case logtail.SeveritySuccess:
			style = styles.SuccessText
		}
		line := style.Render(e.Message)
		if !e.Time.IsZero() {
			line = styles.FaintText.Render(e.Time.Format("15:04:05")) + " " + line
		}
		lines = append(lines, clip.Render(line))
	}
	return strings.Join(lines, "\n")
}

func progressBar(complete, total, width int) string {
	label := fmt.Sprintf(" %d/%d", complete, total)
	barW := max(1, width-len(label))
	filled := min(barW, barW*complete/max(1, total))
	return strings.Repeat("█", filled) + strings.Repeat("░", barW-filled) + label
}

func age(d time.Duration) string {
	switch {
	case d < 5*time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	default:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
