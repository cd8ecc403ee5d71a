package ui

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
)

// reportTimeout bounds fire-and-forget error reports.
const reportTimeout = 10 * time.Second

func init() {
	// The browser launcher would otherwise write into the alternate screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// hostNotice is a notification raised by the host itself. Update stamps it
// and hands it to the editor like any other notification.
type hostNotice struct {
	level   editor.Level
	title   string
	message string
	action  editor.Action
}

func hostFailure(title string, err error) tea.Msg {
	logtail.Errorf("%s: %v", title, err)
	return hostNotice{level: editor.LevelError, title: title, message: err.Error()}
}

// openURL is swapped out in tests.
var openURL = browser.OpenURL

// perform turns an editor effect into a command. Effects on host state
// (focus and location) apply immediately.
func (m *Model) perform(e editor.Effect) tea.Cmd {
	ctx, client, send := m.ctx, m.client, m.send

	switch e := e.(type) {
	case editor.LoadDefaultRevision:
		return func() tea.Msg {
			rev, err := client.LoadDefaultRevision(ctx)
			return editor.RevisionLoadCompleted{Route: editor.NewProject(), Revision: rev, Err: api.AsError(err)}
		}

	case editor.LoadRevision:
		return func() tea.Msg {
			rev, err := client.LoadRevision(ctx, e.ID)
			return editor.RevisionLoadCompleted{Route: editor.SpecificRevision(e.ID), Revision: rev, Err: api.AsError(err)}
		}

	case editor.SearchPackages:
		return func() tea.Msg {
			pkgs, err := client.SearchPackages(ctx, e.Query)
			return editor.SearchResultsCompleted{Query: e.Query, Packages: pkgs, Err: api.AsError(err)}
		}

	case editor.FormatCode:
		return func() tea.Msg {
			code, err := client.FormatCode(ctx, e.ElmVersion, e.Code)
			return editor.FormattingCompleted{Code: code, Err: api.AsError(err)}
		}

	case editor.CreateGist:
		return func() tea.Msg {
			url, err := client.CreateGist(ctx, e.Revision)
			return editor.CreateGistCompleted{URL: url, Err: api.AsError(err)}
		}

	case editor.Compile:
		return func() tea.Msg {
			compile(ctx, client, e.Revision, send)
			return nil
		}

	case editor.Save:
		return func() tea.Msg {
			save(ctx, client, e.Revision, send)
			return nil
		}

	case editor.Notify:
		n := e.Notification
		n.Timestamp = m.now()
		return func() tea.Msg { return editor.NotificationReceived{Notification: n} }

	case editor.ScheduleExpiry:
		return tea.Tick(e.After, func(t time.Time) tea.Msg {
			return editor.ClearStaleNotifications{Now: t}
		})

	case editor.OpenWindow:
		return openWindow(e.URL)

	case editor.OpenDebugger:
		return m.openEmbed(e.RevisionID, true)

	case editor.ReloadIframe:
		return m.openEmbed(m.core.ClientRevision().ID, false)

	case editor.ClearElmStuff:
		dir := m.cfg.CacheDir
		return func() tea.Msg {
			if err := config.CheckCacheDir(dir); err != nil {
				return hostFailure("Could Not Clear Compiler Cache", err)
			}
			if err := os.RemoveAll(dir); err != nil {
				return hostFailure("Could Not Clear Compiler Cache", err)
			}
			logtail.Successf("cleared compiler cache at %s", dir)
			return hostNotice{
				level:   editor.LevelSuccess,
				title:   "Compiler Cache Cleared",
				message: "The next compile starts from a clean slate.",
			}
		}

	case editor.Focus:
		switch e.ElementID {
		case editor.SearchInputID:
			return m.applyFocus(focusSearch)
		case editor.ElmEditorID:
			return m.applyFocus(focusElm)
		case editor.HTMLEditorID:
			return m.applyFocus(focusHTML)
		}
		return nil

	case editor.ModifyURL:
		m.location = e.Route.Path()
		route := e.Route
		return func() tea.Msg { return editor.RouteChanged{Route: route} }

	case editor.ReportError:
		report := e.Report
		logtail.Errorf("error report: %s (status %d): %s", report.Context, report.StatusCode, report.Explanation)
		return func() tea.Msg {
			rctx, cancel := context.WithTimeout(ctx, reportTimeout)
			defer cancel()
			if err := client.ReportError(rctx, report); err != nil {
				logtail.Errorf("send error report: %v", err)
			}
			return nil
		}

	case editor.PathChanged:
		m.location = e.Path
		log.Printf("path changed to %s", e.Path)
		return nil
	}

	log.Printf("unhandled effect %T", e)
	return nil
}

// compile streams every frame of the compile socket through the inbox so
// stages arrive in order.
func compile(ctx context.Context, client api.Service, rev api.Revision, send func(editor.Msg)) {
	_, err := client.Compile(ctx, rev, func(ev api.CompileEvent) {
		send(editor.CompileStageChanged{Stage: editor.StageFromEvent(ev)})
	})
	if err != nil && ctx.Err() == nil {
		logtail.Errorf("compile: %v", err)
		send(editor.CompileStageChanged{Stage: editor.FailedStage(api.AsError(err).Explanation)})
	}
}

// save compiles rev and stores it only when the compile succeeds.
func save(ctx context.Context, client api.Service, rev api.Revision, send func(editor.Msg)) {
	done := func(saved api.Revision, err *api.Error) {
		send(editor.SaveMsg{Save: editor.SaveCompleted{Revision: saved, Err: err}})
	}

	started := false
	final, err := client.Compile(ctx, rev, func(ev api.CompileEvent) {
		if !started && ev.Stage == api.StageCompiling {
			started = true
			send(editor.CompileForSaveStarted{TotalModules: ev.Total})
		}
	})
	if err != nil {
		done(api.Revision{}, api.AsError(err))
		return
	}
	if final.Stage != api.StageSuccess {
		done(api.Revision{}, &api.Error{
			StatusCode:  http.StatusUnprocessableEntity,
			Explanation: "Fix the compile errors before saving.",
		})
		return
	}

	saved, err := client.SaveRevision(ctx, rev)
	if err != nil {
		done(api.Revision{}, api.AsError(err))
		return
	}
	logtail.Successf("saved revision %s", saved.ID)
	done(saved, nil)
}

func openWindow(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			logtail.Errorf("open %s: %v", url, err)
			return hostNotice{
				level:   editor.LevelInfo,
				title:   "Open This Link",
				message: url,
			}
		}
		return nil
	}
}

// openEmbed opens the compiled revision in the browser. Unsaved work has no
// embed page yet.
func (m *Model) openEmbed(id string, debug bool) tea.Cmd {
	if id == "" {
		return func() tea.Msg {
			return hostNotice{
				level:   editor.LevelInfo,
				title:   "Save First",
				message: "Save your project to open it in the browser.",
			}
		}
	}
	return openWindow(m.client.EmbedURL(id, debug))
}
