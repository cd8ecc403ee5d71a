package ui

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/prefs"
	"github.com/five82/playpen/internal/state"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// fakeService is an in-memory api.Service.
type fakeService struct {
	mu sync.Mutex

	defaultRev api.Revision
	revisions  map[string]api.Revision
	loadErr    error

	nextID  string
	saved   []api.Revision
	saveErr error

	packages  []api.Package
	searched  []string
	formatted string
	gistURL   string

	events     []api.CompileEvent
	compileErr error
	compiled   []api.Revision

	reports []api.ErrorReport
}

func newFakeService() *fakeService {
	return &fakeService{
		defaultRev: api.Revision{
			Title:      "Hello",
			ElmVersion: api.Version{Major: 0, Minor: 18},
			ElmCode:    "module Main exposing (main)\n",
			HTMLCode:   "<html></html>",
		},
		revisions: map[string]api.Revision{},
		nextID:    "r1",
		gistURL:   "https://gist.example.com/1",
		events: []api.CompileEvent{
			{Stage: api.StageCompiling, Total: 2},
			{Stage: api.StageCompiling, Total: 2, Complete: 1},
			{Stage: api.StageSuccess},
		},
	}
}

func (f *fakeService) LoadDefaultRevision(context.Context) (api.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return api.Revision{}, f.loadErr
	}
	return f.defaultRev.Clone(), nil
}

func (f *fakeService) LoadRevision(_ context.Context, id string) (api.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return api.Revision{}, f.loadErr
	}
	rev, ok := f.revisions[id]
	if !ok {
		return api.Revision{}, &api.Error{StatusCode: 404, Explanation: "not found"}
	}
	return rev.Clone(), nil
}

func (f *fakeService) SaveRevision(_ context.Context, rev api.Revision) (api.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return api.Revision{}, f.saveErr
	}
	rev = rev.Clone()
	rev.ID = f.nextID
	f.saved = append(f.saved, rev)
	f.revisions[rev.ID] = rev
	return rev, nil
}

func (f *fakeService) SearchPackages(_ context.Context, query string) ([]api.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, query)
	return append([]api.Package(nil), f.packages...), nil
}

func (f *fakeService) FormatCode(_ context.Context, _ api.Version, code string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.formatted == "" {
		return code, nil
	}
	return f.formatted, nil
}

func (f *fakeService) CreateGist(context.Context, api.Revision) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gistURL, nil
}

func (f *fakeService) Compile(_ context.Context, rev api.Revision, onEvent func(api.CompileEvent)) (api.CompileEvent, error) {
	f.mu.Lock()
	f.compiled = append(f.compiled, rev.Clone())
	events, err := f.events, f.compileErr
	f.mu.Unlock()

	if err != nil {
		return api.CompileEvent{}, err
	}
	var last api.CompileEvent
	for _, ev := range events {
		onEvent(ev)
		last = ev
	}
	return last, nil
}

func (f *fakeService) ReportError(_ context.Context, report api.ErrorReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeService) Ping(context.Context) error { return nil }

func (f *fakeService) EmbedURL(id string, debug bool) string {
	if debug {
		return "http://play.test/embed/" + id + "?debug=1"
	}
	return "http://play.test/embed/" + id
}

func (f *fakeService) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

// newTestModel builds a sized model for route without running its startup
// commands.
func newTestModel(t *testing.T, svc *fakeService, route editor.Route) Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "playpen.log")
	cfg.CacheDir = filepath.Join(t.TempDir(), "elm-stuff")

	m := newModel(Options{
		Context:   ctx,
		Client:    svc,
		Store:     &state.Store{},
		Config:    cfg,
		Prefs:     prefs.Defaults(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Route:     route,
		Online:    true,
		Inbox:     make(chan editor.Msg, 64),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

// boot builds a model and runs its initial effects to completion.
func boot(t *testing.T, svc *fakeService, route editor.Route) Model {
	t.Helper()
	m := newTestModel(t, svc, route)
	return settle(t, m, m.startup...)
}

// settle runs cmds, feeds their messages and anything that reaches the
// inbox back into Update, and repeats until nothing is left. Commands that
// do not answer promptly (ticks, cursor blink) are dropped.
func settle(t *testing.T, m Model, cmds ...tea.Cmd) Model {
	t.Helper()
	var queue []tea.Msg
	for _, cmd := range cmds {
		queue = append(queue, runCmd(cmd)...)
	}
	queue = append(queue, drainInbox(m)...)

	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatalf("settle did not converge")
		}
		msg := queue[0]
		queue = queue[1:]

		next, cmd := m.Update(msg)
		m = next.(Model)
		queue = append(queue, runCmd(cmd)...)
		queue = append(queue, drainInbox(m)...)
	}
	return m
}

// feed sends msg to Update and settles.
func feed(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, runCmd(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// drainInbox returns queued inbox messages as plain editor messages so the
// test never starts a blocking inbox reader.
func drainInbox(m Model) []tea.Msg {
	var out []tea.Msg
	for {
		select {
		case msg := <-m.inbox:
			out = append(out, msg)
		default:
			return out
		}
	}
}

// collect records messages sent by the streaming helpers.
type collect struct {
	mu   sync.Mutex
	msgs []editor.Msg
}

func (c *collect) send(msg editor.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

// captureLog points the standard logger at a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(log.LstdFlags)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}
