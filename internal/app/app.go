package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
	"github.com/five82/playpen/internal/prefs"
	"github.com/five82/playpen/internal/state"
	"github.com/five82/playpen/internal/ui"
)

// Options configure the playpen application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/playpen/prefs.toml
	PollEvery  int    // seconds; zero uses default
	Route      editor.Route
}

const inboxSize = 64

// Run boots the playpen TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.APIURL, cfg.RequestsPerSecond)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	online := initialProbe(ctx, store, client)

	inbox := make(chan editor.Msg, inboxSize)
	StartPoller(ctx, store, client, interval, online, func(msg editor.Msg) {
		select {
		case inbox <- msg:
		case <-ctx.Done():
		}
	})

	log.Printf("playpen starting: api=%s route=%s", cfg.APIURL, opts.Route.Path())

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Route:     opts.Route,
		Online:    online,
		Inbox:     inbox,
	}
	runErr := ui.Run(uiOpts)

	if err := saveLayout(opts.PrefsPath, store.Snapshot()); err != nil {
		logtail.Errorf("save prefs: %v", err)
	}
	return runErr
}

// openLog routes the standard logger to path so it does not corrupt the
// terminal.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// saveLayout persists the split fractions and collapse state of the last
// committed model. The theme is re-read so a change saved by the UI is kept.
func saveLayout(path string, snap state.Snapshot) error {
	if !snap.HasModel {
		return nil
	}
	current, _ := prefs.Load(path)
	return prefs.Save(path, layoutPrefs(current, snap.Model))
}

func layoutPrefs(p prefs.Prefs, m editor.Model) prefs.Prefs {
	p.EditorSplit = m.EditorSplit()
	p.ResultSplit = m.ResultSplit()
	p.Collapse = m.Collapse().String()
	return p
}
