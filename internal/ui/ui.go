package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/playpen/internal/api"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/prefs"
	"github.com/five82/playpen/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Client    api.Service
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Route     editor.Route
	Online    bool
	// Inbox receives messages produced outside the update loop: compile
	// progress, save steps and connectivity changes.
	Inbox chan editor.Msg
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Client == nil {
		return fmt.Errorf("ui requires an api client")
	}
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	program := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(opts.Context),
	)
	if _, err := program.Run(); err != nil && opts.Context.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
