package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/playpen/internal/api"
)

func testFlags() Flags {
	return Flags{
		WindowSize: Size{Width: 1200, Height: 800},
		Online:     true,
		ElmVersion: api.Version{Major: 0, Minor: 18, Patch: 0},
		Layout:     Layout{HeaderHeight: 40, SidebarWidth: 180},
	}
}

func sampleRevision(id string) api.Revision {
	return api.Revision{
		ID:         id,
		Title:      "Counter",
		ElmVersion: api.Version{Major: 0, Minor: 18, Patch: 0},
		Packages: []api.Package{
			{Name: "elm-lang/core", Version: api.Version{Major: 5, Minor: 1, Patch: 1}},
		},
		ElmCode:  "module Main exposing (main)\n\nmain = text \"hi\"\n",
		HTMLCode: "<html></html>",
	}
}

// newModel starts a new project.
func newModel(t *testing.T) Model {
	t.Helper()
	m, _ := Init(testFlags(), NewProject())
	return m
}

// loadedModel returns a model with rev loaded as both server and client.
func loadedModel(t *testing.T, rev api.Revision) Model {
	t.Helper()
	m, _ := Init(testFlags(), SpecificRevision(rev.ID))
	m, _ = Reduce(RevisionLoadCompleted{Route: m.Route(), Revision: rev}, m)
	require.Equal(t, Succeeded, m.ServerRevision().State)
	return m
}

func effectsOf[T Effect](effects []Effect) []T {
	var out []T
	for _, e := range effects {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

func notifications(effects []Effect) []Notification {
	var out []Notification
	for _, n := range effectsOf[Notify](effects) {
		out = append(out, n.Notification)
	}
	return out
}
