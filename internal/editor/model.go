package editor

import (
	"github.com/five82/playpen/internal/api"
)

const (
	minSplit     = 0.2
	maxSplit     = 0.8
	defaultSplit = 0.5
)

// Flags are the values the host provides at startup.
type Flags struct {
	WindowSize  Size
	Online      bool
	ElmVersion  api.Version
	Layout      Layout
	EditorSplit float64
	ResultSplit float64
	Collapse    Collapse
}

// Model is the complete editor state. It is a value: Reduce returns a new
// Model and never writes to slices reachable from the one it was given.
// Fields are read through accessors.
type Model struct {
	route Route

	serverRevision  RevisionStatus
	clientRevision  api.Revision
	stagedElmCode   string
	stagedHTMLCode  string
	previousElmCode string
	defaultVersion  api.Version

	compileStage CompileStage
	saving       bool
	creatingGist bool

	notifications []Notification

	searchValue     string
	searchResults   []api.Package
	searchOpen      bool
	packagesChanged bool

	online bool

	editorDragging bool
	resultDragging bool
	editorSplit    float64
	resultSplit    float64
	windowSize     Size
	layout         Layout

	collapse Collapse
	popout   Popout
}

// Init builds the blank model from flags and runs the routing reactor once
// against the starting route.
func Init(flags Flags, route Route) (Model, []Effect) {
	m := Model{
		route:          NotFound(),
		defaultVersion: flags.ElmVersion,
		online:         flags.Online,
		editorSplit:    splitOrDefault(flags.EditorSplit),
		resultSplit:    splitOrDefault(flags.ResultSplit),
		windowSize:     flags.WindowSize,
		layout:         flags.Layout,
		collapse:       flags.Collapse,
	}
	m = m.resetToNew()
	m.serverRevision = RevisionStatus{State: NotAsked}
	return m.onRouteChanged(route)
}

func splitOrDefault(v float64) float64 {
	if v == 0 {
		return defaultSplit
	}
	return clampSplit(v)
}

// BlankRevision is the revision a new project starts from before the
// server's default arrives.
func BlankRevision(version api.Version) api.Revision {
	return api.Revision{
		ElmVersion: version,
		Packages: []api.Package{
			{Name: "elm-lang/core", Version: api.Version{Major: 5, Minor: 1, Patch: 1}},
			{Name: "elm-lang/html", Version: api.Version{Major: 2, Minor: 0, Patch: 0}},
		},
		ElmCode:  blankElmCode,
		HTMLCode: blankHTMLCode,
	}
}

const blankElmCode = `module Main exposing (main)

import Html exposing (Html, text)


main : Html msg
main =
    text "Hello, World!"
`

const blankHTMLCode = `<html>
<head>
  <style>
    /* styles for the result page */
  </style>
</head>
<body>
  <script>
    var app = Elm.Main.fullscreen()
  </script>
</body>
</html>
`

func (m Model) Route() Route                   { return m.route }
func (m Model) ServerRevision() RevisionStatus { return m.serverRevision }
func (m Model) ClientRevision() api.Revision   { return m.clientRevision.Clone() }
func (m Model) StagedElmCode() string          { return m.stagedElmCode }
func (m Model) StagedHTMLCode() string         { return m.stagedHTMLCode }
func (m Model) PreviousElmCode() string        { return m.previousElmCode }
func (m Model) CompileStage() CompileStage     { return m.compileStage }
func (m Model) Saving() bool                   { return m.saving }
func (m Model) CreatingGist() bool             { return m.creatingGist }
func (m Model) SearchValue() string            { return m.searchValue }
func (m Model) SearchOpen() bool               { return m.searchOpen }
func (m Model) PackagesChanged() bool          { return m.packagesChanged }
func (m Model) Online() bool                   { return m.online }
func (m Model) EditorDragging() bool           { return m.editorDragging }
func (m Model) ResultDragging() bool           { return m.resultDragging }
func (m Model) EditorSplit() float64           { return m.editorSplit }
func (m Model) ResultSplit() float64           { return m.resultSplit }
func (m Model) WindowSize() Size               { return m.windowSize }
func (m Model) Layout() Layout                 { return m.layout }
func (m Model) Collapse() Collapse             { return m.collapse }
func (m Model) Popout() Popout                 { return m.popout }

// Notifications returns the queue, most recent first.
func (m Model) Notifications() []Notification {
	return append([]Notification(nil), m.notifications...)
}

// SearchResults returns the latest resolved search.
func (m Model) SearchResults() []api.Package {
	return append([]api.Package(nil), m.searchResults...)
}

// Working returns the client revision with the staged code merged in: what
// a compile, save or gist operates on.
func (m Model) Working() api.Revision {
	rev := m.clientRevision.Clone()
	rev.ElmCode = m.stagedElmCode
	rev.HTMLCode = m.stagedHTMLCode
	return rev
}

// Unsaved reports whether the working copy differs from the last persisted
// revision.
func (m Model) Unsaved() bool {
	server, ok := m.serverRevision.Loaded()
	if !ok {
		return true
	}
	working := m.Working()
	if server.Title != working.Title ||
		server.Description != working.Description ||
		server.ElmCode != working.ElmCode ||
		server.HTMLCode != working.HTMLCode ||
		len(server.Packages) != len(working.Packages) {
		return true
	}
	for i := range server.Packages {
		if server.Packages[i] != working.Packages[i] {
			return true
		}
	}
	return false
}
