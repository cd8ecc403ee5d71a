package editor

import (
	"time"

	"github.com/five82/playpen/internal/api"
)

// Effect is a side effect the reducer asks the host to perform. Results, if
// any, come back as a later Msg.
type Effect interface {
	isEffect()
}

// LoadDefaultRevision answers with RevisionLoadCompleted.
type LoadDefaultRevision struct{}

// LoadRevision answers with RevisionLoadCompleted.
type LoadRevision struct{ ID string }

// SearchPackages answers with SearchResultsCompleted tagged with Query.
type SearchPackages struct{ Query string }

// Compile streams CompileStageChanged messages.
type Compile struct{ Revision api.Revision }

// FormatCode answers with FormattingCompleted.
type FormatCode struct {
	ElmVersion api.Version
	Code       string
}

// CreateGist answers with CreateGistCompleted.
type CreateGist struct{ Revision api.Revision }

// Save compiles for save (reporting CompileForSaveStarted), stores the
// revision and answers with SaveMsg{SaveCompleted}.
type Save struct{ Revision api.Revision }

// Notify asks the host to timestamp a notification and deliver it back as
// NotificationReceived.
type Notify struct{ Notification Notification }

// ScheduleExpiry fires ClearStaleNotifications once, After from now.
type ScheduleExpiry struct{ After time.Duration }

type OpenWindow struct{ URL string }

type OpenDebugger struct{ RevisionID string }

type ReloadIframe struct{}

// ClearElmStuff wipes cached compiler artifacts.
type ClearElmStuff struct{}

type Focus struct{ ElementID string }

// ModifyURL rewrites the location; the host answers with RouteChanged.
type ModifyURL struct{ Route Route }

// ReportError sends a diagnostic report for a server-side fault.
type ReportError struct{ Report api.ErrorReport }

// PathChanged is an opaque signal for telemetry collaborators.
type PathChanged struct{ Path string }

func (LoadDefaultRevision) isEffect() {}
func (LoadRevision) isEffect()        {}
func (SearchPackages) isEffect()      {}
func (Compile) isEffect()             {}
func (FormatCode) isEffect()          {}
func (CreateGist) isEffect()          {}
func (Save) isEffect()                {}
func (Notify) isEffect()              {}
func (ScheduleExpiry) isEffect()      {}
func (OpenWindow) isEffect()          {}
func (OpenDebugger) isEffect()        {}
func (ReloadIframe) isEffect()        {}
func (ClearElmStuff) isEffect()       {}
func (Focus) isEffect()               {}
func (ModifyURL) isEffect()           {}
func (ReportError) isEffect()         {}
func (PathChanged) isEffect()         {}

// Element ids used with Focus.
const (
	SearchInputID = "search-input"
	ElmEditorID   = "elm-editor"
	HTMLEditorID  = "html-editor"
)
