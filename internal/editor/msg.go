package editor

import (
	"time"

	"github.com/five82/playpen/internal/api"
)

// Msg is an event entering the reducer: a user action or the completion of
// an effect. The set is closed; only types in this package implement it.
type Msg interface {
	isMsg()
}

type RouteChanged struct{ Route Route }
type OpenDebuggerRequested struct{}

// RevisionLoadCompleted carries the result of LoadRevision or
// LoadDefaultRevision. Err is nil on success.
type RevisionLoadCompleted struct {
	Route    Route // the route the load was issued for
	Revision api.Revision
	Err      *api.Error
}

type CompileRequested struct{}
type CompileStageChanged struct{ Stage CompileStage }
type CompileForSaveStarted struct{ TotalModules int }

type ElmCodeChanged struct{ Code string }
type HTMLCodeChanged struct{ Code string }
type OnlineChanged struct{ Online bool }

type FormattingRequested struct{}
type FormattingCompleted struct {
	Code string
	Err  *api.Error
}

type RemovePackageRequested struct{ Package api.Package }

type NotificationReceived struct{ Notification Notification }
type ClearStaleNotifications struct{ Now time.Time }
type ClearAllNotifications struct{}
type ClearNotification struct{ Notification Notification }

type ResultDragStarted struct{}
type ResultDragged struct{ Position Position }
type ResultDragEnded struct{}
type EditorDragStarted struct{}
type EditorDragged struct{ Position Position }
type EditorDragEnded struct{}
type WindowSizeChanged struct{ Size Size }

type TitleChanged struct{ Title string }
type DescriptionChanged struct{ Description string }

type SearchChanged struct{ Query string }
// SearchResultsCompleted is tagged with the query it answers.
type SearchResultsCompleted struct {
	Query    string
	Packages []api.Package
	Err      *api.Error
}
type PackageSelected struct{ Package api.Package }
type ToggleSearch struct{}

type IframeJSError struct{ Message string }
type ToggleHTMLCollapse struct{}
type ToggleElmCollapse struct{}
type ReloadIframeRequested struct{}

type CreateGistRequested struct{}
type CreateGistCompleted struct {
	URL string
	Err *api.Error
}

type KeyComboPressed struct{ Combo KeyCombo }
type SaveMsg struct{ Save SaveEvent }
type ClearElmStuffRequested struct{}
type TogglePopouts struct{ Popout Popout }
type NoOp struct{}

// KeyCombo is a recognised keyboard shortcut.
type KeyCombo int

const (
	ComboCompile KeyCombo = iota
	ComboSave
	ComboFormat
	ComboSearch
)

// SaveEvent is a step of the save workflow.
type SaveEvent interface {
	isSaveEvent()
}

type SaveRequested struct{}

type SaveCompleted struct {
	Revision api.Revision
	Err      *api.Error
}

func (SaveRequested) isSaveEvent() {}
func (SaveCompleted) isSaveEvent() {}

func (RouteChanged) isMsg()            {}
func (OpenDebuggerRequested) isMsg()   {}
func (RevisionLoadCompleted) isMsg()   {}
func (CompileRequested) isMsg()        {}
func (CompileStageChanged) isMsg()     {}
func (CompileForSaveStarted) isMsg()   {}
func (ElmCodeChanged) isMsg()          {}
func (HTMLCodeChanged) isMsg()         {}
func (OnlineChanged) isMsg()           {}
func (FormattingRequested) isMsg()     {}
func (FormattingCompleted) isMsg()     {}
func (RemovePackageRequested) isMsg()  {}
func (NotificationReceived) isMsg()    {}
func (ClearStaleNotifications) isMsg() {}
func (ClearAllNotifications) isMsg()   {}
func (ClearNotification) isMsg()       {}
func (ResultDragStarted) isMsg()       {}
func (ResultDragged) isMsg()           {}
func (ResultDragEnded) isMsg()         {}
func (EditorDragStarted) isMsg()       {}
func (EditorDragged) isMsg()           {}
func (EditorDragEnded) isMsg()         {}
func (WindowSizeChanged) isMsg()       {}
func (TitleChanged) isMsg()            {}
func (DescriptionChanged) isMsg()      {}
func (SearchChanged) isMsg()           {}
func (SearchResultsCompleted) isMsg()  {}
func (PackageSelected) isMsg()         {}
func (ToggleSearch) isMsg()            {}
func (IframeJSError) isMsg()           {}
func (ToggleHTMLCollapse) isMsg()      {}
func (ToggleElmCollapse) isMsg()       {}
func (ReloadIframeRequested) isMsg()   {}
func (CreateGistRequested) isMsg()     {}
func (CreateGistCompleted) isMsg()     {}
func (KeyComboPressed) isMsg()         {}
func (SaveMsg) isMsg()                 {}
func (ClearElmStuffRequested) isMsg()  {}
func (TogglePopouts) isMsg()           {}
func (NoOp) isMsg()                    {}
