package editor

import (
	"strings"
	"time"

	"github.com/five82/playpen/internal/api"
)

// RouteKind enumerates the navigable locations.
type RouteKind int

const (
	RouteNotFound RouteKind = iota
	RouteNewProject
	RouteSpecificRevision
)

// Route is a navigated location. ID is set only for RouteSpecificRevision.
type Route struct {
	Kind RouteKind
	ID   string
}

// NotFound, NewProject and SpecificRevision build routes.
func NotFound() Route                  { return Route{Kind: RouteNotFound} }
func NewProject() Route                { return Route{Kind: RouteNewProject} }
func SpecificRevision(id string) Route { return Route{Kind: RouteSpecificRevision, ID: id} }

// ParseRoute maps a location path to a route: "/" and "/new" are a new
// project, "/<id>" is a revision, anything else is not found.
func ParseRoute(path string) Route {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	switch {
	case trimmed == "" || trimmed == "new":
		return NewProject()
	case !strings.ContainsAny(trimmed, "/?# "):
		return SpecificRevision(trimmed)
	default:
		return NotFound()
	}
}

// Path is the inverse of ParseRoute.
func (r Route) Path() string {
	switch r.Kind {
	case RouteNewProject:
		return "/new"
	case RouteSpecificRevision:
		return "/" + r.ID
	default:
		return "/not-found"
	}
}

// RemoteState enumerates the phases of a remote fetch.
type RemoteState int

const (
	NotAsked RemoteState = iota
	Loading
	Succeeded
	Failed
)

// RevisionStatus tracks the last known persisted revision.
type RevisionStatus struct {
	State    RemoteState
	Revision api.Revision
	Err      *api.Error
}

// Loaded returns the revision when State is Succeeded.
func (s RevisionStatus) Loaded() (api.Revision, bool) {
	if s.State != Succeeded {
		return api.Revision{}, false
	}
	return s.Revision, true
}

// StageKind enumerates compile stages.
type StageKind int

const (
	StageInitial StageKind = iota
	StageCompiling
	StageSuccess
	StageFinishedWithErrors
	StageFailed
)

// CompileStage is the progress of the current compilation.
type CompileStage struct {
	Kind     StageKind
	Total    int
	Complete int
	Errors   []api.CompileError
	Message  string
}

func InitialStage() CompileStage { return CompileStage{Kind: StageInitial} }
func CompilingStage(total, complete int) CompileStage {
	return CompileStage{Kind: StageCompiling, Total: total, Complete: complete}
}
func SuccessStage() CompileStage { return CompileStage{Kind: StageSuccess} }
func ErrorsStage(errs []api.CompileError) CompileStage {
	return CompileStage{Kind: StageFinishedWithErrors, Errors: errs}
}
func FailedStage(message string) CompileStage {
	return CompileStage{Kind: StageFailed, Message: message}
}

// StageFromEvent converts a compile stream frame.
func StageFromEvent(e api.CompileEvent) CompileStage {
	switch e.Stage {
	case api.StageCompiling:
		return CompilingStage(e.Total, e.Complete)
	case api.StageSuccess:
		return SuccessStage()
	case api.StageErrors:
		return ErrorsStage(e.Errors)
	case api.StageFailed:
		return FailedStage(e.Message)
	default:
		return FailedStage("Unknown compile stage " + e.Stage)
	}
}

// Level is a notification severity.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	default:
		return "error"
	}
}

// Action is a recovery action attached to a notification.
type Action int

const (
	ActionNone Action = iota
	ActionClearElmStuff
)

// Notification is a transient user-facing message.
type Notification struct {
	Level     Level
	Title     string
	Message   string
	Action    Action
	Timestamp time.Time
}

// Equal reports value equality.
func (n Notification) Equal(o Notification) bool {
	return n.Level == o.Level &&
		n.Title == o.Title &&
		n.Message == o.Message &&
		n.Action == o.Action &&
		n.Timestamp.Equal(o.Timestamp)
}

// Collapse describes which editors are visible.
type Collapse int

const (
	BothOpen Collapse = iota
	JustElmOpen
	JustHTMLOpen
)

func (c Collapse) String() string {
	switch c {
	case JustElmOpen:
		return "elm"
	case JustHTMLOpen:
		return "html"
	default:
		return "both"
	}
}

// ParseCollapse is the inverse of Collapse.String; unknown values are BothOpen.
func ParseCollapse(value string) Collapse {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "elm":
		return JustElmOpen
	case "html":
		return JustHTMLOpen
	default:
		return BothOpen
	}
}

// Popout names the open popout panel.
type Popout int

const (
	AllClosed Popout = iota
	EmbedLinkOpen
)

// Size is a window size.
type Size struct {
	Width  int
	Height int
}

// Position is a pointer position.
type Position struct {
	X int
	Y int
}

// Layout holds the fixed chrome offsets the drag math subtracts.
type Layout struct {
	HeaderHeight int
	SidebarWidth int
}
