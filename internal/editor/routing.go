package editor

import (
	"fmt"

	"github.com/five82/playpen/internal/api"
)

// onRouteChanged resets or fetches whatever the new route needs. Every
// route change also emits PathChanged.
func (m Model) onRouteChanged(route Route) (Model, []Effect) {
	m.route = route
	effects := []Effect{PathChanged{Path: route.Path()}}

	switch route.Kind {
	case RouteNewProject:
		m = m.resetToNew()
		effects = append(effects, LoadDefaultRevision{})
	case RouteSpecificRevision:
		if m.clientRevision.ID == route.ID {
			break
		}
		m.serverRevision = RevisionStatus{State: Loading}
		m.compileStage = InitialStage()
		effects = append(effects, LoadRevision{ID: route.ID})
	default:
		effects = append(effects, ModifyURL{Route: NewProject()})
	}
	return m, effects
}

// loadCompleted handles RevisionLoadCompleted. A result for a route the user
// has already left is dropped. A missing revision redirects to a new project
// instead of showing an error, unless the missing revision was the default
// one, which would redirect forever.
func (m Model) loadCompleted(msg RevisionLoadCompleted) (Model, []Effect) {
	if msg.Route != m.route {
		return m, nil
	}
	if msg.Err == nil {
		m = m.loaded(msg.Revision)
		return m, []Effect{notify(LevelSuccess, "Revision Loaded", loadedMessage(msg.Revision))}
	}

	if msg.Err.NotFound() && m.route.Kind != RouteNewProject {
		m.serverRevision = RevisionStatus{State: Failed, Err: msg.Err}
		return m, []Effect{ModifyURL{Route: NewProject()}}
	}

	m.serverRevision = RevisionStatus{State: Failed, Err: msg.Err}
	return m, m.failure("load", "Failed to Load Revision", msg.Err)
}

func loadedMessage(rev api.Revision) string {
	if rev.ID == "" {
		return "Started a new project."
	}
	if rev.Title != "" {
		return fmt.Sprintf("Loaded %q (revision %s).", rev.Title, rev.ID)
	}
	return fmt.Sprintf("Loaded revision %s.", rev.ID)
}
