package editor

import "github.com/five82/playpen/internal/api"

// updateClientRevision applies fn to a private copy of the working revision.
func (m Model) updateClientRevision(fn func(api.Revision) api.Revision) Model {
	m.clientRevision = fn(m.clientRevision.Clone())
	return m
}

// resetStagedCode makes the editors show the client revision.
func (m Model) resetStagedCode() Model {
	m.stagedElmCode = m.clientRevision.ElmCode
	m.stagedHTMLCode = m.clientRevision.HTMLCode
	m.previousElmCode = m.clientRevision.ElmCode
	return m
}

// resetToNew replaces the working copy with a blank revision and marks the
// server's default as loading.
func (m Model) resetToNew() Model {
	m.clientRevision = BlankRevision(m.defaultVersion)
	m.serverRevision = RevisionStatus{State: Loading}
	m.compileStage = InitialStage()
	m.packagesChanged = false
	return m.resetStagedCode()
}

func (m Model) setStagedElm(code string) Model {
	m.stagedElmCode = code
	return m
}

func (m Model) setStagedHTML(code string) Model {
	m.stagedHTMLCode = code
	return m
}

// loaded installs a revision that came back from the server.
func (m Model) loaded(rev api.Revision) Model {
	m.serverRevision = RevisionStatus{State: Succeeded, Revision: rev.Clone()}
	m.clientRevision = rev.Clone()
	m.packagesChanged = false
	return m.resetStagedCode()
}
