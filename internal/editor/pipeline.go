package editor

import (
	"fmt"

	"github.com/five82/playpen/internal/api"
)

// LargeProjectModules is the module count at which a save-time compile
// warns that it may be slow.
const LargeProjectModules = 5

const clearCacheHint = "\n\nIf this keeps happening, clearing the cached compiler artifacts usually fixes it."

// requestCompile compiles the working copy. The stage itself only changes
// when CompileStageChanged comes back.
func (m Model) requestCompile() (Model, []Effect) {
	m.previousElmCode = m.stagedElmCode
	m.packagesChanged = false
	return m, []Effect{Compile{Revision: m.Working()}}
}

func (m Model) changeStage(stage CompileStage) (Model, []Effect) {
	m.compileStage = stage
	if stage.Kind != StageFailed {
		return m, nil
	}
	return m, []Effect{Notify{Notification: Notification{
		Level:   LevelError,
		Title:   "Compilation Failed",
		Message: stage.Message + clearCacheHint,
		Action:  ActionClearElmStuff,
	}}}
}

func (m Model) compileForSaveStarted(total int) (Model, []Effect) {
	if total < LargeProjectModules {
		return m, nil
	}
	return m, []Effect{notify(LevelInfo,
		"Compiling For Save",
		fmt.Sprintf("Your project has %d modules, so this may take a while.", total))}
}

func (m Model) requestFormat() (Model, []Effect) {
	return m, []Effect{FormatCode{ElmVersion: m.clientRevision.ElmVersion, Code: m.stagedElmCode}}
}

// completeFormat installs formatted code. previousElmCode follows only when
// it still matched the editor, so an edit made while formatting was in
// flight is not mistaken for compiled code.
func (m Model) completeFormat(msg FormattingCompleted) (Model, []Effect) {
	if msg.Err != nil {
		return m, m.failure("format", "Formatting Your Code Failed", msg.Err)
	}
	if m.previousElmCode == m.stagedElmCode {
		m.previousElmCode = msg.Code
	}
	m.stagedElmCode = msg.Code
	return m, nil
}

func (m Model) requestGist() (Model, []Effect) {
	if m.creatingGist {
		return m, nil
	}
	m.creatingGist = true
	return m, []Effect{CreateGist{Revision: m.Working()}}
}

func (m Model) completeGist(msg CreateGistCompleted) (Model, []Effect) {
	m.creatingGist = false
	if msg.Err != nil {
		return m, m.failure("gist", "Could Not Create Gist", msg.Err)
	}
	return m, []Effect{OpenWindow{URL: msg.URL}}
}

func (m Model) updateSave(event SaveEvent) (Model, []Effect) {
	switch event := event.(type) {
	case SaveRequested:
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, []Effect{Save{Revision: m.Working()}}
	case SaveCompleted:
		m.saving = false
		if event.Err != nil {
			return m, m.failure("save", "Saving Your Project Failed", event.Err)
		}
		m = m.loaded(event.Revision)
		m.route = SpecificRevision(event.Revision.ID)
		return m, []Effect{
			ModifyURL{Route: m.route},
			notify(LevelSuccess, "Saved", fmt.Sprintf("Your project was saved as revision %s.", event.Revision.ID)),
		}
	default:
		return m, nil
	}
}

// failure turns an API error into exactly one error notification, plus a
// diagnostic report when the service itself failed.
func (m Model) failure(context, title string, err *api.Error) []Effect {
	effects := []Effect{notify(LevelError, title, err.Explanation)}
	if err.ServerFault() {
		effects = append(effects, ReportError{Report: api.ErrorReport{
			Context:     context,
			StatusCode:  err.StatusCode,
			Explanation: err.Explanation,
			RevisionID:  m.clientRevision.ID,
		}})
	}
	return effects
}
