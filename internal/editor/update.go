package editor

import "github.com/five82/playpen/internal/api"

// Reduce applies msg to m and returns the next model with the effects the
// host should perform. It never blocks, never panics on a valid Msg and
// treats unknown messages as no-ops.
func Reduce(msg Msg, m Model) (Model, []Effect) {
	switch msg := msg.(type) {
	case RouteChanged:
		return m.onRouteChanged(msg.Route)

	case OpenDebuggerRequested:
		return m, []Effect{OpenDebugger{RevisionID: m.clientRevision.ID}}

	case RevisionLoadCompleted:
		return m.loadCompleted(msg)

	case CompileRequested:
		return m.requestCompile()

	case CompileStageChanged:
		return m.changeStage(msg.Stage)

	case CompileForSaveStarted:
		return m.compileForSaveStarted(msg.TotalModules)

	case ElmCodeChanged:
		return m.setStagedElm(msg.Code), nil

	case HTMLCodeChanged:
		return m.setStagedHTML(msg.Code), nil

	case OnlineChanged:
		m.online = msg.Online
		if msg.Online {
			return m, []Effect{notify(LevelSuccess, "You're Online", "Connection restored. Compiling and saving are available again.")}
		}
		return m, []Effect{notify(LevelError, "You're Offline", "The connection was lost. Compiling and saving won't work until it comes back.")}

	case FormattingRequested:
		return m.requestFormat()

	case FormattingCompleted:
		return m.completeFormat(msg)

	case RemovePackageRequested:
		return m.removePackage(msg.Package), nil

	case NotificationReceived:
		return m.receive(msg.Notification)

	case ClearStaleNotifications:
		return m.expireStale(msg.Now), nil

	case ClearAllNotifications:
		return m.clearAll(), nil

	case ClearNotification:
		return m.dismiss(msg.Notification), nil

	case ResultDragStarted:
		return m.startResultDrag(), nil

	case ResultDragged:
		return m.dragResult(msg.Position), nil

	case ResultDragEnded:
		return m.endResultDrag(), nil

	case EditorDragStarted:
		return m.startEditorDrag(), nil

	case EditorDragged:
		return m.dragEditor(msg.Position), nil

	case EditorDragEnded:
		return m.endEditorDrag(), nil

	case WindowSizeChanged:
		return m.resize(msg.Size), nil

	case TitleChanged:
		return m.updateClientRevision(func(rev api.Revision) api.Revision {
			rev.Title = msg.Title
			return rev
		}), nil

	case DescriptionChanged:
		return m.updateClientRevision(func(rev api.Revision) api.Revision {
			rev.Description = msg.Description
			return rev
		}), nil

	case SearchChanged:
		return m.changeQuery(msg.Query)

	case SearchResultsCompleted:
		return m.completeSearch(msg), nil

	case PackageSelected:
		return m.selectPackage(msg.Package), nil

	case ToggleSearch:
		return m.toggleSearch()

	case IframeJSError:
		return m, []Effect{notify(LevelError, "JavaScript Error", msg.Message)}

	case ToggleHTMLCollapse:
		if m.collapse == JustElmOpen {
			m.collapse = BothOpen
		} else {
			m.collapse = JustElmOpen
		}
		return m, nil

	case ToggleElmCollapse:
		if m.collapse == JustHTMLOpen {
			m.collapse = BothOpen
		} else {
			m.collapse = JustHTMLOpen
		}
		return m, nil

	case ReloadIframeRequested:
		return m, []Effect{ReloadIframe{}}

	case CreateGistRequested:
		return m.requestGist()

	case CreateGistCompleted:
		return m.completeGist(msg)

	case KeyComboPressed:
		return Reduce(comboMsg(msg.Combo), m)

	case SaveMsg:
		return m.updateSave(msg.Save)

	case ClearElmStuffRequested:
		return m, []Effect{ClearElmStuff{}}

	case TogglePopouts:
		if m.popout == msg.Popout {
			m.popout = AllClosed
		} else {
			m.popout = msg.Popout
		}
		return m, nil

	case NoOp:
		return m, nil

	default:
		return m, nil
	}
}

func comboMsg(combo KeyCombo) Msg {
	switch combo {
	case ComboCompile:
		return CompileRequested{}
	case ComboSave:
		return SaveMsg{Save: SaveRequested{}}
	case ComboFormat:
		return FormattingRequested{}
	case ComboSearch:
		return ToggleSearch{}
	default:
		return NoOp{}
	}
}
