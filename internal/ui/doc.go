// Package ui hosts the playground editor in the terminal.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program wrapped around editor.Reduce. The editor
// package owns every state transition; this package only translates:
//
//   - terminal events (keys, mouse, resize) into editor messages
//   - editor effects into tea.Cmds that call the API, the browser or the
//     file system and answer with editor messages
//   - the editor model into widgets and a lipgloss layout
//
// # Package Structure
//
//   - ui.go: Options and Run
//   - model.go: the Bubble Tea model, widget sync and focus handling
//   - update.go: Update, dispatch and the key and mouse mapping
//   - effects.go: effect execution (API calls, compile streaming, browser)
//   - view.go: rendering of the header, sidebar, editors and result pane
//   - layout.go: screen geometry, splitter hit tests and drag positions
//   - keys.go: key bindings
//   - theme.go: color themes and styles
//
// # Event Flow
//
//  1. Run builds the model, which runs editor.Init for the starting route
//     and performs the effects it returns.
//  2. Init starts the resulting commands and begins draining the inbox
//     channel.
//  3. Every editor message goes through dispatch: Reduce, sync the widgets,
//     publish the model to state.Store, then execute the effects.
//  4. Streaming work (compile progress, the save workflow) and connectivity
//     changes from the poller arrive on the inbox, one message at a time and
//     in the order they were produced.
//
// # Layout
//
// The header spans the top rows, the sidebar holds project metadata and
// package search, and the remaining width is split between the editors and
// the result pane. The footer row shows key help and is excluded from the
// window size given to the editor, so dragging a splitter to the bottom of
// the body maps to the same fraction the editor computes.
//
// # Key Bindings
//
//   - ctrl+r (or ctrl+enter): Compile
//   - ctrl+s: Save
//   - ctrl+f (or ctrl+shift+f): Format
//   - ctrl+k: Package search
//   - ctrl+g: Create gist
//   - ctrl+b / ctrl+l: Open the debugger / preview in the browser
//   - alt+e / alt+h: Collapse the Elm / HTML editor
//   - alt+arrows: Resize panes
//   - f2: Toggle compile output and the log tail
//   - tab: Next pane
//   - esc: Close search or popouts, then clear notifications
//   - ctrl+q or ctrl+c: Exit
package ui
