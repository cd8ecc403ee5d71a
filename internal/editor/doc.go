// Package editor is the state machine behind the playground editor.
//
// # Overview
//
// Everything the editor knows lives in one Model value. Every event, whether
// a keystroke, a drag, a finished network call or a fired timer, enters as
// a Msg and goes through Reduce, which returns the next Model plus a list of
// Effects for the host to perform. The package performs no I/O and never
// blocks; it does not know whether it is hosted by a terminal, a browser or
// a test.
//
//	           ┌──────────────────────────────┐
//	Msg ──────>│ Reduce(msg, model)           │──────> Model'
//	           └──────────────┬───────────────┘
//	                          │
//	                          └──> []Effect ──> host ──> (later) Msg
//
// # Components
//
//   - notifications.go: the notification queue with its 15 second expiry
//   - drag.go: the editor and result split trackers
//   - revision.go: server/client revisions and the staged editor buffers
//   - search.go: package search with the stale-response guard
//   - pipeline.go: compile, format, gist and save coordination
//   - routing.go: route changes and revision loading
//   - update.go: Reduce, the single entry point
//
// # Immutability
//
// Model is passed and returned by value. Handlers that change a slice build
// a new one, so a Model handed to a renderer stays valid after the next
// Reduce. Fields are unexported; readers use the accessor methods, which
// return copies of slices.
//
// # Ordering and Staleness
//
// Messages are processed strictly in arrival order, but nothing is assumed
// about the order in which effects complete. Search results carry the query
// they answer and are dropped when it no longer matches the search box.
// Notification expiry checks are one-shot and idempotent: filtering again
// with a later time can only remove more.
//
// # Errors
//
// API failures arrive as *api.Error inside completion messages. Each becomes
// exactly one Error notification; 5xx faults also emit a ReportError effect.
// A 404 while loading a revision redirects to a new project instead of
// notifying. Stale search results are silently discarded.
//
// # Hosting
//
// A host must:
//
//   - deliver messages one at a time, in order, to Reduce
//   - perform every returned Effect and feed results back as messages
//   - stamp Notify effects with the current time and send NotificationReceived
//   - answer ScheduleExpiry with ClearStaleNotifications after the delay
//   - answer ModifyURL with RouteChanged for the new route
//
// internal/ui is the terminal host.
package editor
