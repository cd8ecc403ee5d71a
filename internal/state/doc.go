// Package state provides thread-safe state sharing for playpen.
//
// # Overview
//
// The editor core runs inside the Bubble Tea update loop, which is single
// threaded. A few things live outside that loop and still need to see the
// current editor state: the connectivity poller, the shutdown path that
// persists layout preferences, and tests. Store is the coordination point.
//
// # Architecture
//
//	UI loop:                        Poller:
//	┌──────────────────┐           ┌──────────────────┐
//	│ editor.Reduce()  │           │ client.Ping()    │
//	│      ↓           │           │      ↓           │
//	│ store.Publish()  │──(mutex)──│ store.RecordProbe│
//	└──────────────────┘           └──────────────────┘
//	                  ↘           ↙
//	                store.Snapshot()
//
// # Core Types
//
// Store:
//   - Uses sync.RWMutex for concurrent access
//   - Publish: single writer (the UI loop)
//   - RecordProbe: single writer (the poller)
//   - Snapshot: any number of readers
//
// Snapshot:
//   - The last committed editor.Model plus probe health
//   - Returned by value
//
// # Copying
//
// editor.Model is an immutable value: Reduce never writes to slices reachable
// from a model it was given, and the accessors return copies. Publish can
// therefore store the model as is. The last probe error is wrapped on read so
// callers never share the poller's error value.
//
// # Zero Value
//
// The zero Store is ready to use. Snapshot() on a fresh store reports
// HasModel=false and zero failures.
package state
