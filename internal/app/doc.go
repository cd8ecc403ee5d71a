// Package app provides the orchestration layer for playpen.
//
// # Overview
//
// This package wires together configuration, preferences, the playground API
// client, shared state, the connectivity poller and the terminal UI. It is
// the composition root where all dependencies are initialized and connected.
//
// # Startup
//
//  1. Load configuration from ~/.config/playpen/config.toml
//  2. Route the standard logger to the configured log file
//  3. Load layout preferences (missing or broken files fall back to defaults)
//  4. Build the rate-limited API client
//  5. Probe the API once so the editor starts with a known online state
//  6. Launch the connectivity poller
//  7. Start the TUI and block until the user quits or the context cancels
//  8. Persist split fractions and collapse state from the last snapshot
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()     Read config.toml
//	       ├─────> prefs.Load()      Read prefs.toml
//	       ├─────> api.NewClient()   HTTP + WebSocket client
//	       ├─────> probe()           Initial health check
//	       ├─────> StartPoller()     Background connectivity probes
//	       ├─────> ui.Run()          Bubble Tea program (blocks)
//	       └─────> saveLayout()      Write prefs.toml
//
//	Poller loop:
//	┌──────────────────────────────────────────┐
//	│ wait calculateBackoff(failures, interval) │
//	│ client.Ping() → store.RecordProbe()       │
//	│ online changed? → inbox <- OnlineChanged  │
//	└──────────────────────────────────────────┘
//
// The inbox is the channel the UI drains into the editor reducer. The poller
// only reports transitions; the store's IsOffline rule (two failures in a
// row) keeps a single dropped probe from flapping the banner.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file
//   - Log file cannot be created
//   - Invalid API URL
//
// Recoverable errors (logged):
//   - Failed health probes
//   - Failure to save preferences at exit
package app
