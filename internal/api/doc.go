// Package api provides a client for the playground HTTP API.
//
// # Overview
//
// This package defines the client the terminal host uses to load and save
// revisions, search the package registry, format code, publish gists, stream
// compilations and send diagnostic reports. It also owns the wire types that
// the editor core stores in its model (Revision, Package, Version, Error).
//
// # Architecture
//
//   - client.go: HTTP client, request pacing and response handling
//   - compile.go: WebSocket compile stream
//   - errors.go: the Error type and conversion helpers
//   - types.go: data structures mirroring the API schema
//
// # Client Usage
//
//	client, err := api.NewClient("https://play.example.com", 5)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	rev, err := client.LoadRevision(ctx, "abc123")
//	if err != nil {
//		apiErr := api.AsError(err)
//		log.Printf("load failed (%d): %s", apiErr.StatusCode, apiErr.Explanation)
//	}
//
// # API Endpoints
//
//   - GET  /api/revisions/default: the starting revision of a new project
//   - GET  /api/revisions/{id}: a saved revision
//   - POST /api/revisions: save a revision
//   - GET  /api/packages/search?query=: registry search
//   - POST /api/format: format source code
//   - POST /api/gists: publish a gist
//   - POST /api/errors: diagnostic report
//   - GET  /api/health: connectivity probe
//   - GET  /api/compile: WebSocket compile stream
//
// # Error Handling
//
// Responses with status >= 400 become *Error values carrying the status and
// the "explanation" field of the body (or the HTTP status text when the body
// has none). Transport and decoding failures are wrapped with fmt.Errorf;
// AsError turns those into an *Error with StatusCode 0 so callers always
// have an explanation to show.
//
// Example error messages:
//   - "api status 404: No revision with that id"
//   - "execute request: dial tcp: connection refused"
//   - "decode response: unexpected end of JSON input"
//
// # Request Pacing
//
// Every call waits on a token-bucket limiter (golang.org/x/time/rate) before
// it is sent. Search requests are issued on every keystroke; the limiter
// keeps bursts of typing from flooding the registry.
//
// # Compile Stream
//
// Compile dials ws(s)://<host>/api/compile, sends the revision as JSON and
// reads CompileEvent frames until a terminal stage (success, errors,
// failed). Cancelling the context closes the socket.
//
// # Thread Safety
//
// The Client is safe for concurrent use.
//
// # Testing Considerations
//
// Use httptest.Server to mock the API, and a websocket.Upgrader inside the
// handler for the compile stream. The Service interface lets host code be
// tested against fakes.
package api
