package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
)

// Compile streams a compilation of rev over the compile socket. onEvent is
// called for every frame, including the terminal one, which is also returned.
func (c *Client) Compile(ctx context.Context, rev Revision, onEvent func(CompileEvent)) (CompileEvent, error) {
	if c == nil {
		return CompileEvent{}, fmt.Errorf("client is nil")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return CompileEvent{}, fmt.Errorf("wait for rate limiter: %w", err)
	}

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.socketURL("/api/compile"), header)
	if err != nil {
		if resp != nil && resp.StatusCode >= 400 {
			defer func() { _ = resp.Body.Close() }()
			return CompileEvent{}, decodeError(resp)
		}
		return CompileEvent{}, fmt.Errorf("dial compile socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := conn.WriteJSON(rev); err != nil {
		return CompileEvent{}, fmt.Errorf("send compile request: %w", err)
	}

	for {
		var event CompileEvent
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil {
				return CompileEvent{}, ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) || errors.Is(err, websocket.ErrCloseSent) {
				return CompileEvent{}, &Error{StatusCode: http.StatusBadGateway, Explanation: "The compiler closed the connection before finishing."}
			}
			return CompileEvent{}, fmt.Errorf("read compile event: %w", err)
		}
		if onEvent != nil {
			onEvent(event)
		}
		if event.Terminal() {
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return event, nil
		}
	}
}

func (c *Client) socketURL(path string) string {
	u := *c.baseURL
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.ResolveReference(&url.URL{Path: path}).String()
}
