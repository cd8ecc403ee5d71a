package app

import (
	"context"
	"time"

	"github.com/five82/playpen/internal/editor"
	"github.com/five82/playpen/internal/logtail"
	"github.com/five82/playpen/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// pinger is the part of the API client the poller needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// StartPoller launches a background goroutine that probes the API and
// reports connectivity changes through send, starting from online. Failed
// probes back off exponentially. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client pinger, interval time.Duration, online bool, send func(editor.Msg)) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)):
			}

			probe(ctx, store, client)
			if now := !store.Snapshot().IsOffline(); now != online {
				online = now
				send(editor.OnlineChanged{Online: online})
			}
		}
	}()
}

// initialProbe probes once before the UI starts. Unlike later probes, a
// single failure already counts as offline.
func initialProbe(ctx context.Context, store *state.Store, client pinger) bool {
	probe(ctx, store, client)
	return store.Snapshot().ConsecutiveFailures == 0
}

func probe(ctx context.Context, store *state.Store, client pinger) {
	err := client.Ping(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}
	store.RecordProbe(err)
	if err != nil {
		logtail.Errorf("health probe: %v", err)
	}
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
