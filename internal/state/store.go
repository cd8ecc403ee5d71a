package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/playpen/internal/editor"
)

// Snapshot represents the latest data available outside the UI loop.
type Snapshot struct {
	Model               editor.Model
	HasModel            bool
	Published           time.Time
	Reductions          int
	LastProbe           time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed health probes
}

// IsOffline returns true when the API has been unreachable for multiple probes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent access to the snapshot. The UI loop publishes
// every committed model; the connectivity poller records probe outcomes.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Publish records the model the UI just committed.
func (s *Store) Publish(m editor.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Model = m
	s.snapshot.HasModel = true
	s.snapshot.Published = time.Now()
	s.snapshot.Reductions++
}

// RecordProbe records a health probe. When err is non-nil the failure counter
// grows; a success resets it.
func (s *Store) RecordProbe(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastProbe = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot. editor.Model is an
// immutable value, so only the error needs copying.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
