// Package store holds the current signal snapshot and the active filter
// model. The snapshot is replaced wholesale on every refresh; readers
// always observe either the previous snapshot or the new one, never a mix.
package store

import (
	"sync"
	"time"

	"github.com/rashed-commits/uae-market-intel/models"
)

// Mode records where the current snapshot came from.
type Mode string

const (
	// ModeEmpty is the initial state before any refresh has completed.
	// It is distinct from a live snapshot that happens to be empty.
	ModeEmpty Mode = "empty"
	// ModeLive means the snapshot came from a successful feed fetch.
	ModeLive Mode = "live"
	// ModeFallback means the feed was unreachable and the snapshot is
	// the embedded seed dataset.
	ModeFallback Mode = "fallback"
)

// Store owns the signal snapshot. The refresh controller is the only
// writer; handlers read through Snapshot.
type Store struct {
	mu        sync.RWMutex
	signals   []models.Signal
	mode      Mode
	updatedAt time.Time
}

func New() *Store {
	return &Store{mode: ModeEmpty}
}

// Replace installs a new snapshot. The previous snapshot is discarded
// entirely; fallback and live records are never merged.
func (s *Store) Replace(signals []models.Signal, mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals = signals
	s.mode = mode
	s.updatedAt = time.Now()
}

// Snapshot returns the current signals, their source mode, and when they
// were installed. The returned slice must not be mutated by callers.
func (s *Store) Snapshot() ([]models.Signal, Mode, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signals, s.mode, s.updatedAt
}
