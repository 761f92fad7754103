package repository

import (
	"sync"
	"time"

	"catanboard/internal/models"
)

// Snapshot is a thread-safe in-memory holder for the last loaded dataset.
// The web server and bots re-rank from it on every sort toggle without
// fetching the sources again.
type Snapshot struct {
	mu       sync.RWMutex
	players  []models.AggregatedPlayer
	loadedAt time.Time
	loaded   bool
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Get returns a copy of the stored players and whether a load has happened.
func (s *Snapshot) Get() ([]models.AggregatedPlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	out := make([]models.AggregatedPlayer, len(s.players))
	copy(out, s.players)
	return out, true
}

// Set replaces the stored dataset
func (s *Snapshot) Set(players []models.AggregatedPlayer, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make([]models.AggregatedPlayer, len(players))
	copy(s.players, players)
	s.loadedAt = at
	s.loaded = true
}

// LoadedAt returns when the dataset was last replaced (zero before the first load).
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Clear drops the stored dataset
func (s *Snapshot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.loadedAt = time.Time{}
	s.loaded = false
}

// Size returns the number of stored players
func (s *Snapshot) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
