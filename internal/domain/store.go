package domain

import "time"

// Store is the full snapshot of wins, cached pull requests and the sync watermark.
// A Store is owned by a single caller for the duration of one invocation.
type Store struct {
	LastPRSync *time.Time
	PRs        []PREntry
	Wins       []WinEntry
}

// NewStore returns an empty store with no watermark
func NewStore() *Store {
	return &Store{
		PRs:  []PREntry{},
		Wins: []WinEntry{},
	}
}

// AdvanceWatermark moves LastPRSync forward to t. The watermark never moves back.
func (s *Store) AdvanceWatermark(t time.Time) {
	if s.LastPRSync != nil && !t.After(*s.LastPRSync) {
		return
	}
	t = t.UTC()
	s.LastPRSync = &t
}
