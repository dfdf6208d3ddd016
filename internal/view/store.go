package view

import (
	"sync/atomic"

	"github.com/hamed0406/statusboard/internal/domain"
)

// Store holds the current snapshot. Publish replaces it wholesale, so
// a reader always gets one fully consistent cycle, never a mix.
type Store struct {
	cur atomic.Value // domain.Snapshot
}

func NewStore() *Store { return &Store{} }

// Publish installs snap as the current snapshot.
func (s *Store) Publish(snap domain.Snapshot) {
	s.cur.Store(snap)
}

// Get returns the current snapshot. ok is false before the first
// publish, when the page should show its loading view.
func (s *Store) Get() (domain.Snapshot, bool) {
	if v := s.cur.Load(); v != nil {
		return v.(domain.Snapshot), true
	}
	return domain.Snapshot{Phase: domain.PhaseLoading, Loading: true}, false
}
