package sessions

import (
	"sync"

	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
	"pricing-app/internal/domain/selection"

	"github.com/google/uuid"
)

// Store keeps live selection sessions in memory only. Nothing survives a
// restart; a fresh load always starts from the defaults.
type Store struct {
	catalog *plans.Catalog
	engine  *pricing.Engine

	mu       sync.Mutex
	sessions map[string]*selection.Controller
}

// Snapshot is a session's state and derived summary, taken under the store
// lock so a transition is observed atomically.
type Snapshot struct {
	Tier    plans.Tier
	Seats   int
	Summary selection.Summary
}

func NewStore(catalog *plans.Catalog, engine *pricing.Engine) *Store {
	return &Store{
		catalog:  catalog,
		engine:   engine,
		sessions: make(map[string]*selection.Controller),
	}
}

func snapshot(ctrl *selection.Controller) Snapshot {
	return Snapshot{
		Tier:    ctrl.Tier(),
		Seats:   ctrl.Seats(),
		Summary: ctrl.Summary(),
	}
}

// Create opens a session at the defaults and returns its id.
func (s *Store) Create() (string, Snapshot) {
	id := uuid.NewString()
	ctrl := selection.NewController(s.catalog, s.engine)

	s.mu.Lock()
	s.sessions[id] = ctrl
	snap := snapshot(ctrl)
	s.mu.Unlock()

	return id, snap
}

// Update applies fn to a session's controller and snapshots the result, all
// under the store lock.
func (s *Store) Update(id string, fn func(*selection.Controller)) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctrl, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, false
	}
	if fn != nil {
		fn(ctrl)
	}
	return snapshot(ctrl), true
}

// Get snapshots a session without changing it.
func (s *Store) Get(id string) (Snapshot, bool) {
	return s.Update(id, nil)
}

// Delete tears a session down.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
