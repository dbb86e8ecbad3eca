package commitment

import (
	"context"
	"sync"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

// InMemory is the map-backed commitment store used by tests and the
// databaseless development mode.
//
// Add rejects a commitment that overlaps an existing one for the same person
// under the store lock, mirroring the exclusion constraint the postgres store
// relies on. The service performs the same check first for a precise error;
// the store check is what holds under concurrent assignment.
type InMemory struct {
	mu       sync.RWMutex
	nextID   int64
	byPerson map[int64][]*models.Commitment
}

func NewInMemory() *InMemory {
	return &InMemory{byPerson: make(map[int64][]*models.Commitment)}
}

func (s *InMemory) Add(_ context.Context, c *models.Commitment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byPerson[c.PersonID] {
		if existing.Overlaps(c) {
			return sentinel.ErrConflict
		}
	}

	s.nextID++
	c.ID = s.nextID
	stored := *c
	s.byPerson[c.PersonID] = append(s.byPerson[c.PersonID], &stored)
	return nil
}

// ListByPerson returns the person's commitments in insertion order. Never
// returns nil.
func (s *InMemory) ListByPerson(_ context.Context, personID int64) ([]*models.Commitment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	commitments := s.byPerson[personID]
	out := make([]*models.Commitment, 0, len(commitments))
	for _, c := range commitments {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
