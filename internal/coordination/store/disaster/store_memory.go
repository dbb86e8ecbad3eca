package disaster

import (
	"context"
	"sync"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

// InMemory is the map-backed disaster store used by tests and the
// databaseless development mode.
type InMemory struct {
	mu        sync.RWMutex
	nextID    int64
	disasters []*models.Disaster
	byID      map[int64]*models.Disaster
}

func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[int64]*models.Disaster)}
}

// Add persists a disaster, assigning the next sequential ID when the record
// carries none. A caller-supplied ID that already exists is a conflict.
func (s *InMemory) Add(_ context.Context, d *models.Disaster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == 0 {
		s.nextID++
		d.ID = s.nextID
	} else if _, exists := s.byID[d.ID]; exists {
		return sentinel.ErrConflict
	} else if d.ID > s.nextID {
		s.nextID = d.ID
	}

	stored := *d
	s.disasters = append(s.disasters, &stored)
	s.byID[stored.ID] = &stored
	return nil
}

// List returns all disasters in insertion order. Never returns nil.
func (s *InMemory) List(_ context.Context) ([]*models.Disaster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Disaster, 0, len(s.disasters))
	for _, d := range s.disasters {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Disaster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *d
	return &cp, nil
}
