package disaster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

type DisasterStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *DisasterStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestDisasterStoreSuite(t *testing.T) {
	suite.Run(t, new(DisasterStoreSuite))
}

// TestAddAndLookups verifies the store creates, lists and retrieves disasters.
func (s *DisasterStoreSuite) TestAddAndLookups() {
	s.Run("assigns sequential IDs", func() {
		first := &models.Disaster{Name: "Flood relief", Active: true}
		second := &models.Disaster{Name: "Earthquake response", Active: false}
		s.Require().NoError(s.store.Add(s.ctx, first))
		s.Require().NoError(s.store.Add(s.ctx, second))

		s.Equal(int64(1), first.ID)
		s.Equal(int64(2), second.ID)
	})

	s.Run("finds disaster by ID", func() {
		d := &models.Disaster{Name: "Wildfire evacuation", Active: true}
		s.Require().NoError(s.store.Add(s.ctx, d))

		found, err := s.store.FindByID(s.ctx, d.ID)
		s.Require().NoError(err)
		s.Equal(d.Name, found.Name)
		s.True(found.Active)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, 9999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestList verifies list semantics on empty and populated stores.
func (s *DisasterStoreSuite) TestList() {
	s.Run("empty store yields empty non-nil slice", func() {
		all, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.NotNil(all)
		s.Empty(all)
	})

	s.Run("returns all disasters in insertion order", func() {
		names := []string{"Flood relief", "Earthquake response", "Cyclone shelter"}
		for _, name := range names {
			s.Require().NoError(s.store.Add(s.ctx, &models.Disaster{Name: name, Active: true}))
		}

		all, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, len(names))
		for i, d := range all {
			s.Equal(names[i], d.Name)
		}
	})
}

// TestIsolation verifies callers cannot mutate stored state through returned
// pointers.
func (s *DisasterStoreSuite) TestIsolation() {
	d := &models.Disaster{Name: "Flood relief", Active: true}
	s.Require().NoError(s.store.Add(s.ctx, d))

	found, err := s.store.FindByID(s.ctx, d.ID)
	s.Require().NoError(err)
	found.Name = "tampered"

	again, err := s.store.FindByID(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal("Flood relief", again.Name)
}

// TestExplicitIDs verifies caller-supplied IDs are honored and collisions
// rejected.
func (s *DisasterStoreSuite) TestExplicitIDs() {
	d := &models.Disaster{ID: 42, Name: "Flood relief", Active: true}
	s.Require().NoError(s.store.Add(s.ctx, d))

	dup := &models.Disaster{ID: 42, Name: "Duplicate", Active: false}
	s.Require().ErrorIs(s.store.Add(s.ctx, dup), sentinel.ErrConflict)

	next := &models.Disaster{Name: "After explicit", Active: true}
	s.Require().NoError(s.store.Add(s.ctx, next))
	s.Equal(int64(43), next.ID)
}
