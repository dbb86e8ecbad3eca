package commitment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

type CommitmentStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *CommitmentStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestCommitmentStoreSuite(t *testing.T) {
	suite.Run(t, new(CommitmentStoreSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *CommitmentStoreSuite) newCommitment(personID int64, start, end time.Time) *models.Commitment {
	c, err := models.NewCommitment(2, personID, start, end)
	s.Require().NoError(err)
	return c
}

// TestAddAndList verifies append and per-person listing.
func (s *CommitmentStoreSuite) TestAddAndList() {
	s.Run("assigns sequential IDs", func() {
		c := s.newCommitment(5, day(2013, time.January, 2), day(2013, time.January, 3))
		s.Require().NoError(s.store.Add(s.ctx, c))
		s.Equal(int64(1), c.ID)
	})

	s.Run("lists only the requested person", func() {
		s.Require().NoError(s.store.Add(s.ctx,
			s.newCommitment(7, day(2013, time.June, 10), day(2013, time.June, 15))))
		s.Require().NoError(s.store.Add(s.ctx,
			s.newCommitment(8, day(2013, time.June, 10), day(2013, time.June, 15))))

		mine, err := s.store.ListByPerson(s.ctx, 7)
		s.Require().NoError(err)
		s.Require().Len(mine, 1)
		s.Equal(int64(7), mine[0].PersonID)
	})

	s.Run("empty person yields empty non-nil slice", func() {
		none, err := s.store.ListByPerson(s.ctx, 404)
		s.Require().NoError(err)
		s.NotNil(none)
		s.Empty(none)
	})
}

// TestOverlapConstraint verifies the store-level guard that mirrors the
// postgres exclusion constraint.
func (s *CommitmentStoreSuite) TestOverlapConstraint() {
	s.Require().NoError(s.store.Add(s.ctx,
		s.newCommitment(5, day(2013, time.June, 10), day(2013, time.June, 15))))

	s.Run("rejects overlap for the same person", func() {
		err := s.store.Add(s.ctx,
			s.newCommitment(5, day(2013, time.June, 11), day(2013, time.June, 20)))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("allows identical dates for another person", func() {
		err := s.store.Add(s.ctx,
			s.newCommitment(6, day(2013, time.June, 10), day(2013, time.June, 15)))
		s.Require().NoError(err)
	})

	s.Run("allows adjacent non-overlapping range", func() {
		err := s.store.Add(s.ctx,
			s.newCommitment(5, day(2013, time.June, 16), day(2013, time.June, 20)))
		s.Require().NoError(err)
	})
}

// TestIsolation verifies callers cannot mutate stored state through returned
// pointers.
func (s *CommitmentStoreSuite) TestIsolation() {
	c := s.newCommitment(5, day(2013, time.June, 10), day(2013, time.June, 15))
	s.Require().NoError(s.store.Add(s.ctx, c))

	listed, err := s.store.ListByPerson(s.ctx, 5)
	s.Require().NoError(err)
	listed[0].EndDate = day(2013, time.December, 31)

	again, err := s.store.ListByPerson(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(day(2013, time.June, 15), again[0].EndDate)
}
