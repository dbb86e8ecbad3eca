package models

import (
	"time"

	dErrors "muster/pkg/domain-errors"
)

// Commitment assigns one volunteer to one disaster for an inclusive date
// interval. Commitments are append-only: the service never mutates or deletes
// them once stored.
//
// Invariants:
//   - StartDate <= EndDate
//   - for a given PersonID, no two commitments overlap (enforced by the
//     service at validation time and by the postgres store's exclusion
//     constraint under concurrency)
type Commitment struct {
	ID         int64     `json:"id"`
	PersonID   int64     `json:"person_id"`
	DisasterID int64     `json:"disaster_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// NewCommitment constructs a commitment with dates normalized to UTC midnight.
// Returns a validation error when the range is inverted.
func NewCommitment(disasterID, personID int64, start, end time.Time) (*Commitment, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if start.After(end) {
		return nil, dErrors.New(dErrors.CodeValidation, "commitment start date must not be after end date")
	}
	return &Commitment{
		PersonID:   personID,
		DisasterID: disasterID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// Overlaps reports whether two commitments intersect, inclusive on both ends:
// [10th..15th] overlaps [15th..20th].
func (c *Commitment) Overlaps(other *Commitment) bool {
	return !c.StartDate.After(other.EndDate) && !c.EndDate.Before(other.StartDate)
}

// DateOnly truncates a timestamp to its calendar date in UTC. All commitment
// date comparisons happen at day granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
