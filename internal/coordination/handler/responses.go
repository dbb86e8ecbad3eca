package handler

import (
	"time"

	"muster/internal/coordination/models"
)

// CommitmentResponse is the wire form of a commitment; dates are rendered
// date-only to match the request format.
type CommitmentResponse struct {
	ID         int64  `json:"id"`
	PersonID   int64  `json:"person_id"`
	DisasterID int64  `json:"disaster_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func toCommitmentResponse(c *models.Commitment) CommitmentResponse {
	return CommitmentResponse{
		ID:         c.ID,
		PersonID:   c.PersonID,
		DisasterID: c.DisasterID,
		StartDate:  c.StartDate.Format(time.DateOnly),
		EndDate:    c.EndDate.Format(time.DateOnly),
	}
}
