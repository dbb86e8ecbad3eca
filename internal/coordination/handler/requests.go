package handler

import (
	"time"

	dErrors "muster/pkg/domain-errors"
)

// CreateDisasterRequest registers a new disaster.
type CreateDisasterRequest struct {
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

// AssignVolunteerRequest assigns a volunteer to a disaster for a date range.
// Dates use the YYYY-MM-DD wire format. PersonID zero is a valid volunteer
// identifier, so only its sign is validated.
type AssignVolunteerRequest struct {
	DisasterID int64  `json:"disaster_id" validate:"required"`
	PersonID   int64  `json:"person_id" validate:"gte=0"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

// Dates parses the wire dates. Range ordering is the service's concern; this
// only rejects malformed values.
func (r *AssignVolunteerRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, dErrors.New(dErrors.CodeBadRequest, "start_date must be YYYY-MM-DD")
	}
	end, err = time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, dErrors.New(dErrors.CodeBadRequest, "end_date must be YYYY-MM-DD")
	}
	return start, end, nil
}
