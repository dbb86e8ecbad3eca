package models

import (
	"strings"

	dErrors "muster/pkg/domain-errors"
)

// Disaster is a registered relief event that volunteers can be assigned to.
//
// Invariants:
//   - Name is non-empty
//   - ID is assigned by the store on first persist and never reused
//
// The Active flag marks whether the disaster still accepts coordination work.
// Toggling it is a management action outside this service; assignment does not
// mutate disaster state.
type Disaster struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewDisaster constructs a disaster, enforcing the non-empty name invariant.
func NewDisaster(name string, active bool) (*Disaster, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "disaster name cannot be empty")
	}
	return &Disaster{Name: name, Active: active}, nil
}
