package audit

import "time"

// Actions recorded by the coordination service.
const (
	ActionDisasterCreated   = "disaster.created"
	ActionVolunteerAssigned = "volunteer.assigned"
)

// Event is emitted from domain logic to capture key administrative actions.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}
