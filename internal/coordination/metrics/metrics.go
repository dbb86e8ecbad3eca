package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds coordination domain counters.
type Metrics struct {
	DisastersCreated    prometheus.Counter
	CommitmentsCreated  prometheus.Counter
	AssignmentsRejected *prometheus.CounterVec
}

// Rejection reason labels for AssignmentsRejected.
const (
	ReasonInvalidRange = "invalid_range"
	ReasonOverlap      = "overlap"
)

// New creates and registers the coordination metrics with the default registry.
func New() *Metrics {
	return &Metrics{
		DisastersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "muster_disasters_created_total",
			Help: "Total number of disasters registered",
		}),
		CommitmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "muster_commitments_created_total",
			Help: "Total number of volunteer commitments created",
		}),
		AssignmentsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "muster_assignments_rejected_total",
			Help: "Assignment requests rejected at validation, by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) IncrementDisastersCreated() {
	if m != nil {
		m.DisastersCreated.Inc()
	}
}

func (m *Metrics) IncrementCommitmentsCreated() {
	if m != nil {
		m.CommitmentsCreated.Inc()
	}
}

func (m *Metrics) IncrementAssignmentsRejected(reason string) {
	if m != nil {
		m.AssignmentsRejected.WithLabelValues(reason).Inc()
	}
}
