// Package service implements the volunteer coordination rules: disaster
// registration and the assignment of volunteers to disasters, including the
// rule that a volunteer may not hold two overlapping commitments.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"muster/internal/audit"
	coordmetrics "muster/internal/coordination/metrics"
	"muster/internal/coordination/models"
	dErrors "muster/pkg/domain-errors"
	"muster/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// DisasterStore is the disaster side of the data-access collaborator.
type DisasterStore interface {
	Add(ctx context.Context, d *models.Disaster) error
	List(ctx context.Context) ([]*models.Disaster, error)
	FindByID(ctx context.Context, id int64) (*models.Disaster, error)
}

// CommitmentStore is the commitment side of the data-access collaborator.
// Add must reject a commitment overlapping an existing one for the same
// person with sentinel.ErrConflict; that guarantee is what holds under
// concurrent assignment requests.
type CommitmentStore interface {
	Add(ctx context.Context, c *models.Commitment) error
	ListByPerson(ctx context.Context, personID int64) ([]*models.Commitment, error)
}

// AuditEmitter receives audit events for administrative actions.
type AuditEmitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates disaster registration and volunteer assignment.
type Service struct {
	disasters   DisasterStore
	commitments CommitmentStore
	logger      *slog.Logger
	metrics     *coordmetrics.Metrics
	audit       AuditEmitter
}

type serviceConfig struct {
	logger  *slog.Logger
	metrics *coordmetrics.Metrics
	audit   AuditEmitter
}

// Option configures optional service collaborators.
type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = logger }
}

func WithMetrics(m *coordmetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

func WithAuditEmitter(emitter AuditEmitter) Option {
	return func(cfg *serviceConfig) { cfg.audit = emitter }
}

// New constructs the service. Both stores are required; audit, metrics and
// logging are optional.
func New(disasters DisasterStore, commitments CommitmentStore, opts ...Option) (*Service, error) {
	if disasters == nil {
		return nil, errors.New("disaster store is required")
	}
	if commitments == nil {
		return nil, errors.New("commitment store is required")
	}

	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		disasters:   disasters,
		commitments: commitments,
		logger:      cfg.logger,
		metrics:     cfg.metrics,
		audit:       cfg.audit,
	}, nil
}

// AssignToVolunteer validates a proposed assignment and, when legal, persists
// and returns the commitment. Validation fully precedes the single write:
//  1. the date range must not be inverted,
//  2. the volunteer must hold no commitment overlapping [start, end],
//     inclusive on both ends. Overlap is scoped per person; different
//     volunteers may cover the same dates freely.
func (s *Service) AssignToVolunteer(ctx context.Context, disasterID, personID int64, start, end time.Time) (*models.Commitment, error) {
	proposed, err := models.NewCommitment(disasterID, personID, start, end)
	if err != nil {
		s.metrics.IncrementAssignmentsRejected(coordmetrics.ReasonInvalidRange)
		return nil, err
	}

	existing, err := s.commitments.ListByPerson(ctx, personID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load existing commitments")
	}
	for _, c := range existing {
		if c.Overlaps(proposed) {
			s.metrics.IncrementAssignmentsRejected(coordmetrics.ReasonOverlap)
			return nil, dErrors.New(dErrors.CodeConflict, "volunteer already has an overlapping commitment")
		}
	}

	if err := s.commitments.Add(ctx, proposed); err != nil {
		// A concurrent assignment can slip past the check above; the store
		// constraint reports it as a conflict, same as a validation-time
		// overlap.
		if errors.Is(err, sentinel.ErrConflict) {
			s.metrics.IncrementAssignmentsRejected(coordmetrics.ReasonOverlap)
			return nil, dErrors.New(dErrors.CodeConflict, "volunteer already has an overlapping commitment")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store commitment")
	}

	s.metrics.IncrementCommitmentsCreated()
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionVolunteerAssigned,
		Subject: fmt.Sprintf("person:%d", personID),
		Detail: fmt.Sprintf("disaster:%d %s..%s", disasterID,
			proposed.StartDate.Format(time.DateOnly), proposed.EndDate.Format(time.DateOnly)),
	})
	return proposed, nil
}

// CreateDisaster registers a new disaster, preserving the supplied fields
// unchanged. The store assigns the ID.
func (s *Service) CreateDisaster(ctx context.Context, d *models.Disaster) error {
	if d == nil {
		return dErrors.New(dErrors.CodeBadRequest, "disaster is required")
	}
	if _, err := models.NewDisaster(d.Name, d.Active); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "disaster name is required")
	}

	if err := s.disasters.Add(ctx, d); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "disaster already exists")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store disaster")
	}

	s.metrics.IncrementDisastersCreated()
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionDisasterCreated,
		Subject: fmt.Sprintf("disaster:%d", d.ID),
		Detail:  d.Name,
	})
	return nil
}

// ListDisasters returns every known disaster. An empty store yields an empty
// slice, never nil.
func (s *Service) ListDisasters(ctx context.Context) ([]*models.Disaster, error) {
	disasters, err := s.disasters.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list disasters")
	}
	if disasters == nil {
		disasters = []*models.Disaster{}
	}
	return disasters, nil
}

// ListActiveDisasters returns the subset of disasters with the active flag set.
func (s *Service) ListActiveDisasters(ctx context.Context) ([]*models.Disaster, error) {
	disasters, err := s.ListDisasters(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*models.Disaster, 0, len(disasters))
	for _, d := range disasters {
		if d.Active {
			active = append(active, d)
		}
	}
	return active, nil
}

// GetDisaster returns the disaster with the given ID, or a not-found error
// wrapping sentinel.ErrNotFound when no such disaster exists.
func (s *Service) GetDisaster(ctx context.Context, id int64) (*models.Disaster, error) {
	d, err := s.disasters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "disaster not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find disaster")
	}
	return d, nil
}

// emitAudit records the event without failing the operation; a saturated
// audit pipeline must not reject a valid assignment.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"action", event.Action,
			"subject", event.Subject,
			"error", err,
		)
	}
}
