package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"muster/internal/coordination/models"
	"muster/internal/platform/middleware"
	"muster/internal/transport/http/shared"
	dErrors "muster/pkg/domain-errors"
)

// Service defines the coordination operations the handler exposes.
type Service interface {
	AssignToVolunteer(ctx context.Context, disasterID, personID int64, start, end time.Time) (*models.Commitment, error)
	CreateDisaster(ctx context.Context, d *models.Disaster) error
	ListDisasters(ctx context.Context) ([]*models.Disaster, error)
	ListActiveDisasters(ctx context.Context) ([]*models.Disaster, error)
	GetDisaster(ctx context.Context, id int64) (*models.Disaster, error)
}

// Handler handles disaster and commitment endpoints.
type Handler struct {
	logger       *slog.Logger
	coordination Service
	validate     *validator.Validate
}

// New creates a coordination Handler.
func New(coordination Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		coordination: coordination,
		validate:     validator.New(),
	}
}

// Register registers the coordination routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/disasters", h.handleCreateDisaster)
	r.Get("/disasters", h.handleListDisasters)
	r.Get("/disasters/{disasterID}", h.handleGetDisaster)
	r.Post("/commitments", h.handleAssignVolunteer)
}

func (h *Handler) handleCreateDisaster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDisasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "name is required"))
		return
	}

	d := &models.Disaster{Name: req.Name, Active: req.Active}
	if err := h.coordination.CreateDisaster(ctx, d); err != nil {
		h.logger.WarnContext(ctx, "create disaster rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) handleListDisasters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		disasters []*models.Disaster
		err       error
	)
	if r.URL.Query().Get("active") == "true" {
		disasters, err = h.coordination.ListActiveDisasters(ctx)
	} else {
		disasters, err = h.coordination.ListDisasters(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list disasters failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, disasters)
}

func (h *Handler) handleGetDisaster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "disasterID"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "disaster id must be an integer"))
		return
	}

	d, err := h.coordination.GetDisaster(ctx, id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) handleAssignVolunteer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssignVolunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "disaster_id, start_date and end_date are required"))
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	c, err := h.coordination.AssignToVolunteer(ctx, req.DisasterID, req.PersonID, start, end)
	if err != nil {
		h.logger.WarnContext(ctx, "assignment rejected",
			"request_id", middleware.GetRequestID(ctx),
			"person_id", req.PersonID,
			"disaster_id", req.DisasterID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toCommitmentResponse(c))
}
