package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"muster/internal/audit"
	"muster/internal/transport/http/shared"
	dErrors "muster/pkg/domain-errors"
)

const defaultLimit = 100

// Trail reads back persisted audit events.
type Trail interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler exposes the audit trail for administrators.
type Handler struct {
	logger *slog.Logger
	trail  Trail
}

func New(trail Trail, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, trail: trail}
}

// Register registers the audit routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/events", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	events, err := h.trail.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list audit events failed", "error", err.Error())
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, events)
}
