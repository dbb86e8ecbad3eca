// Package httpapi assembles the public router. It wires middleware and
// mounts the per-domain handlers; business logic stays in the services.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	audithandler "muster/internal/audit/handler"
	coordhandler "muster/internal/coordination/handler"
	"muster/internal/platform/metrics"
	"muster/internal/platform/middleware"
)

// Deps carries everything the router needs. Metrics may be nil in tests.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Coordination *coordhandler.Handler
	Audit        *audithandler.Handler
}

// New builds the chi router with the standard middleware chain.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		deps.Coordination.Register(api)
		if deps.Audit != nil {
			deps.Audit.Register(api)
		}
	})

	return r
}
