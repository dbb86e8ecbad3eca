// Command server runs the muster coordination API. main wires dependencies
// and the process lifecycle; business logic lives in the internal services.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"muster/internal/audit"
	audithandler "muster/internal/audit/handler"
	coordhandler "muster/internal/coordination/handler"
	coordmetrics "muster/internal/coordination/metrics"
	"muster/internal/coordination/service"
	"muster/internal/coordination/store/commitment"
	"muster/internal/coordination/store/disaster"
	httpapi "muster/internal/http"
	"muster/internal/platform/config"
	"muster/internal/platform/httpserver"
	"muster/internal/platform/logger"
	"muster/internal/platform/metrics"
	"muster/internal/platform/postgres"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		disasterStore   service.DisasterStore
		commitmentStore service.CommitmentStore
		auditStore      audit.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		disasterStore = disaster.NewPostgres(db)
		commitmentStore = commitment.NewPostgres(db)
		auditStore = audit.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		disasterStore = disaster.NewInMemory()
		commitmentStore = commitment.NewInMemory()
		auditStore = audit.NewInMemoryStore()
		log.Info("using in-memory stores; set DATABASE_URL for persistence")
	}

	inbox := audit.NewInbox(cfg.AuditBuffer)
	worker := audit.NewWorker(auditStore, inbox.Events(), log)

	svc, err := service.New(disasterStore, commitmentStore,
		service.WithLogger(log),
		service.WithMetrics(coordmetrics.New()),
		service.WithAuditEmitter(inbox),
	)
	if err != nil {
		return err
	}

	router := httpapi.New(httpapi.Deps{
		Logger:       log,
		Metrics:      metrics.New(),
		Coordination: coordhandler.New(svc, log),
		Audit:        audithandler.New(audit.NewPublisher(auditStore), log),
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting muster", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
