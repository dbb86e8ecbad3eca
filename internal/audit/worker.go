package audit

import (
	"context"
	"errors"
	"log/slog"
)

// ErrInboxFull is returned by Inbox.Emit when the buffer is saturated.
var ErrInboxFull = errors.New("audit inbox full")

// Worker consumes audit events from a channel and persists them. Persistence
// failures are logged and skipped; losing one audit row must not wedge the
// pipeline.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"action", event.Action,
					"subject", event.Subject,
					"error", err,
				)
			}
		}
	}
}
