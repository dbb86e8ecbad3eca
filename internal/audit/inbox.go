package audit

import (
	"context"
	"time"
)

// Inbox decouples event producers from persistence: services Emit into a
// buffered channel and a Worker drains it. Emit never blocks the request
// path; when the buffer is full the event is dropped and the caller's
// logger, not this package, decides how loudly to complain.
type Inbox struct {
	ch chan Event
}

func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = 256
	}
	return &Inbox{ch: make(chan Event, size)}
}

// Emit enqueues an event for background persistence.
func (i *Inbox) Emit(_ context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	select {
	case i.ch <- event:
		return nil
	default:
		return ErrInboxFull
	}
}

// Events exposes the drain side for the Worker.
func (i *Inbox) Events() <-chan Event {
	return i.ch
}
