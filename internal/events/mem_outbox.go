package events

import (
	"context"
	"sync"
)

// MemOutbox is the in-process Outbox used in tests and when no redis is
// configured.
type MemOutbox struct {
	mu     sync.Mutex
	events []Event
}

func NewMemOutbox() *MemOutbox {
	return &MemOutbox{}
}

func (o *MemOutbox) Append(_ context.Context, e Event) error {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
	return nil
}

func (o *MemOutbox) PopBatch(_ context.Context, limit int) ([]Event, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if limit > len(o.events) {
		limit = len(o.events)
	}
	out := append([]Event(nil), o.events[:limit]...)
	o.events = o.events[limit:]
	return out, nil
}

func (o *MemOutbox) Requeue(_ context.Context, e Event) error {
	o.mu.Lock()
	o.events = append([]Event{e}, o.events...)
	o.mu.Unlock()
	return nil
}

// Pending returns a snapshot of the buffered events.
func (o *MemOutbox) Pending() []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Event(nil), o.events...)
}
