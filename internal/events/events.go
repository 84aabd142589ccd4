// Package events records storefront activity (cart changes, placed
// orders) in an outbox that a background worker drains to kafka. The
// stream is telemetry for downstream consumers; publishing is best-effort
// and never fails a user action.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TypeCartUpdated     = "CART_UPDATED"
	TypeCartCleared     = "CART_CLEARED"
	TypeWishlistUpdated = "WISHLIST_UPDATED"
	TypeOrderPlaced     = "ORDER_PLACED"
	TypeOrderFailed     = "ORDER_FAILED"
)

type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	SessionID  string          `json:"sessionId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Outbox buffers events durably until the worker ships them.
type Outbox interface {
	Append(ctx context.Context, e Event) error
	// PopBatch removes and returns up to limit pending events, oldest
	// first.
	PopBatch(ctx context.Context, limit int) ([]Event, error)
	// Requeue puts an event back at the front after a failed publish.
	Requeue(ctx context.Context, e Event) error
}

// Publisher appends activity events to the outbox.
type Publisher interface {
	Publish(ctx context.Context, eventType, sessionID string, payload any)
}

type publisher struct {
	outbox Outbox
	logger *zap.Logger
}

func NewPublisher(outbox Outbox, logger *zap.Logger) Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &publisher{outbox: outbox, logger: logger.Named("events")}
}

func (p *publisher) Publish(ctx context.Context, eventType, sessionID string, payload any) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			p.logger.Warn("event payload marshal failed", zap.String("type", eventType), zap.Error(err))
			return
		}
		raw = data
	}

	e := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		SessionID:  sessionID,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.outbox.Append(ctx, e); err != nil {
		p.logger.Warn("event append failed", zap.String("type", eventType), zap.Error(err))
	}
}

// NopPublisher discards everything; tests and minimal deployments use it.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) {}
