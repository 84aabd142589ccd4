package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const batchSize = 10

// MessageWriter is the slice of *kafka.Writer the worker needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ProcessOutbox polls the outbox and ships pending events to kafka until
// the context is canceled.
func ProcessOutbox(ctx context.Context, outbox Outbox, writer MessageWriter, interval time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("events.worker")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := drainOnce(ctx, outbox, writer, logger); err != nil {
				logger.Warn("outbox drain failed", zap.Error(err))
			}
		}
	}
}

func drainOnce(ctx context.Context, outbox Outbox, writer MessageWriter, logger *zap.Logger) error {
	events, err := outbox.PopBatch(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Debug("shipping events", zap.Int("count", len(events)))

	for i, e := range events {
		if err := publishEvent(ctx, writer, e); err != nil {
			// put this and the rest back, retry next tick
			for j := len(events) - 1; j >= i; j-- {
				if reqErr := outbox.Requeue(ctx, events[j]); reqErr != nil {
					logger.Error("requeue failed, event lost",
						zap.String("event_id", events[j].ID),
						zap.Error(reqErr),
					)
				}
			}
			return err
		}
	}
	return nil
}

func publishEvent(ctx context.Context, writer MessageWriter, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(e.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	return writer.WriteMessages(ctx, msg)
}
