package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-storefront/internal/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestPublisher_AppendsToOutbox(t *testing.T) {
	outbox := events.NewMemOutbox()
	pub := events.NewPublisher(outbox, nil)

	pub.Publish(context.Background(), events.TypeCartUpdated, "sess-1", map[string]any{"itemId": "p1-M"})

	pending := outbox.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, events.TypeCartUpdated, pending[0].Type)
	assert.Equal(t, "sess-1", pending[0].SessionID)
	assert.NotEmpty(t, pending[0].ID)
}

func TestDrain_ShipsEventsToKafka(t *testing.T) {
	ctx := context.Background()
	outbox := events.NewMemOutbox()
	pub := events.NewPublisher(outbox, nil)
	pub.Publish(ctx, events.TypeOrderPlaced, "sess-1", nil)
	pub.Publish(ctx, events.TypeCartCleared, "sess-1", nil)

	writer := &captureWriter{}
	assert.NoError(t, events.DrainOnceForTest(ctx, outbox, writer))

	require.Len(t, writer.messages, 2)
	assert.Empty(t, outbox.Pending())

	var shipped events.Event
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &shipped))
	assert.Equal(t, events.TypeOrderPlaced, shipped.Type)
	assert.Equal(t, "event_type", writer.messages[0].Headers[0].Key)
}

func TestDrain_RequeuesOnPublishFailure(t *testing.T) {
	ctx := context.Background()
	outbox := events.NewMemOutbox()
	pub := events.NewPublisher(outbox, nil)
	pub.Publish(ctx, events.TypeCartUpdated, "sess-1", nil)

	writer := &captureWriter{err: assert.AnError}
	assert.Error(t, events.DrainOnceForTest(ctx, outbox, writer))

	// nothing lost: the event waits for the next tick
	assert.Len(t, outbox.Pending(), 1)
}
