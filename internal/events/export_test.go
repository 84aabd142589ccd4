package events

import (
	"context"

	"go.uber.org/zap"
)

// DrainOnceForTest exposes a single drain cycle to the package tests.
func DrainOnceForTest(ctx context.Context, outbox Outbox, writer MessageWriter) error {
	return drainOnce(ctx, outbox, writer, zap.NewNop())
}
