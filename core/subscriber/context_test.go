package subscriber_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signalbus/core/subscriber"
)

func TestSignalMetaContext(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all metadata", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		ctx := subscriber.WithSignalMeta(context.Background(), "Profile", "sub-123", now)

		assert.Equal(t, "Profile", subscriber.SignalType(ctx))
		assert.Equal(t, "sub-123", subscriber.SubscriptionID(ctx))
		assert.Equal(t, now, subscriber.ReceivedAt(ctx))
	})

	t.Run("returns zero values on a bare context", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		assert.Empty(t, subscriber.SignalType(ctx))
		assert.Empty(t, subscriber.SubscriptionID(ctx))
		assert.True(t, subscriber.ReceivedAt(ctx).IsZero())
	})

	t.Run("individual setters compose", func(t *testing.T) {
		t.Parallel()

		ctx := subscriber.WithSignalType(context.Background(), "Settings")
		ctx = subscriber.WithSubscriptionID(ctx, "sub-456")

		assert.Equal(t, "Settings", subscriber.SignalType(ctx))
		assert.Equal(t, "sub-456", subscriber.SubscriptionID(ctx))
		assert.True(t, subscriber.ReceivedAt(ctx).IsZero())
	})
}
