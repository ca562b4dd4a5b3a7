package subscriber_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalbus/core/subscriber"
)

func TestApplyDecorators(t *testing.T) {
	t.Parallel()

	t.Run("first decorator is outermost", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) subscriber.Decorator[profile] {
			return func(next subscriber.HandlerFunc[profile]) subscriber.HandlerFunc[profile] {
				return func(ctx context.Context, p profile) error {
					order = append(order, name)
					return next(ctx, p)
				}
			}
		}

		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error {
				order = append(order, "handler")
				return nil
			},
			mark("outer"),
			mark("inner"),
		)

		require.NoError(t, handler(context.Background(), profile{}))
		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})

	t.Run("no decorators returns the handler unchanged in behavior", func(t *testing.T) {
		t.Parallel()

		called := false
		handler := subscriber.ApplyDecorators(func(ctx context.Context, p profile) error {
			called = true
			return nil
		})

		require.NoError(t, handler(context.Background(), profile{}))
		assert.True(t, called)
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("passes through a fast handler", func(t *testing.T) {
		t.Parallel()

		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error { return nil },
			subscriber.Timeout[profile](time.Second),
		)

		assert.NoError(t, handler(context.Background(), profile{}))
	})

	t.Run("fails a handler that exceeds the deadline", func(t *testing.T) {
		t.Parallel()

		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Second):
					return nil
				}
			},
			subscriber.Timeout[profile](20*time.Millisecond),
		)

		err := handler(context.Background(), profile{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRetry(t *testing.T) {
	t.Parallel()

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error {
				attempts++
				if attempts < 3 {
					return errors.New("transient")
				}
				return nil
			},
			subscriber.Retry[profile](3),
		)

		require.NoError(t, handler(context.Background(), profile{}))
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error when all attempts fail", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("permanent")
		attempts := 0
		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error {
				attempts++
				return wantErr
			},
			subscriber.Retry[profile](2),
		)

		err := handler(context.Background(), profile{})
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, attempts, "initial attempt plus two retries")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		handler := subscriber.ApplyDecorators(
			func(ctx context.Context, p profile) error {
				cancel()
				return errors.New("always")
			},
			subscriber.Retry[profile](5),
		)

		err := handler(ctx, profile{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
