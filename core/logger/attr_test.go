package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signalbus/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("wraps a non-nil error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("failed")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("returns empty attr for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	t.Run("channel and signal type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "refresh", logger.Channel("refresh").Value.String())
		assert.Equal(t, "Profile", logger.SignalType("Profile").Value.String())
	})

	t.Run("subscription is empty for blank IDs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Subscription(""))
		assert.Equal(t, "sub-1", logger.Subscription("sub-1").Value.String())
	})

	t.Run("panic is empty for nil values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Panic(nil))
		assert.Equal(t, "panic", logger.Panic("boom").Key)
	})

	t.Run("count carries the given key", func(t *testing.T) {
		t.Parallel()

		attr := logger.Count("subscriptions", 3)
		assert.Equal(t, "subscriptions", attr.Key)
		assert.EqualValues(t, 3, attr.Value.Int64())
	})
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()

	t.Run("duration", func(t *testing.T) {
		t.Parallel()

		attr := logger.Duration(time.Second)
		assert.Equal(t, "duration", attr.Key)
		assert.Equal(t, time.Second, attr.Value.Duration())
	})

	t.Run("elapsed is non-negative", func(t *testing.T) {
		t.Parallel()

		attr := logger.Elapsed(time.Now())
		assert.Equal(t, "elapsed", attr.Key)
		assert.GreaterOrEqual(t, attr.Value.Duration(), time.Duration(0))
	})
}

func TestDebugAttrs(t *testing.T) {
	t.Parallel()

	t.Run("stack captures the current goroutine", func(t *testing.T) {
		t.Parallel()

		attr := logger.Stack()
		assert.Equal(t, "stack", attr.Key)
		assert.Contains(t, attr.Value.String(), "goroutine")
	})

	t.Run("caller names this file", func(t *testing.T) {
		t.Parallel()

		attr := logger.Caller()
		assert.Equal(t, "caller", attr.Key)
		assert.Contains(t, attr.Value.String(), "attr_test.go")
	})
}
