package bus

import "log/slog"

// Option configures a Bus.
type Option func(*Bus)

// WithBufferSize sets the default buffer size for subscriptions created on
// this bus. Default is 100. A larger buffer tolerates slower consumers
// before signals are dropped for them.
func WithBufferSize(size int) Option {
	return func(b *Bus) {
		if size > 0 {
			b.bufferSize = size
		}
	}
}

// WithLogger configures structured logging for the bus. The bus logs at
// debug level for routine operations and warns about slow subscribers.
// By default logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type subscribeConfig struct {
	buffer int
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeConfig)

// WithBuffer overrides the bus's default buffer size for one subscription.
func WithBuffer(size int) SubscribeOption {
	return func(cfg *subscribeConfig) {
		if size > 0 {
			cfg.buffer = size
		}
	}
}
