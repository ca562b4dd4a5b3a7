package subscriber

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger handler failures are reported to. Failures have
// no other observer (the emitter already returned when a handler runs), so
// the default is slog.Default() rather than a discarded logger. Pass
// slog.New(slog.NewTextHandler(io.Discard, nil)) to silence them.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
