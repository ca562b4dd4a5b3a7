// Package subscriber provides reusable subscription bookkeeping for
// state-holding components reacting to signals from a bus instance.
//
// # Core Components
//
// Registry tracks every subscription a subscriber registers and releases
// all of them atomically at teardown. It is held by composition: the
// subscriber owns a Registry value and chains ReleaseAll into its own
// disposal path, which must run exactly once.
//
// OnRefresh and OnData register type-filtered handlers against the
// registry's bus. Both are fire-and-forget from the bus's perspective: each
// delivered signal spawns the handler as an independent unit of work that
// the emitter never waits for.
//
// # Basic Usage
//
//	type Dashboard struct {
//	    reg *subscriber.Registry
//	}
//
//	func NewDashboard(b *bus.Bus) *Dashboard {
//	    d := &Dashboard{reg: subscriber.New(b)}
//
//	    // Reload when something announces the stats changed.
//	    subscriber.OnRefresh[Stats](d.reg, d.reloadStats)
//
//	    // Apply new settings pushed directly.
//	    subscriber.OnData(d.reg, func(ctx context.Context, s Settings) error {
//	        return d.applySettings(ctx, s)
//	    })
//
//	    return d
//	}
//
//	func (d *Dashboard) Close() error {
//	    return d.reg.ReleaseAll()
//	}
//
// Passing a nil bus to New selects the process-wide default instance. Tests
// construct an isolated bus.New() and inject it so their emissions stay
// invisible to unrelated subscribers.
//
// # Failure Isolation
//
// An error returned by a handler, or a panic inside one, is contained at
// the invocation boundary: it cancels nothing, blocks nothing, and does not
// unsubscribe the handler. The failure surfaces through the registry's
// logger at error level (slog.Default() unless overridden with WithLogger);
// the next matching emission invokes the handler again normally.
//
// # Teardown
//
// ReleaseAll cancels every tracked subscription exactly once and is safe to
// call repeatedly. After it returns, no subsequent emission reaches this
// subscriber's handlers, while invocations already in flight complete
// independently. Registering handlers after ReleaseAll is a contract
// violation by the owner; such registrations are dropped with a warning
// rather than delivered.
//
// # Handler Context
//
// Each invocation receives a context carrying signal metadata for
// observability:
//
//	subscriber.OnData(reg, func(ctx context.Context, p Profile) error {
//	    log.Info("applying profile",
//	        "signal_type", subscriber.SignalType(ctx),
//	        "subscription_id", subscriber.SubscriptionID(ctx),
//	        "received_at", subscriber.ReceivedAt(ctx))
//	    return apply(ctx, p)
//	})
//
// The context is detached from the registry lifecycle: releasing the
// registry does not cancel invocations already running.
//
// # Decorators
//
// Cross-cutting concerns wrap data handlers middleware-style via
// ApplyDecorators with the Timeout and Retry factories, or any custom
// Decorator.
package subscriber
