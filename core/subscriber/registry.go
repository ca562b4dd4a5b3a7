package subscriber

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/signalbus/core/bus"
	"github.com/dmitrymomot/signalbus/core/logger"
)

// handle is the bus-facing part of a tracked subscription.
type handle interface {
	Close() error
}

// Registry gives a stateful subscriber a uniform, leak-free way to react to
// refresh and data signals from one bus instance. It tracks every
// subscription registered through OnRefresh and OnData and releases all of
// them atomically when the subscriber is torn down.
//
// A Registry is exclusively owned by one subscriber: the owner registers
// handlers during its setup and calls ReleaseAll exactly once from its own
// teardown path. It is not shared between subscribers.
//
// Example:
//
//	type ProfileView struct {
//	    reg *subscriber.Registry
//	}
//
//	func NewProfileView(b *bus.Bus) *ProfileView {
//	    v := &ProfileView{reg: subscriber.New(b)}
//	    subscriber.OnRefresh[Profile](v.reg, v.reload)
//	    subscriber.OnData(v.reg, v.apply)
//	    return v
//	}
//
//	func (v *ProfileView) Close() error {
//	    return v.reg.ReleaseAll()
//	}
type Registry struct {
	mu       sync.Mutex
	bus      *bus.Bus
	handles  []handle
	released bool
	logger   *slog.Logger
}

// New creates a registry bound to b. A nil bus selects the process-wide
// default instance; tests and isolated contexts pass their own instance so
// their traffic never touches the shared one.
func New(b *bus.Bus, opts ...Option) *Registry {
	if b == nil {
		b = bus.Default()
	}

	r := &Registry{
		bus:    b,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ReleaseAll cancels every tracked subscription exactly once, in
// registration order. After it returns, no subsequent emission reaches this
// registry's handlers; invocations already dispatched complete
// independently. ReleaseAll is idempotent and never fails, so it chains
// safely into any disposal path.
func (r *Registry) ReleaseAll() error {
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return nil
	}
	r.released = true
	handles := r.handles
	r.handles = nil
	r.mu.Unlock()

	for _, h := range handles {
		_ = h.Close() // Subscription.Close is idempotent and never fails
	}

	r.logger.Debug("subscriber released",
		logger.Count("subscriptions", len(handles)))

	return nil
}

// track appends h to the registry.
// Reports false if the registry was already released.
func (r *Registry) track(h handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return false
	}

	r.handles = append(r.handles, h)
	return true
}
