package subscriber

import (
	"context"
	"reflect"
	"time"

	"github.com/dmitrymomot/signalbus/core/bus"
	"github.com/dmitrymomot/signalbus/core/logger"
	"github.com/dmitrymomot/signalbus/pkg/async"
)

// HandlerFunc is a type-safe function signature for reacting to data
// signals carrying a value of type T.
type HandlerFunc[T any] func(context.Context, T) error

// ReloadFunc reacts to a refresh signal by reloading whatever state the
// subscriber derives from the changed type.
type ReloadFunc func(context.Context) error

// OnRefresh registers reload to run on every refresh signal for type T.
// Each delivered signal spawns reload as an independent unit of work:
// the emitter never waits for it, a slow invocation does not delay
// subsequent ones, and a failure or panic is isolated to that single
// invocation and routed to the registry's logger.
//
// Calling OnRefresh after ReleaseAll is a contract violation by the owning
// subscriber; the registration is dropped with a warning.
func OnRefresh[T any](r *Registry, reload ReloadFunc) {
	sub := bus.SubscribeRefresh[T](r.bus)
	name := typeName[T]()

	if !r.track(sub) {
		_ = sub.Close()
		r.logger.Warn("refresh registration after release ignored",
			logger.SignalType(name))
		return
	}

	go func() {
		for range sub.Out() {
			r.invoke(name, sub.ID(), reload)
		}
	}()
}

// OnData registers handler to run on every data signal whose runtime type is
// exactly T, receiving the emitted value. Execution and bookkeeping follow
// the same fire-and-forget contract as OnRefresh.
func OnData[T any](r *Registry, handler HandlerFunc[T]) {
	sub := bus.SubscribeData[T](r.bus)
	name := typeName[T]()

	if !r.track(sub) {
		_ = sub.Close()
		r.logger.Warn("data registration after release ignored",
			logger.SignalType(name))
		return
	}

	go func() {
		for v := range sub.Out() {
			value := v
			r.invoke(name, sub.ID(), func(ctx context.Context) error {
				return handler(ctx, value)
			})
		}
	}()
}

// invoke spawns one handler invocation as an independent unit of work.
// Failures, including recovered panics, are contained at this boundary and
// surface only through the registry's logger; the dispatch loop, the
// subscription, and the bus stay fully operational afterward.
func (r *Registry) invoke(name, subID string, fn ReloadFunc) {
	ctx := WithSignalMeta(context.Background(), name, subID, time.Now())
	start := time.Now()

	fut := async.Exec(ctx, struct{}{}, func(ctx context.Context, _ struct{}) error {
		return fn(ctx)
	})

	go func() {
		if err := fut.Await(); err != nil {
			r.logger.Error("signal handler failed",
				logger.SignalType(name),
				logger.Subscription(subID),
				logger.Elapsed(start),
				logger.Error(err))
			return
		}

		r.logger.Debug("signal handler completed",
			logger.SignalType(name),
			logger.Subscription(subID),
			logger.Elapsed(start))
	}()
}

// typeName extracts a readable name for the type parameter T, unwrapping
// pointer types the way handlers are usually registered.
func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
