package bus

import (
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signalbus/core/logger"
)

// Refresh is the zero-payload marker delivered on the refresh channel.
// It carries no data beyond "something of type T changed, reload it".
type Refresh[T any] struct{}

// Subscription is a live, filtered view of one channel of a Bus: a stream of
// future matching emissions, starting from the moment it was created (no
// replay of history).
//
// The stream is consumed from Out. Close cancels the subscription for future
// emissions and terminates the stream; values already buffered remain
// readable until drained.
type Subscription[T any] struct {
	bus  *Bus
	kind kind
	typ  reflect.Type
	id   string
	out  chan T

	closeOnce sync.Once
}

// ID returns the subscription's unique identifier, useful for correlating
// log entries and handler context metadata.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Out returns the stream of matching emissions. The channel is closed when
// the subscription is cancelled or its bus is closed.
func (s *Subscription[T]) Out() <-chan T {
	return s.out
}

// Close cancels the subscription. Cancellation takes effect for future
// emissions only; a value already dispatched is delivered or dropped
// independently. Close is idempotent and never fails.
func (s *Subscription[T]) Close() error {
	s.closeOnce.Do(func() {
		s.bus.removeSink(s.kind, s.typ, s)
		close(s.out)
	})
	return nil
}

// deliver implements sink. The routing key guarantees the assertion holds
// for every value the bus hands us.
func (s *Subscription[T]) deliver(v any) bool {
	typed, ok := v.(T)
	if !ok {
		return false
	}

	select {
	case s.out <- typed:
		return true
	default:
		return false
	}
}

// terminate implements sink. Called by Bus.Close after the sink has been
// detached from its routing entry.
func (s *Subscription[T]) terminate() {
	s.closeOnce.Do(func() {
		close(s.out)
	})
}

// typeKey returns the routing key for the type parameter T.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// EmitRefresh broadcasts a Refresh[T] marker to every current refresh
// subscription for exactly T. It completes synchronously (the broadcast is
// immediate), never fails, and is a no-op when nothing listens for T or the
// bus is closed.
func EmitRefresh[T any](b *Bus) {
	b.broadcast(kindRefresh, typeKey[T](), Refresh[T]{})
}

// EmitData broadcasts value to every current data subscription whose filter
// matches the value's runtime type exactly. Assignability does not route: a
// subscription for an interface or base type never observes values of other
// concrete types. Like EmitRefresh, it never fails.
//
// A nil interface value has no runtime type and is dropped.
func EmitData[T any](b *Bus, value T) {
	b.broadcast(kindData, reflect.TypeOf(value), value)
}

// SubscribeRefresh returns a live view of refresh markers for exactly T,
// starting from now. Each call yields an independent subscription.
func SubscribeRefresh[T any](b *Bus, opts ...SubscribeOption) *Subscription[Refresh[T]] {
	return subscribe[Refresh[T]](b, kindRefresh, typeKey[T](), opts)
}

// SubscribeData returns a live view of data emissions whose runtime type is
// exactly T, starting from now. Each call yields an independent subscription.
func SubscribeData[T any](b *Bus, opts ...SubscribeOption) *Subscription[T] {
	return subscribe[T](b, kindData, typeKey[T](), opts)
}

func subscribe[T any](b *Bus, k kind, typ reflect.Type, opts []SubscribeOption) *Subscription[T] {
	cfg := subscribeConfig{buffer: b.bufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Subscription[T]{
		bus:  b,
		kind: k,
		typ:  typ,
		id:   uuid.New().String(),
		out:  make(chan T, cfg.buffer),
	}

	if !b.addSink(k, typ, s) {
		// Bus already closed: hand back a stream that ends immediately.
		s.closeOnce.Do(func() {
			close(s.out)
		})
		return s
	}

	b.logger.Debug("subscription registered",
		logger.Channel(k.String()),
		logger.SignalType(typ.String()),
		logger.Subscription(s.id))

	return s
}
