package bus

import (
	"io"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/signalbus/core/logger"
)

const (
	// DefaultBufferSize is the default per-subscription buffer size.
	DefaultBufferSize = 100
)

// kind selects one of the two independent channels of a Bus.
type kind int

const (
	kindRefresh kind = iota
	kindData
)

func (k kind) String() string {
	if k == kindRefresh {
		return "refresh"
	}
	return "data"
}

// Bus routes typed signal emissions to typed subscriptions within a single
// isolated instance. Two Bus values never share traffic; signals emitted on
// one are invisible to subscriptions registered on the other.
//
// The refresh channel and the data channel of a Bus are fully independent:
// an emission on one never triggers subscriptions on the other. Within each
// channel, routing is by exact type identity (see EmitData for the data
// channel's runtime-type rule).
//
// Bus is safe for concurrent use. Registration and emission may interleave
// from any number of goroutines without external locking.
type Bus struct {
	mu     sync.RWMutex
	tables [2]map[reflect.Type]*node
	closed bool

	logger     *slog.Logger
	bufferSize int

	emitted   atomic.Int64
	delivered atomic.Int64
	dropped   atomic.Int64
}

// node is the per-type fan-out point inside one channel's dispatch table.
// Emissions for a type serialize on the node lock, so every subscription
// observes matching emissions in the same relative order.
type node struct {
	mu        sync.Mutex
	typ       reflect.Type
	sinks     []sink
	dropCount atomic.Int64
}

// sink is the type-erased subscriber end of a routing entry.
type sink interface {
	// deliver offers v to the subscriber without blocking.
	// Reports whether the value was accepted.
	deliver(v any) bool

	// terminate closes the subscriber-facing channel. Must be safe to call
	// concurrently with the subscription's own Close.
	terminate()
}

// New creates a fresh, fully isolated Bus: two empty dispatch tables, zero
// subscriptions, and no relation to any other instance including Default().
//
// Example:
//
//	b := bus.New(
//	    bus.WithBufferSize(100),
//	    bus.WithLogger(logger),
//	)
//	defer b.Close()
func New(opts ...Option) *Bus {
	b := &Bus{
		tables: [2]map[reflect.Type]*node{
			kindRefresh: make(map[reflect.Type]*node),
			kindData:    make(map[reflect.Type]*node),
		},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bufferSize: DefaultBufferSize,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

var defaultBus = sync.OnceValue(func() *Bus { return New() })

// Default returns the process-wide bus instance, lazily created on first
// access and alive for the life of the process. It is the zero-configuration
// instance collaborators share unless a test or isolated context injects its
// own via New.
func Default() *Bus {
	return defaultBus()
}

// Close terminates both channels and releases every subscription. After
// Close, emissions are silently dropped and new subscriptions start already
// terminated. A second Close returns ErrBusClosed.
//
// Closing is optional; a Bus holds no resources beyond its subscriptions and
// may simply be dropped when nothing references it.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	b.closed = true

	var sinks []sink
	for k := range b.tables {
		for typ, n := range b.tables[k] {
			n.mu.Lock()
			sinks = append(sinks, n.sinks...)
			n.sinks = nil
			n.mu.Unlock()
			delete(b.tables[k], typ)
		}
	}
	b.mu.Unlock()

	// Sinks are already detached, so no emission can race the close.
	for _, s := range sinks {
		s.terminate()
	}

	b.logger.Debug("bus closed", logger.Count("subscriptions", len(sinks)))
	return nil
}

// broadcast fans v out to every sink registered for typ on channel k.
// It never fails: no matching subscriptions means a no-op, and emissions on
// a closed bus are silently dropped.
func (b *Bus) broadcast(k kind, typ reflect.Type, v any) {
	if typ == nil {
		// A nil interface value carries no type tag to route on.
		b.logger.Debug("dropping untyped emission", logger.Channel(k.String()))
		return
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	n := b.tables[k][typ]
	b.mu.RUnlock()

	b.emitted.Add(1)

	if n == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, s := range n.sinks {
		if s.deliver(v) {
			b.delivered.Add(1)
			continue
		}

		b.dropped.Add(1)
		dropped := n.dropCount.Add(1)

		// Warn once per 100 drops to keep a stuck subscriber from
		// flooding the log.
		if dropped%100 == 1 {
			b.logger.Warn("slow subscriber, dropping signal",
				logger.Channel(k.String()),
				logger.SignalType(typ.String()),
				logger.Count("dropped", int(dropped)))
		}
	}
}

// addSink registers s under typ on channel k.
// Reports false if the bus is already closed.
func (b *Bus) addSink(k kind, typ reflect.Type, s sink) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}

	n, ok := b.tables[k][typ]
	if !ok {
		n = &node{typ: typ}
		b.tables[k][typ] = n
	}

	n.mu.Lock()
	n.sinks = append(n.sinks, s)
	n.mu.Unlock()

	return true
}

// removeSink detaches s from its routing entry, dropping the entry when it
// becomes empty. Safe to call for a sink that was already detached.
func (b *Bus) removeSink(k kind, typ reflect.Type, s sink) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, ok := b.tables[k][typ]
	if !ok {
		return
	}

	n.mu.Lock()
	for i, cur := range n.sinks {
		if cur == s {
			n.sinks = append(n.sinks[:i], n.sinks[i+1:]...)
			break
		}
	}
	empty := len(n.sinks) == 0
	n.mu.Unlock()

	if empty {
		delete(b.tables[k], typ)
	}
}
