// Package bus provides a minimal in-process publish/subscribe facility for
// typed signals. It routes two kinds of signals between decoupled components:
// a zero-payload "data of type T changed" refresh marker, and a "here is the
// new value of type T" data payload.
//
// # Core Components
//
// Bus is one isolated routing domain holding two independent channels, one
// for refresh markers and one for data payloads. Instances never share
// traffic; Default returns the lazily created process-wide instance, and New
// creates isolated instances for tests or scoped contexts.
//
// Subscription is a live, filtered view of one channel: a stream of future
// matching emissions consumed from Out, cancelled with Close.
//
// # Routing
//
// Each channel routes by exact type identity. A refresh subscription for T
// observes exactly EmitRefresh[T] calls; a data subscription for T observes
// exactly those values whose runtime type is T. Assignability plays no role:
// emitting a value of a concrete type never reaches a subscription registered
// for an interface it happens to implement, and distinct types never cross.
//
// # Basic Usage
//
//	type Profile struct {
//		Name string
//	}
//
//	b := bus.New()
//	defer b.Close()
//
//	sub := bus.SubscribeData[Profile](b)
//	defer sub.Close()
//
//	go func() {
//		for p := range sub.Out() {
//			render(p)
//		}
//	}()
//
//	bus.EmitData(b, Profile{Name: "alice"})
//
// Refresh signals work the same way without a payload:
//
//	sub := bus.SubscribeRefresh[Profile](b)
//	go func() {
//		for range sub.Out() {
//			reloadProfile()
//		}
//	}()
//
//	bus.EmitRefresh[Profile](b)
//
// # Delivery Guarantees
//
// Fan-out is best-effort and in-process only. Every subscription registered
// before an emission receives it, in emission order, at most once. Distinct
// emissions are never coalesced. Delivery is non-blocking: a subscription
// whose buffer is full has that signal dropped for it alone, counted in
// Stats and surfaced as a slow-subscriber warning, while other subscriptions
// and subsequent emissions are unaffected.
//
// Emitting never fails. An emission with zero matching subscriptions is a
// no-op, and emissions on a closed bus are silently dropped.
//
// # Isolation for Tests
//
// Construct a fresh instance and inject it instead of Default so emissions
// stay invisible to unrelated subscribers:
//
//	b := bus.New()
//	defer b.Close()
//	reg := subscriber.New(b)
//
// # Thread Safety
//
// All operations are safe for concurrent use. Registration and emission may
// interleave from any number of goroutines; the bus provides its own
// internal synchronization.
package bus
