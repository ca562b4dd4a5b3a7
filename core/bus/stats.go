package bus

// Stats provides observability counters for monitoring and debugging.
type Stats struct {
	// Emitted counts emissions accepted by the bus, including those that
	// matched no subscription.
	Emitted int64

	// Delivered counts individual subscription deliveries; one emission
	// with three matching subscriptions adds three.
	Delivered int64

	// Dropped counts deliveries discarded because a subscription's buffer
	// was full.
	Dropped int64

	// Subscriptions is the number of currently active subscriptions across
	// both channels.
	Subscriptions int
}

// Stats returns a snapshot of the bus's counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	subs := 0
	for k := range b.tables {
		for _, n := range b.tables[k] {
			n.mu.Lock()
			subs += len(n.sinks)
			n.mu.Unlock()
		}
	}
	b.mu.RUnlock()

	return Stats{
		Emitted:       b.emitted.Load(),
		Delivered:     b.delivered.Load(),
		Dropped:       b.dropped.Load(),
		Subscriptions: subs,
	}
}
