package subscriber

import (
	"context"
	"time"
)

type signalTypeCtx struct{}

// WithSignalType attaches the routed signal type name to the context.
func WithSignalType(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, signalTypeCtx{}, name)
}

// SignalType extracts the routed signal type name from the context.
// Returns empty string if not present.
func SignalType(ctx context.Context) string {
	if name, ok := ctx.Value(signalTypeCtx{}).(string); ok {
		return name
	}
	return ""
}

type subscriptionIDCtx struct{}

// WithSubscriptionID attaches the delivering subscription's ID to the context.
func WithSubscriptionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, subscriptionIDCtx{}, id)
}

// SubscriptionID extracts the delivering subscription's ID from the context.
// Returns empty string if not present.
func SubscriptionID(ctx context.Context) string {
	if id, ok := ctx.Value(subscriptionIDCtx{}).(string); ok {
		return id
	}
	return ""
}

type receivedAtCtx struct{}

// WithReceivedAt attaches the signal delivery time to the context.
func WithReceivedAt(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, receivedAtCtx{}, t)
}

// ReceivedAt extracts the signal delivery time from the context.
// Returns zero time if not present.
func ReceivedAt(ctx context.Context) time.Time {
	if t, ok := ctx.Value(receivedAtCtx{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}

// WithSignalMeta attaches all signal metadata (type name, subscription ID,
// delivery time) to the context handlers are invoked with.
func WithSignalMeta(ctx context.Context, name, subID string, receivedAt time.Time) context.Context {
	ctx = WithSignalType(ctx, name)
	ctx = WithSubscriptionID(ctx, subID)
	ctx = WithReceivedAt(ctx, receivedAt)
	return ctx
}
