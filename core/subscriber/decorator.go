package subscriber

import (
	"context"
	"fmt"
	"time"
)

// Decorator wraps a data handler function to add cross-cutting functionality.
// It follows the same pattern as HTTP middleware, allowing decorators to be
// composed and applied in order.
type Decorator[T any] func(HandlerFunc[T]) HandlerFunc[T]

// ApplyDecorators applies a series of decorators to a handler function.
// Decorators are applied in the order they are defined: the first decorator
// in the list becomes the outermost wrapper (executes first).
//
// Example:
//
//	subscriber.OnData(reg, subscriber.ApplyDecorators(
//	    applyProfile,
//	    subscriber.Timeout[Profile](5*time.Second),
//	    subscriber.Retry[Profile](3),
//	))
func ApplyDecorators[T any](fn HandlerFunc[T], decorators ...Decorator[T]) HandlerFunc[T] {
	// Apply decorators from last to first so the first in the slice
	// becomes the outermost wrapper.
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Timeout returns a decorator that enforces a maximum execution time.
// The handler's context is cancelled once the timeout elapses.
func Timeout[T any](timeout time.Duration) Decorator[T] {
	return func(next HandlerFunc[T]) HandlerFunc[T] {
		return func(ctx context.Context, value T) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				errCh <- next(ctx, value)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return fmt.Errorf("handler timeout after %s: %w", timeout, ctx.Err())
			}
		}
	}
}

// Retry returns a decorator that retries a failing handler up to maxRetries
// times. Returns the last error if all attempts fail.
func Retry[T any](maxRetries int) Decorator[T] {
	return func(next HandlerFunc[T]) HandlerFunc[T] {
		return func(ctx context.Context, value T) error {
			var lastErr error

			for attempt := 0; attempt <= maxRetries; attempt++ {
				if attempt > 0 {
					if ctx.Err() != nil {
						return ctx.Err()
					}
				}

				err := next(ctx, value)
				if err == nil {
					return nil
				}

				lastErr = err
			}

			return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
		}
	}
}
