// Package async provides utilities for fire-and-forget asynchronous execution
// with Go generics.
//
// This package implements a Future pattern for non-blocking operations that
// only report an error, with timeout support and panic containment. It backs
// the subscriber dispatch path, where each signal handler invocation runs as
// an independent unit of work whose result is observed but never awaited by
// the emitter.
//
// # Usage
//
// Basic asynchronous operation:
//
//	future := async.Exec(ctx, profile, func(ctx context.Context, p Profile) error {
//		return store.Save(ctx, p)
//	})
//
//	// Do other work...
//
//	if err := future.Await(); err != nil {
//		log.Println("save failed:", err)
//	}
//
// Using timeout:
//
//	err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("operation timed out")
//	}
//
// Waiting on several operations:
//
//	if err := async.ExecAll(f1, f2, f3); err != nil {
//		log.Println("one or more operations failed:", err)
//	}
//
// # Panic Containment
//
// A panic inside the executed function is recovered and converted into an
// error wrapping ErrPanicked. Fire-and-forget callers that discard the
// future therefore cannot crash the process through a misbehaving function;
// the failure stays observable through the returned error.
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. ExecFuture uses sync.Once
// internally to prevent race conditions on completion.
//
// # Context Support
//
// If a context is cancelled before the function begins execution, the future
// completes immediately with the context's error.
package async
