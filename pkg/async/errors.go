package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
	ErrTimeout = errors.New("async operation timed out")

	// ErrPanicked is returned when the asynchronous function panicked.
	// The recovered value is included in the wrapping error's message.
	ErrPanicked = errors.New("async operation panicked")
)
