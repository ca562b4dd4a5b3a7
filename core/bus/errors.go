package bus

import "errors"

var (
	// ErrBusClosed is returned when closing a bus that is already closed.
	ErrBusClosed = errors.New("bus already closed")
)
