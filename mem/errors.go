package mem

import "errors"

var (
	// ErrExhausted indicates the injected allocator could not serve a typed
	// allocation. Never seen through the default composition, whose fatal
	// guard terminates the process first.
	ErrExhausted = errors.New("mem: allocator exhausted")
)
