package mem

import "sync"

// ThreadSafeAllocator serializes all traffic to the wrapped allocator
// behind a single mutex held for the full duration of each call. This is
// the only synchronization boundary in the framework; everything built
// above it stays lock-free by construction.
type ThreadSafeAllocator struct {
	mu    sync.Mutex
	inner Allocator
}

// NewThreadSafe wraps inner behind one mutex.
func NewThreadSafe(inner Allocator) *ThreadSafeAllocator {
	return &ThreadSafeAllocator{inner: inner}
}

func (t *ThreadSafeAllocator) Allocate(size uintptr) Block {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Allocate(size)
}

func (t *ThreadSafeAllocator) Deallocate(b Block) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inner.Deallocate(b)
}

func (t *ThreadSafeAllocator) Owns(b Block) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return owns(t.inner, b)
}

var _ OwningAllocator = (*ThreadSafeAllocator)(nil)
