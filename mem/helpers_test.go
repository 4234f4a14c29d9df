package mem

// countingAllocator wraps another allocator and counts the calls that
// reach it, so tests can assert how policies delegate.
type countingAllocator struct {
	inner  Allocator
	allocs int
	frees  int
}

func counting(inner Allocator) *countingAllocator {
	return &countingAllocator{inner: inner}
}

func (c *countingAllocator) Allocate(size uintptr) Block {
	c.allocs++
	return c.inner.Allocate(size)
}

func (c *countingAllocator) Deallocate(b Block) {
	c.frees++
	c.inner.Deallocate(b)
}

func (c *countingAllocator) Owns(b Block) bool { return owns(c.inner, b) }
