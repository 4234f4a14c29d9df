package mem

// FallbackAllocator tries its primary for every request and falls back to
// the secondary when the primary is exhausted. The primary must implement
// Owns so releases route back to whichever side produced the block.
type FallbackAllocator struct {
	primary  OwningAllocator
	fallback Allocator
}

// NewFallback composes primary over fallback.
func NewFallback(primary OwningAllocator, fallback Allocator) *FallbackAllocator {
	return &FallbackAllocator{primary: primary, fallback: fallback}
}

func (f *FallbackAllocator) Allocate(size uintptr) Block {
	if b := f.primary.Allocate(size); !b.IsNil() {
		return b
	}
	return f.fallback.Allocate(size)
}

func (f *FallbackAllocator) Deallocate(b Block) {
	if f.primary.Owns(b) {
		f.primary.Deallocate(b)
		return
	}
	f.fallback.Deallocate(b)
}

func (f *FallbackAllocator) Owns(b Block) bool {
	return f.primary.Owns(b) || owns(f.fallback, b)
}

var _ OwningAllocator = (*FallbackAllocator)(nil)
