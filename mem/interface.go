package mem

// Allocator is the capability contract every primitive and policy
// allocator satisfies.
//
// Implementations in this package:
//   - NullAllocator, Mallocator, StackAllocator, PageAllocator (primitives)
//   - FreeList, FallbackAllocator, Segregator, ThreadSafeAllocator,
//     AbortOnNullAllocator (policies composing other allocators)
type Allocator interface {
	// Allocate returns a block of at least size bytes, or the empty block
	// when the request cannot be served. It never panics.
	Allocate(size uintptr) Block

	// Deallocate releases a block previously produced by this allocator.
	// Releasing a block twice, or a block from another allocator, is
	// undefined.
	Deallocate(b Block)
}

// Owner answers block membership queries. Required of allocators composed
// as the primary of a FallbackAllocator; optional elsewhere.
type Owner interface {
	Owns(b Block) bool
}

// OwningAllocator combines the two capabilities.
type OwningAllocator interface {
	Allocator
	Owner
}

// owns queries a's membership when a implements Owner, false otherwise.
func owns(a Allocator, b Block) bool {
	if o, ok := a.(Owner); ok {
		return o.Owns(b)
	}
	return false
}
