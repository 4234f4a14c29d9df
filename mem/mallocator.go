package mem

import "unsafe"

// NullAllocator refuses every request. It terminates allocator
// compositions and drives exhaustion paths in tests.
type NullAllocator struct{}

func (NullAllocator) Allocate(size uintptr) Block { return Block{} }
func (NullAllocator) Deallocate(b Block)          {}
func (NullAllocator) Owns(b Block) bool           { return false }

// Mallocator delegates to the Go heap. Deallocation drops the reference
// and leaves the rest to the collector.
type Mallocator struct{}

func (Mallocator) Allocate(size uintptr) Block {
	if size == 0 {
		return Block{}
	}
	buf := make([]byte, size)
	return Block{ptr: unsafe.Pointer(unsafe.SliceData(buf)), size: size}
}

func (Mallocator) Deallocate(b Block) {}

var (
	_ OwningAllocator = NullAllocator{}
	_ Allocator       = Mallocator{}
)
