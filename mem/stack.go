package mem

import "unsafe"

// maxAlign is the strictest alignment any allocation may require; every
// stack allocation is rounded up to it.
const maxAlign = 16

func alignUp(n uintptr) uintptr {
	return (n + maxAlign - 1) &^ (maxAlign - 1)
}

// StackAllocator hands out consecutive ranges of one fixed buffer by
// advancing a bump pointer. Deallocation reclaims space only in strict
// LIFO order: a block that is not the current top stays unrecoverable
// until Reset.
type StackAllocator struct {
	buf []byte
	top uintptr
}

// NewStack returns a bump allocator over a fresh buffer of size bytes.
func NewStack(size int) *StackAllocator {
	return &StackAllocator{buf: make([]byte, size)}
}

func (s *StackAllocator) Allocate(size uintptr) Block {
	if size == 0 {
		return Block{}
	}
	need := alignUp(size)
	if s.top+need > uintptr(len(s.buf)) {
		return Block{}
	}
	b := Block{ptr: unsafe.Pointer(&s.buf[s.top]), size: size}
	s.top += need
	return b
}

// Deallocate retracts the bump pointer when b sits exactly at the top.
// Any other block is silently abandoned until Reset.
func (s *StackAllocator) Deallocate(b Block) {
	if b.IsNil() {
		return
	}
	if debugChecks && !s.Owns(b) {
		panic("mem: StackAllocator.Deallocate called with a foreign block")
	}
	need := alignUp(b.size)
	if uintptr(b.ptr)+need == s.base()+s.top {
		s.top -= need
	}
}

// Owns reports whether b points into the allocator's buffer.
func (s *StackAllocator) Owns(b Block) bool {
	if b.IsNil() || len(s.buf) == 0 {
		return false
	}
	p := uintptr(b.ptr)
	return p >= s.base() && p < s.base()+uintptr(len(s.buf))
}

// Reset abandons every outstanding block and reclaims the whole buffer.
func (s *StackAllocator) Reset() { s.top = 0 }

// Used returns the bytes currently claimed, including alignment padding.
func (s *StackAllocator) Used() int { return int(s.top) }

// Remaining returns the bytes still available.
func (s *StackAllocator) Remaining() int { return len(s.buf) - int(s.top) }

func (s *StackAllocator) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.buf)))
}

var _ OwningAllocator = (*StackAllocator)(nil)
