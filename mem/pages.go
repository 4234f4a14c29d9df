//go:build unix

package mem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PageAllocator maps whole pages straight from the kernel. It serves the
// largest size band of the default composition, where recycling through a
// free list would pin too much memory.
type PageAllocator struct {
	pageSize uintptr
}

// NewPageAllocator returns a page-granular allocator.
func NewPageAllocator() *PageAllocator {
	return &PageAllocator{pageSize: uintptr(os.Getpagesize())}
}

func (p *PageAllocator) roundUp(size uintptr) uintptr {
	return (size + p.pageSize - 1) &^ (p.pageSize - 1)
}

func (p *PageAllocator) Allocate(size uintptr) Block {
	if size == 0 {
		return Block{}
	}
	buf, err := unix.Mmap(-1, 0, int(p.roundUp(size)),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return Block{}
	}
	return Block{ptr: unsafe.Pointer(unsafe.SliceData(buf)), size: size}
}

func (p *PageAllocator) Deallocate(b Block) {
	if b.IsNil() {
		return
	}
	// Rebuild the exact mapping slice so unix can find the registration.
	buf := unsafe.Slice((*byte)(b.ptr), p.roundUp(b.size))
	_ = unix.Munmap(buf)
}

var _ Allocator = (*PageAllocator)(nil)
