//go:build !unix

package mem

// PageAllocator stand-in for platforms without mmap support: page
// requests come from the Go heap.
type PageAllocator struct{}

// NewPageAllocator returns a page-granular allocator.
func NewPageAllocator() *PageAllocator { return &PageAllocator{} }

func (p *PageAllocator) Allocate(size uintptr) Block {
	return Mallocator{}.Allocate(size)
}

func (p *PageAllocator) Deallocate(b Block) {}

var _ Allocator = (*PageAllocator)(nil)
