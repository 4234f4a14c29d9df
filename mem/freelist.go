package mem

// FreeList recycles blocks whose size falls in [lo, hi] instead of
// returning them to the wrapped allocator. Recycled blocks serve later
// in-band requests; everything outside the band passes straight through.
//
// The list is LIFO. The top block is reused only when it covers the
// request, so a band should group one size class: mixing very different
// sizes in one band degrades reuse, it never breaks correctness.
type FreeList struct {
	inner Allocator
	lo    uintptr
	hi    uintptr
	free  []Block
}

// NewFreeList wraps inner, recycling blocks of lo..hi bytes inclusive.
func NewFreeList(inner Allocator, lo, hi uintptr) *FreeList {
	return &FreeList{inner: inner, lo: lo, hi: hi}
}

func (f *FreeList) inBand(size uintptr) bool {
	return size >= f.lo && size <= f.hi
}

func (f *FreeList) Allocate(size uintptr) Block {
	if n := len(f.free); n > 0 && f.inBand(size) && f.free[n-1].size >= size {
		b := f.free[n-1]
		f.free = f.free[:n-1]
		return b
	}
	return f.inner.Allocate(size)
}

func (f *FreeList) Deallocate(b Block) {
	if !b.IsNil() && f.inBand(b.size) {
		f.free = append(f.free, b)
		return
	}
	f.inner.Deallocate(b)
}

func (f *FreeList) Owns(b Block) bool { return owns(f.inner, b) }

// Cached reports how many blocks currently sit on the list.
func (f *FreeList) Cached() int { return len(f.free) }

// Release drains every recycled block back into the wrapped allocator.
func (f *FreeList) Release() {
	for _, b := range f.free {
		f.inner.Deallocate(b)
	}
	f.free = f.free[:0]
}

var _ OwningAllocator = (*FreeList)(nil)
