package mem

// Segregator routes every operation by byte size: requests at or below the
// threshold go to the small allocator, the rest to the large one.
// Deallocation routes by the block's recorded size, which is why callers
// must never mutate it.
type Segregator struct {
	threshold uintptr
	small     Allocator
	large     Allocator
}

// NewSegregator routes size <= threshold to small, everything else to large.
func NewSegregator(threshold uintptr, small, large Allocator) *Segregator {
	return &Segregator{threshold: threshold, small: small, large: large}
}

func (s *Segregator) pick(size uintptr) Allocator {
	if size <= s.threshold {
		return s.small
	}
	return s.large
}

func (s *Segregator) Allocate(size uintptr) Block {
	return s.pick(size).Allocate(size)
}

func (s *Segregator) Deallocate(b Block) {
	if b.IsNil() {
		return
	}
	s.pick(b.size).Deallocate(b)
}

func (s *Segregator) Owns(b Block) bool {
	if b.IsNil() {
		return false
	}
	return owns(s.pick(b.size), b)
}

var _ OwningAllocator = (*Segregator)(nil)
