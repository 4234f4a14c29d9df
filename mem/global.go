package mem

import "sync"

const (
	// smallBand is the largest request served by the stack-fronted band.
	smallBand = 256
	// hugeBand is the largest request served by free lists at all;
	// anything bigger goes straight to pages.
	hugeBand = 64 << 10

	stackBytes         = 8 << 10
	maxExhaustionHooks = 16
)

var (
	defaultOnce sync.Once
	defaultTree *AbortOnNullAllocator
)

// Default returns the process-wide allocator, built once on first use:
// small requests through a free list over a stack buffer falling back to
// the heap, medium requests through a free list over the heap, huge
// requests straight to pages, the whole tree behind one mutex and the
// fatal exhaustion guard. Containers accept any Allocator by injection and
// use this tree only as the default.
func Default() *AbortOnNullAllocator {
	defaultOnce.Do(func() {
		small := NewFreeList(NewFallback(NewStack(stackBytes), Mallocator{}), 1, smallBand)
		medium := NewFreeList(Mallocator{}, smallBand+1, hugeBand)
		tree := NewSegregator(smallBand, small,
			NewSegregator(hugeBand, medium, NewPageAllocator()))
		defaultTree = NewAbortOnNull(NewThreadSafe(tree), maxExhaustionHooks)
	})
	return defaultTree
}

// Allocate obtains a block from the default allocator. It never returns
// the empty block: exhaustion terminates the process.
func Allocate(size uintptr) Block { return Default().Allocate(size) }

// Deallocate releases a block obtained from Allocate.
func Deallocate(b Block) { Default().Deallocate(b) }

// OnExhausted registers a diagnostic hook with the default allocator's
// fatal guard.
func OnExhausted(fn func()) bool { return Default().OnExhausted(fn) }
