package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeList_WarmReuse(t *testing.T) {
	inner := counting(Mallocator{})
	f := NewFreeList(inner, 32, 128)

	// Warm-up cycle.
	b := f.Allocate(64)
	require.False(t, b.IsNil())
	f.Deallocate(b)
	require.Equal(t, 1, inner.allocs)
	require.Equal(t, 1, f.Cached())

	// Further same-size cycles never reach the wrapped allocator.
	for range 100 {
		b := f.Allocate(64)
		require.False(t, b.IsNil())
		f.Deallocate(b)
	}
	assert.Equal(t, 1, inner.allocs, "warm cycles must not delegate")
	assert.Equal(t, 0, inner.frees)
	assert.Equal(t, 1, f.Cached())
}

func TestFreeList_OutOfBandPassesThrough(t *testing.T) {
	inner := counting(Mallocator{})
	f := NewFreeList(inner, 32, 128)

	small := f.Allocate(16)
	big := f.Allocate(512)
	require.Equal(t, 2, inner.allocs)

	f.Deallocate(small)
	f.Deallocate(big)
	assert.Equal(t, 2, inner.frees)
	assert.Equal(t, 0, f.Cached())
}

func TestFreeList_TopBlockMustCoverRequest(t *testing.T) {
	inner := counting(Mallocator{})
	f := NewFreeList(inner, 32, 128)

	b := f.Allocate(40)
	f.Deallocate(b)

	// The cached 40-byte block cannot serve a 100-byte request.
	big := f.Allocate(100)
	require.False(t, big.IsNil())
	require.EqualValues(t, 100, big.Size())
	assert.Equal(t, 2, inner.allocs)

	// But it still serves a smaller in-band one, keeping its own size.
	reused := f.Allocate(32)
	require.EqualValues(t, 40, reused.Size())
	assert.Equal(t, 2, inner.allocs)
}

func TestFreeList_Release(t *testing.T) {
	inner := counting(Mallocator{})
	f := NewFreeList(inner, 32, 128)

	for range 5 {
		f.Deallocate(inner.inner.Allocate(64))
	}
	require.Equal(t, 5, f.Cached())

	f.Release()
	assert.Equal(t, 0, f.Cached())
	assert.Equal(t, 5, inner.frees)
}

func TestFreeList_OverStack(t *testing.T) {
	// A free list in front of a bump allocator keeps serving after the
	// stack refuses LIFO-violating reclaims.
	stack := NewStack(1024)
	f := NewFreeList(stack, 64, 64)

	b1 := f.Allocate(64)
	b2 := f.Allocate(64)
	f.Deallocate(b1) // out of LIFO order: recycled, not lost
	f.Deallocate(b2)

	used := stack.Used()
	c1 := f.Allocate(64)
	c2 := f.Allocate(64)
	require.False(t, c1.IsNil())
	require.False(t, c2.IsNil())
	assert.Equal(t, used, stack.Used(), "recycled blocks must not consume fresh stack space")
}
