package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_PrimaryFirst(t *testing.T) {
	stack := NewStack(128)
	f := NewFallback(stack, Mallocator{})

	b := f.Allocate(64)
	require.False(t, b.IsNil())
	assert.True(t, stack.Owns(b))
}

func TestFallback_FallsBackOnExhaustion(t *testing.T) {
	stack := NewStack(128)
	f := NewFallback(stack, Mallocator{})

	b1 := f.Allocate(128)
	require.False(t, b1.IsNil())
	require.True(t, stack.Owns(b1))

	// Stack is full: the heap serves the next request.
	b2 := f.Allocate(64)
	require.False(t, b2.IsNil())
	assert.False(t, stack.Owns(b2))
}

func TestFallback_DeallocateRoutesByOwnership(t *testing.T) {
	stack := NewStack(128)
	f := NewFallback(stack, Mallocator{})

	b := f.Allocate(64)
	require.True(t, stack.Owns(b))

	f.Deallocate(b)
	assert.Zero(t, stack.Used(), "owned block must be returned to the primary")
}

func TestFallback_NullPrimary(t *testing.T) {
	f := NewFallback(NullAllocator{}, Mallocator{})

	b := f.Allocate(32)
	require.False(t, b.IsNil())
	assert.False(t, f.primary.Owns(b))

	f.Deallocate(b)
}

func TestFallback_Owns(t *testing.T) {
	stack := NewStack(128)
	f := NewFallback(stack, NullAllocator{})

	b := f.Allocate(32)
	assert.True(t, f.Owns(b))
	assert.False(t, f.Owns(Block{}))
}
