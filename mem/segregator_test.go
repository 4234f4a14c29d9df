package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegregator_RoutesBySize(t *testing.T) {
	small := counting(Mallocator{})
	large := counting(Mallocator{})
	s := NewSegregator(256, small, large)

	require.False(t, s.Allocate(256).IsNil())
	assert.Equal(t, 1, small.allocs)
	assert.Equal(t, 0, large.allocs)

	require.False(t, s.Allocate(257).IsNil())
	assert.Equal(t, 1, small.allocs)
	assert.Equal(t, 1, large.allocs)
}

func TestSegregator_DeallocateRoutesByBlockSize(t *testing.T) {
	small := counting(Mallocator{})
	large := counting(Mallocator{})
	s := NewSegregator(256, small, large)

	bs := s.Allocate(100)
	bl := s.Allocate(1000)

	s.Deallocate(bl)
	s.Deallocate(bs)
	assert.Equal(t, 1, small.frees)
	assert.Equal(t, 1, large.frees)

	s.Deallocate(Block{}) // the empty block routes nowhere
	assert.Equal(t, 1, small.frees)
	assert.Equal(t, 1, large.frees)
}

func TestSegregator_Owns(t *testing.T) {
	stack := NewStack(512)
	s := NewSegregator(256, stack, Mallocator{})

	b := s.Allocate(64)
	assert.True(t, s.Owns(b))

	big := s.Allocate(1024)
	assert.False(t, s.Owns(big), "heap branch cannot answer ownership")
}
