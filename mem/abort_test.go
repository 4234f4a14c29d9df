package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trapFatal swaps the process-termination path for a panic so the test
// can observe it, and restores it on cleanup.
func trapFatal(t *testing.T) {
	t.Helper()
	prev := fatalf
	fatalf = func(format string, args ...any) {
		panic(fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { fatalf = prev })
}

func TestAbortOnNull_PassesThroughOnSuccess(t *testing.T) {
	trapFatal(t)
	a := NewAbortOnNull(Mallocator{}, 4)

	ran := false
	require.True(t, a.OnExhausted(func() { ran = true }))

	b := a.Allocate(64)
	require.False(t, b.IsNil())
	assert.False(t, ran, "hooks must not run on successful allocations")

	a.Deallocate(b)
}

func TestAbortOnNull_AbortsOnExhaustion(t *testing.T) {
	trapFatal(t)
	a := NewAbortOnNull(NullAllocator{}, 4)

	assert.PanicsWithValue(t, "mem: allocation of 32 bytes failed, aborting", func() {
		a.Allocate(32)
	})
}

func TestAbortOnNull_HooksRunInOrder(t *testing.T) {
	trapFatal(t)
	a := NewAbortOnNull(NullAllocator{}, 4)

	var order []int
	for i := range 3 {
		require.True(t, a.OnExhausted(func() { order = append(order, i) }))
	}

	assert.Panics(t, func() { a.Allocate(1) })
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestAbortOnNull_HookTableFull(t *testing.T) {
	a := NewAbortOnNull(Mallocator{}, 2)

	require.True(t, a.OnExhausted(func() {}))
	require.True(t, a.OnExhausted(func() {}))
	assert.False(t, a.OnExhausted(func() {}))
}

func TestAbortOnNull_Owns(t *testing.T) {
	stack := NewStack(128)
	a := NewAbortOnNull(stack, 0)

	b := a.Allocate(32)
	assert.True(t, a.Owns(b))
	assert.False(t, a.Owns(Block{}))
}
