package mem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDefault_AllBands(t *testing.T) {
	sizes := []uintptr{
		1, 64, smallBand, // stack-fronted band
		smallBand + 1, 4096, hugeBand, // heap free-list band
		hugeBand + 1, hugeBand * 4, // page band
	}
	for _, size := range sizes {
		b := Allocate(size)
		require.False(t, b.IsNil())
		require.EqualValues(t, size, b.Size())

		bytes := b.Bytes()
		bytes[0] = 0xA5
		bytes[size-1] = 0x5A
		require.Equal(t, byte(0xA5), bytes[0])
		require.Equal(t, byte(0x5A), bytes[size-1])

		Deallocate(b)
	}
}

func TestDefault_OnExhausted(t *testing.T) {
	assert.True(t, OnExhausted(func() {}))
}

func TestDefault_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				b := Allocate(uintptr(1 + i%512))
				if b.IsNil() {
					t.Error("allocation failed")
					return
				}
				b.Bytes()[0] = byte(i)
				Deallocate(b)
			}
		}()
	}
	wg.Wait()
}
