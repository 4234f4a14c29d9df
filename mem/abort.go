package mem

import (
	"fmt"
	"os"
)

// fatalf reports an unrecoverable allocation failure and terminates the
// process. Tests swap it out to observe the path.
var fatalf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// AbortOnNullAllocator converts allocator exhaustion into process
// termination. When the wrapped allocator returns the empty block, every
// registered hook runs once in registration order and the process exits.
// Callers above this allocator never observe a failed allocation.
type AbortOnNullAllocator struct {
	inner    Allocator
	hooks    []func()
	maxHooks int
}

// NewAbortOnNull wraps inner with a fatal guard holding room for at most
// maxHooks diagnostic hooks.
func NewAbortOnNull(inner Allocator, maxHooks int) *AbortOnNullAllocator {
	return &AbortOnNullAllocator{
		inner:    inner,
		hooks:    make([]func(), 0, maxHooks),
		maxHooks: maxHooks,
	}
}

// OnExhausted registers a diagnostic hook to run before termination.
// Registration is append-only and reports false once the hook table is
// full.
func (a *AbortOnNullAllocator) OnExhausted(fn func()) bool {
	if len(a.hooks) >= a.maxHooks {
		return false
	}
	a.hooks = append(a.hooks, fn)
	return true
}

func (a *AbortOnNullAllocator) Allocate(size uintptr) Block {
	b := a.inner.Allocate(size)
	if b.IsNil() {
		for _, fn := range a.hooks {
			fn()
		}
		fatalf("mem: allocation of %d bytes failed, aborting", size)
	}
	return b
}

func (a *AbortOnNullAllocator) Deallocate(b Block) { a.inner.Deallocate(b) }

func (a *AbortOnNullAllocator) Owns(b Block) bool { return owns(a.inner, b) }

var _ OwningAllocator = (*AbortOnNullAllocator)(nil)
