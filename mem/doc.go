// Package mem provides a composable allocator framework: small policy
// primitives that assemble into a process-wide allocation strategy.
//
// # Capability contract
//
// Every allocator satisfies the same minimal contract:
//
//   - Allocate(size) returns a Block, the empty Block signalling failure.
//     Allocate never panics.
//   - Deallocate(block) releases a block previously produced by the same
//     allocator. Releasing a block twice is undefined.
//   - Owns(block), where implemented, answers membership queries. It is
//     required of the primary side of a Fallback composition.
//
// # Primitives
//
// NullAllocator refuses everything. Mallocator delegates to the Go heap.
// StackAllocator bump-allocates out of one fixed buffer with strict LIFO
// reclamation. PageAllocator maps whole pages from the kernel.
//
// # Policies
//
// FreeList recycles same-band blocks, FallbackAllocator chains a primary
// and a secondary, Segregator routes by request size, ThreadSafeAllocator
// serializes access behind one mutex, and AbortOnNullAllocator converts
// exhaustion into process termination after running registered diagnostic
// hooks.
//
// # Default composition
//
// Default() builds one tree out of the above on first use: small requests
// through a stack-buffer front with a free list, medium requests through a
// free list over the heap, huge requests straight to pages, the whole tree
// wrapped in a mutex and the fatal guard. The free functions Allocate and
// Deallocate bind to it. Containers accept any Allocator by injection and
// fall back to Default() only when none is given.
//
// # Typed layer
//
// New, NewWith, Delete, AllocSlice and FreeSlice put construction and
// release in one place. Element types that embed Go pointers are backed by
// collector-visible storage instead of raw allocator bytes; pointer-free
// types are carved straight out of blocks.
//
// # Thread safety
//
// Apart from ThreadSafeAllocator, allocators are not safe for concurrent
// use. Callers synchronize externally or place a ThreadSafeAllocator in the
// composition.
package mem
