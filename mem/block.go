package mem

import "unsafe"

// Block describes one raw allocation: an untyped pointer and its byte
// length. Blocks are produced only by allocators and released by exactly
// one matching Deallocate call. The length is authoritative and must not
// be altered by the holder.
type Block struct {
	ptr  unsafe.Pointer
	size uintptr

	// gcManaged marks storage handed out by the Go heap on behalf of a
	// pointer-carrying element type. Such blocks must never be recycled as
	// raw bytes; FreeSlice drops them instead of pushing them down the tree.
	gcManaged bool
}

// Ptr returns the start of the block, nil for the empty block.
func (b Block) Ptr() unsafe.Pointer { return b.ptr }

// Size returns the block's byte length.
func (b Block) Size() uintptr { return b.size }

// IsNil reports whether the block is empty, the failure value of Allocate.
func (b Block) IsNil() bool { return b.ptr == nil }

// Bytes views the block as a byte slice of its full length.
func (b Block) Bytes() []byte {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.size)
}

// TypedBlock views a Block as storage for count values of T. It does not
// imply any T has been constructed there; writing the elements is the
// holder's business.
type TypedBlock[T any] struct {
	raw   Block
	count int
}

// AsTyped reinterprets a raw block; the element count is derived from the
// byte length.
func AsTyped[T any](b Block) TypedBlock[T] {
	esz := unsafe.Sizeof(*new(T))
	if b.IsNil() || esz == 0 {
		return TypedBlock[T]{raw: b}
	}
	return TypedBlock[T]{raw: b, count: int(b.size / esz)}
}

// Raw returns the underlying block.
func (tb TypedBlock[T]) Raw() Block { return tb.raw }

// IsNil reports whether the view holds no storage.
func (tb TypedBlock[T]) IsNil() bool { return tb.raw.IsNil() }

// Len returns the element capacity of the view.
func (tb TypedBlock[T]) Len() int { return tb.count }

// Slice views the storage as a []T of Len elements.
func (tb TypedBlock[T]) Slice() []T {
	if tb.raw.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(tb.raw.ptr), tb.count)
}

// First returns the address of element 0, nil for the empty view.
func (tb TypedBlock[T]) First() *T {
	if tb.raw.ptr == nil {
		return nil
	}
	return (*T)(tb.raw.ptr)
}
