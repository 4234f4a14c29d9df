package mem

import (
	"reflect"
	"unsafe"
)

// hasPointers reports whether values of type t embed pointers the
// collector must keep tracing.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func typeHasPointers[T any]() bool {
	return hasPointers(reflect.TypeFor[T]())
}

// AllocSlice obtains storage for n values of T through a. Pointer-free
// element types are carved out of raw allocator bytes and zeroed; types
// that embed Go pointers are backed by collector-visible heap storage
// instead, since the collector does not scan raw blocks.
func AllocSlice[T any](a Allocator, n int) TypedBlock[T] {
	if n <= 0 {
		return TypedBlock[T]{}
	}
	esz := unsafe.Sizeof(*new(T))
	if esz == 0 || typeHasPointers[T]() {
		s := make([]T, n)
		return TypedBlock[T]{
			raw: Block{
				ptr:       unsafe.Pointer(unsafe.SliceData(s)),
				size:      esz * uintptr(n),
				gcManaged: true,
			},
			count: n,
		}
	}
	b := a.Allocate(esz * uintptr(n))
	if b.IsNil() {
		return TypedBlock[T]{}
	}
	// Recycled blocks arrive dirty.
	clear(unsafe.Slice((*T)(b.ptr), n))
	return TypedBlock[T]{raw: b, count: n}
}

// FreeSlice returns slice storage to a. Heap-backed blocks are dropped for
// the collector instead.
func FreeSlice[T any](a Allocator, tb TypedBlock[T]) {
	if tb.IsNil() || tb.raw.gcManaged {
		return
	}
	a.Deallocate(tb.raw)
}

// New allocates storage for one zeroed T from a. The returned view is the
// handle Delete takes back; a nil pointer signals exhaustion of an
// injected, non-aborting allocator.
func New[T any](a Allocator) (*T, TypedBlock[T]) {
	tb := AllocSlice[T](a, 1)
	return tb.First(), tb
}

// NewWith allocates a T and runs init on it. If init fails the storage is
// released before the error is returned, so a failed construction never
// leaks its block.
func NewWith[T any](a Allocator, init func(*T) error) (*T, TypedBlock[T], error) {
	ptr, tb := New[T](a)
	if ptr == nil {
		return nil, tb, ErrExhausted
	}
	if err := init(ptr); err != nil {
		FreeSlice(a, tb)
		return nil, TypedBlock[T]{}, err
	}
	return ptr, tb, nil
}

// Delete releases an object's storage and empties the handle so a stale
// copy is caught as a nil dereference rather than silent reuse. Under the
// coltdebug tag the freed bytes are poisoned first.
func Delete[T any](a Allocator, tb *TypedBlock[T]) {
	if tb == nil || tb.IsNil() {
		return
	}
	if debugChecks && !tb.raw.gcManaged {
		bytes := tb.raw.Bytes()
		for i := range bytes {
			bytes[i] = 0xDD
		}
	}
	FreeSlice(a, *tb)
	*tb = TypedBlock[T]{}
}
