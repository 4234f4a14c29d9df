package colt

import "iter"

type setEntry[T comparable] struct {
	hash uint64
	ref  *T
}

// StableSet is a hash set whose element addresses survive growth. The
// index slots store only (hash, pointer) pairs; the values themselves live
// in a paginated list that never moves an element once placed, so growing
// and rehashing the index shuffles pointers, never data. Elements stay
// addressable in insertion order through At.
//
// A StableSet carries no internal locking; concurrent mutation is a data
// race.
type StableSet[T comparable] struct {
	t    table[T, setEntry[T]]
	list stableList[T]
}

// NewStableSet returns an empty set.
func NewStableSet[T comparable](opts ...Option[T]) *StableSet[T] {
	cfg := makeConfig(opts)

	s := &StableSet[T]{}
	s.t.loadFactor = cfg.loadFactor
	s.t.alloc = cfg.alloc
	s.t.hashFunc = cfg.hashFunc
	s.t.keyOf = func(e *setEntry[T]) T { return *e.ref }
	s.t.entryHash = func(e *setEntry[T]) uint64 { return e.hash }
	s.t.init(cfg.capacity)
	s.list.alloc = cfg.alloc

	return s
}

// Insert adds v and returns its stable address, which later insertions and
// index growth never invalidate. An existing element reports InsertExists
// and its original address.
func (s *StableSet[T]) Insert(v T) (*T, InsertResult) {
	s.t.reserve()

	hash := s.t.hashFunc(v)
	res := s.t.findKey(hash, v)
	if res.found {
		return s.t.slots.Slice()[res.index].ref, InsertExists
	}

	ref := s.list.append(v)
	s.t.occupy(res.index, hash, setEntry[T]{hash: hash, ref: ref})

	return ref, InsertSuccess
}

// Contains reports whether v is in the set.
func (s *StableSet[T]) Contains(v T) bool {
	return s.t.find(v).found
}

// Find returns the stored element's address, nil when absent.
func (s *StableSet[T]) Find(v T) *T {
	if e := s.t.lookup(v); e != nil {
		return e.ref
	}
	return nil
}

// Erase removes v: its index slot is tombstoned and its list cell marked
// dead. Later At calls for that position return nil; no other address is
// disturbed.
func (s *StableSet[T]) Erase(v T) bool {
	res := s.t.find(v)
	if !res.found {
		return false
	}

	ref := s.t.slots.Slice()[res.index].ref
	s.t.eraseAt(res.index)
	s.list.kill(ref)

	return true
}

// At returns the address of the i-th inserted element, nil if that element
// was erased. i counts insertions from 0, erased ones included, and must
// be below Appended. Independent of index rehashing.
func (s *StableSet[T]) At(i int) *T {
	return s.list.at(i)
}

// Len returns the number of live elements.
func (s *StableSet[T]) Len() int { return s.t.size }

// Appended returns the number of insertions ever made, erased elements
// included: the exclusive upper bound for At.
func (s *StableSet[T]) Appended() int { return s.list.appended }

// Cap returns the index's current slot count.
func (s *StableSet[T]) Cap() int { return s.t.capacity }

// WillGrow reports whether the next insertion of a new element grows the
// index.
func (s *StableSet[T]) WillGrow() bool { return s.t.willReallocate() }

// All yields the live elements in insertion order.
func (s *StableSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.list.walk(func(p *T) bool { return yield(*p) })
	}
}

// Reset drops every element but keeps index and page storage.
func (s *StableSet[T]) Reset() {
	s.t.reset()
	s.list.reset()
}

// Free returns all storage to the allocator. The set must not be used
// afterwards.
func (s *StableSet[T]) Free() {
	s.t.freeStorage()
	s.list.free()
}

// Stats reports index size, capacity and tombstone counts.
func (s *StableSet[T]) Stats() Stats { return s.t.stats() }
