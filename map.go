package colt

import "iter"

type mapEntry[K comparable, V any] struct {
	key   K
	value V
}

// Map is an open-addressing hash map: one sentinel byte per slot in a
// metadata array parallel to the slot array, linear probing, tombstoned
// deletes. Storage comes from the injected allocator (mem.Default when
// none is given) and growth swaps in fresh arrays, so pointers returned
// by GetRef are only valid until the next growing insertion.
//
// A Map carries no internal locking; concurrent mutation is a data race.
type Map[K comparable, V any] struct {
	t table[K, mapEntry[K, V]]
}

// NewMap returns an empty map.
func NewMap[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	cfg := makeConfig(opts)

	m := &Map[K, V]{}
	m.t.loadFactor = cfg.loadFactor
	m.t.alloc = cfg.alloc
	m.t.hashFunc = cfg.hashFunc
	m.t.keyOf = func(e *mapEntry[K, V]) K { return e.key }
	m.t.entryHash = func(e *mapEntry[K, V]) uint64 { return m.t.hashFunc(e.key) }
	m.t.init(cfg.capacity)

	return m
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.t.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// GetRef returns a pointer to key's value inside the slot array, nil on a
// miss. The pointer is invalidated by the next growing insertion.
func (m *Map[K, V]) GetRef(key K) *V {
	if e := m.t.lookup(key); e != nil {
		return &e.value
	}
	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.find(key).found
}

// Put inserts key/value and reports InsertSuccess, or leaves an existing
// entry untouched and reports InsertExists.
func (m *Map[K, V]) Put(key K, value V) InsertResult {
	return m.t.insert(key, mapEntry[K, V]{key: key, value: value}, false)
}

// Set inserts key/value and reports InsertSuccess, or overwrites an
// existing entry in place and reports InsertAssigned.
func (m *Map[K, V]) Set(key K, value V) InsertResult {
	return m.t.insert(key, mapEntry[K, V]{key: key, value: value}, true)
}

// Delete removes key's entry, leaving a tombstone in its slot.
func (m *Map[K, V]) Delete(key K) bool {
	return m.t.erase(key)
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.t.size }

// Cap returns the current slot count.
func (m *Map[K, V]) Cap() int { return m.t.capacity }

// WillGrow reports whether the next insertion of a new key triggers
// growth.
func (m *Map[K, V]) WillGrow() bool { return m.t.willReallocate() }

// Reserve grows the table until n live entries fit without further
// reallocation. It never shrinks.
func (m *Map[K, V]) Reserve(n int) {
	needed := roundCapacity(int(float64(n)/m.t.loadFactor) + 1)
	if needed > m.t.capacity {
		m.t.rehash(needed)
	}
}

// Reset drops every entry but keeps the storage.
func (m *Map[K, V]) Reset() { m.t.reset() }

// Free returns the map's storage to its allocator. The map must not be
// used afterwards.
func (m *Map[K, V]) Free() { m.t.freeStorage() }

// All yields every entry, skipping empty and tombstoned slots. Mutating
// the map during iteration is undefined.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.t.all() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Stats reports size, capacity and tombstone counts.
func (m *Map[K, V]) Stats() Stats { return m.t.stats() }
