package colt

import (
	"iter"

	"github.com/R533-Code/colt-go/mem"
)

// table is the open-addressing core shared by Map and StableSet: a byte of
// sentinel metadata per slot in one array, the entries in a parallel array
// of the same length, linear probing, tombstoned deletes. Both arrays live
// in allocator storage and growth always swaps in fresh arrays.
//
// The core knows nothing about the entry layout beyond the two accessors:
// keyOf extracts the key an entry answers to, entryHash recovers an
// entry's full hash during rehashing.
type table[K comparable, E any] struct {
	meta  mem.TypedBlock[sentinel]
	slots mem.TypedBlock[E]

	capacity   int
	size       int
	loadFactor float64

	alloc    mem.Allocator
	hashFunc HashFunc[K]

	keyOf     func(*E) K
	entryHash func(*E) uint64
}

// init allocates the initial arrays. Must follow the field setup done by
// the facade constructors.
func (t *table[K, E]) init(capacity int) {
	t.rehash(capacity)
}

// willReallocate reports whether the next insertion triggers growth:
// size+1 > loadFactor * capacity.
func (t *table[K, E]) willReallocate() bool {
	return float64(t.size+1) > t.loadFactor*float64(t.capacity)
}

// reserve grows by the fixed capacity step when the next insertion would
// cross the load factor. Runs before the final slot is located, so the
// slot is always probed in the arrays it will live in.
func (t *table[K, E]) reserve() {
	if t.willReallocate() {
		t.rehash(t.capacity + capacityStep)
	}
}

type probeResult struct {
	index int
	found bool
}

// findKey probes linearly from hash mod capacity. When found is false the
// index is the insertion candidate: the first tombstone crossed, else the
// empty slot that ended the probe. Tombstones never terminate the probe;
// only an empty sentinel does.
func (t *table[K, E]) findKey(hash uint64, key K) probeResult {
	meta := t.meta.Slice()
	slots := t.slots.Slice()
	_, tag := HashSplit(hash)

	idx := int(hash % uint64(t.capacity))
	candidate := -1

	for range t.capacity {
		s := meta[idx]
		switch {
		case s.isEmpty():
			if candidate < 0 {
				candidate = idx
			}
			return probeResult{index: candidate}
		case s.isDeleted():
			if candidate < 0 {
				candidate = idx
			}
		case s.matches(tag):
			if t.keyOf(&slots[idx]) == key {
				return probeResult{index: idx, found: true}
			}
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	// The load factor keeps at least one empty slot around, so a full lap
	// without termination still crossed a tombstone.
	return probeResult{index: candidate}
}

// find hashes key and probes for it.
func (t *table[K, E]) find(key K) probeResult {
	return t.findKey(t.hashFunc(key), key)
}

// lookup returns the entry stored for key, nil on a miss.
func (t *table[K, E]) lookup(key K) *E {
	res := t.find(key)
	if !res.found {
		return nil
	}
	return &t.slots.Slice()[res.index]
}

// occupy constructs e in the vacant slot idx and activates its sentinel
// with the hash's low 7 bits.
func (t *table[K, E]) occupy(idx int, hash uint64, e E) {
	_, tag := HashSplit(hash)
	t.meta.Slice()[idx] = activeSentinel(tag)
	t.slots.Slice()[idx] = e
	t.size++
}

// insert adds e under key, growing first when needed. With assign false an
// existing key is left untouched and InsertExists reported; with assign
// true its entry is overwritten in place and InsertAssigned reported.
func (t *table[K, E]) insert(key K, e E, assign bool) InsertResult {
	t.reserve()

	hash := t.hashFunc(key)
	res := t.findKey(hash, key)
	if res.found {
		if !assign {
			return InsertExists
		}
		t.slots.Slice()[res.index] = e
		return InsertAssigned
	}

	t.occupy(res.index, hash, e)
	return InsertSuccess
}

// eraseAt destroys the entry at idx and tombstones its sentinel. The
// sentinel never returns to empty here: probe sequences for other keys
// must keep walking past this slot.
func (t *table[K, E]) eraseAt(idx int) {
	var zero E
	t.slots.Slice()[idx] = zero
	t.meta.Slice()[idx] = sentinelDeleted
	t.size--
}

// erase removes key's entry if present.
func (t *table[K, E]) erase(key K) bool {
	res := t.find(key)
	if !res.found {
		return false
	}
	t.eraseAt(res.index)
	return true
}

// rehash swaps in fresh arrays of the given capacity and migrates every
// active entry, probing the NEW arrays for each destination. Tombstones
// are dropped, not carried over.
func (t *table[K, E]) rehash(newCapacity int) {
	newCapacity = roundCapacity(newCapacity)

	oldMeta, oldSlots, oldCapacity := t.meta, t.slots, t.capacity

	t.meta = mem.AllocSlice[sentinel](t.alloc, newCapacity)
	t.slots = mem.AllocSlice[E](t.alloc, newCapacity)
	t.capacity = newCapacity

	meta := t.meta.Slice()
	for i := range meta {
		meta[i] = sentinelEmpty
	}

	if oldCapacity == 0 {
		return
	}

	slots := t.slots.Slice()
	om, os := oldMeta.Slice(), oldSlots.Slice()
	for i := range oldCapacity {
		if !om[i].isActive() {
			continue
		}
		hash := t.entryHash(&os[i])

		// All migrating keys are distinct and the new arrays hold no
		// tombstones, so the first empty slot is the destination.
		idx := int(hash % uint64(newCapacity))
		for !meta[idx].isEmpty() {
			idx++
			if idx == newCapacity {
				idx = 0
			}
		}

		_, tag := HashSplit(hash)
		meta[idx] = activeSentinel(tag)
		slots[idx] = os[i]
	}

	mem.FreeSlice(t.alloc, oldMeta)
	mem.FreeSlice(t.alloc, oldSlots)
}

// reset drops every entry but keeps the arrays.
func (t *table[K, E]) reset() {
	meta := t.meta.Slice()
	slots := t.slots.Slice()
	var zero E
	for i := range meta {
		if meta[i].isActive() {
			slots[i] = zero
		}
		meta[i] = sentinelEmpty
	}
	t.size = 0
}

// freeStorage returns both arrays to the allocator. The table is unusable
// afterwards until init runs again.
func (t *table[K, E]) freeStorage() {
	mem.FreeSlice(t.alloc, t.meta)
	mem.FreeSlice(t.alloc, t.slots)
	t.meta = mem.TypedBlock[sentinel]{}
	t.slots = mem.TypedBlock[E]{}
	t.capacity = 0
	t.size = 0
}

// tombstones counts deleted sentinels.
func (t *table[K, E]) tombstones() int {
	n := 0
	for _, s := range t.meta.Slice() {
		if s.isDeleted() {
			n++
		}
	}
	return n
}

// all yields a pointer to every active entry in storage order.
func (t *table[K, E]) all() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		meta := t.meta.Slice()
		slots := t.slots.Slice()
		for i := range meta {
			if meta[i].isActive() && !yield(&slots[i]) {
				return
			}
		}
	}
}

func (t *table[K, E]) stats() Stats {
	tombs := t.tombstones()
	st := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		Tombstones: tombs,
	}
	if t.capacity > 0 {
		st.TombstonesCapacityRatio = float32(tombs) / float32(t.capacity)
	}
	if t.size > 0 {
		st.TombstonesSizeRatio = float32(tombs) / float32(t.size)
	}
	return st
}
