package colt

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc produces the 64-bit hash of a key.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc builds the default hasher over hash/maphash with the
// given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// HashString hashes a string with xxhash. Deterministic across processes,
// unlike the seeded default; useful with WithHashFunc when reproducible
// layouts are wanted.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

// HashBytes hashes raw bytes with xxhash.
func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// HashSplit separates a hash into the probe-position part and the 7-bit
// tag cached in an active sentinel.
func HashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
