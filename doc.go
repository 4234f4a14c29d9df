// Package colt provides hash-based containers over a composable allocator
// framework: Map, an open-addressing hash map with one sentinel byte of
// metadata per slot, and StableSet, a hash index over paginated storage
// whose element addresses survive growth.
//
// Both containers obtain all their storage through the mem package's
// allocator contract; inject one with WithAllocator or let them default to
// mem.Default(). Neither container locks internally: synchronizing
// concurrent mutation is the caller's business.
package colt
