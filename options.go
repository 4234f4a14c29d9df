package colt

import (
	"hash/maphash"

	"github.com/R533-Code/colt-go/mem"
)

const (
	defaultCapacity   = 16
	capacityStep      = 16
	defaultLoadFactor = 0.70
)

type config[K comparable] struct {
	capacity   int
	loadFactor float64
	alloc      mem.Allocator
	hashFunc   HashFunc[K]
}

// Option configures a container keyed by K at construction time.
type Option[K comparable] func(*config[K])

func makeConfig[K comparable](opts []Option[K]) config[K] {
	cfg := config[K]{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < defaultCapacity {
		cfg.capacity = defaultCapacity
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor >= 1 {
		cfg.loadFactor = defaultLoadFactor
	}
	if cfg.alloc == nil {
		cfg.alloc = mem.Default()
	}
	if cfg.hashFunc == nil {
		cfg.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
	return cfg
}

// WithCapacity pre-sizes the table for at least n slots.
func WithCapacity[K comparable](n int) Option[K] {
	return func(c *config[K]) {
		c.capacity = n
	}
}

// WithLoadFactor overrides the growth trigger; f must sit in (0, 1).
func WithLoadFactor[K comparable](f float64) Option[K] {
	return func(c *config[K]) {
		c.loadFactor = f
	}
}

// WithAllocator injects the allocator backing the container's storage.
func WithAllocator[K comparable](a mem.Allocator) Option[K] {
	return func(c *config[K]) {
		c.alloc = a
	}
}

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(c *config[K]) {
		c.hashFunc = f
	}
}

// InsertResult reports the outcome of an insertion.
type InsertResult uint8

const (
	// InsertSuccess: the key was absent and has been inserted.
	InsertSuccess InsertResult = iota
	// InsertExists: the key was present and the table is unchanged.
	InsertExists
	// InsertAssigned: the key was present and its value was overwritten.
	InsertAssigned
)

func (r InsertResult) String() string {
	switch r {
	case InsertSuccess:
		return "success"
	case InsertExists:
		return "exists"
	case InsertAssigned:
		return "assigned"
	default:
		return "unknown"
	}
}
