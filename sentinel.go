package colt

// sentinel is the one-byte state of a table slot: empty, deleted
// (tombstone) or active carrying the low 7 bits of the key's hash. Active
// bytes have the high bit clear, so tag comparison can never match an
// empty or deleted slot.
type sentinel uint8

const (
	sentinelEmpty   sentinel = 0x80
	sentinelDeleted sentinel = 0xFE

	sentinelTagMask = 0x7F
)

func activeSentinel(tag uint8) sentinel {
	return sentinel(tag & sentinelTagMask)
}

func (s sentinel) isActive() bool  { return s&0x80 == 0 }
func (s sentinel) isEmpty() bool   { return s == sentinelEmpty }
func (s sentinel) isDeleted() bool { return s == sentinelDeleted }

// tag returns the cached hash bits of an active sentinel.
func (s sentinel) tag() uint8 { return uint8(s) & sentinelTagMask }

// matches tests an active sentinel's cached tag by masked equality.
func (s sentinel) matches(tag uint8) bool {
	return s.isActive() && s.tag() == tag&sentinelTagMask
}
