package colt

// Stats is a point-in-time snapshot of a table's occupancy.
type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
