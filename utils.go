package colt

// roundCapacity rounds n up to the capacity grid: a multiple of the
// fixed growth step, never below the default capacity.
func roundCapacity(n int) int {
	if n < defaultCapacity {
		return defaultCapacity
	}
	return (n + capacityStep - 1) / capacityStep * capacityStep
}
