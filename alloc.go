package containers

import "unsafe"

// maxAllocBytes bounds a single element buffer: 1<<47-1 bytes on 64-bit
// platforms, 1<<31-1 on 32-bit ones.
const maxAllocBytes = 1<<(31+16*(^uint(0)>>63)) - 1

// growthFactor is the capacity multiplier applied when a vector overflows.
const growthFactor = 2

// maxLen returns the largest number of T a single buffer may hold.
func maxLen[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return maxAllocBytes
	}
	return int(maxAllocBytes / size)
}

// allocSlots returns a zeroed buffer of exactly n slots.
// It panics with an *AllocError if n exceeds maxLen[T]().
func allocSlots[T any](n int) []T {
	if err := checkAlloc[T](n); err != nil {
		panic(err)
	}
	return make([]T, n)
}

// checkAlloc validates a buffer request of n slots before anything is mutated.
func checkAlloc[T any](n int) error {
	if n < 0 {
		panic("containers: negative size")
	}
	if limit := maxLen[T](); n > limit {
		return &AllocError{Requested: n, Max: limit}
	}
	return nil
}

// growCapacity returns the capacity to reallocate to when a buffer of
// capacity old must hold at least need elements. The result is never
// below need and is clamped to maxLen[T]() when growth would overshoot it.
func growCapacity[T any](old, need int) int {
	newCap := need
	limit := maxLen[T]()
	if old <= limit/growthFactor {
		if doubled := old * growthFactor; doubled > newCap {
			newCap = doubled
		}
	} else if limit > newCap {
		newCap = limit
	}
	return newCap
}
