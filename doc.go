// Package containers implements a fixed-length array, a growable vector and
// an in-place introsort for Go.
//
// # Overview
//
// The package provides three independent pieces that meet only through
// the Iter cursor type:
//
//   - Array[T]: exactly N elements, N fixed when the array is built
//   - Vector[T]: a contiguous buffer with explicit capacity management
//   - Sort / SortFunc: an O(n log n) comparison sort over [first, last)
//
// # Basic Usage
//
//	v := containers.VectorOf(10, 9, 8, 7)
//	v.PushBack(6)
//	containers.Sort(v.Begin(), v.End())
//
//	// Checked access
//	x, err := v.At(7)
//	if errors.Is(err, containers.ErrOutOfRange) {
//		// handle
//	}
//
//	// Release slack capacity
//	v.Resize(2)
//	v.ShrinkToFit()
//
// # Checked and Unchecked Access
//
// Get, Set, Ptr, Front and Back perform no library bounds checks; an
// invalid index is a caller bug. At and SetAt validate the index and
// return a *RangeError matching ErrOutOfRange.
//
// # Capacity
//
// A Vector grows by doubling when an append or resize overflows its
// capacity, giving amortized O(1) PushBack. Shrinking the length never
// shrinks the capacity; ShrinkToFit does that explicitly.
//
// A request above MaxLen fails before the vector is modified. Reserve
// returns the failure as an *AllocError; PushBack, Resize and the
// constructors panic with it. Running out of memory is fatal in Go and
// cannot be recovered.
//
// # Important Notes
//
//   - Reallocation invalidates slices from Data, pointers from Ptr and
//     every Iter obtained earlier
//   - Containers are not goroutine-safe
//   - Sort is not stable
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package containers
