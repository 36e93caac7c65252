package containers

import "golang.org/x/exp/constraints"

// Thresholds for the sort's strategy switches.
const (
	// insertionSortThreshold: ranges this size or smaller use insertion sort.
	insertionSortThreshold = 16

	// sampledPivotThreshold: ranges larger than this pick the pivot from
	// five samples instead of three.
	sampledPivotThreshold = 8
)

// Sort sorts [first, last) in place into non-decreasing order under <.
// The sort is not stable.
//
// first and last must come from the same storage with first <= last.
func Sort[T constraints.Ordered](first, last Iter[T]) {
	SortFunc(first, last, func(a, b T) bool { return a < b })
}

// SortFunc sorts [first, last) in place so that no element is less than
// its predecessor under less. less must be a strict weak ordering; if it
// is not, the result is some permutation of the input in an unspecified
// order. The sort is not stable.
//
// The algorithm is an introsort:
//   - Insertion sort for small ranges
//   - Quicksort with a median pivot and 3-way partitioning
//   - Heapsort fallback to guarantee O(n log n) worst case
func SortFunc[T any](first, last Iter[T], less func(a, b T) bool) {
	data := span(first, last)
	n := len(data)
	if n <= 1 {
		return
	}

	// Max recursion depth: 2 * (floor(log2(n)) + 1)
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	introsort(data, less, maxDepth)
}

// IsSorted reports whether [first, last) is in non-decreasing order under <.
func IsSorted[T constraints.Ordered](first, last Iter[T]) bool {
	return IsSortedFunc(first, last, func(a, b T) bool { return a < b })
}

// IsSortedFunc reports whether [first, last) is sorted under less.
func IsSortedFunc[T any](first, last Iter[T], less func(a, b T) bool) bool {
	data := span(first, last)
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

func introsort[T any](data []T, less func(a, b T) bool, depthLimit int) {
	for {
		n := len(data)
		if n <= insertionSortThreshold {
			insertionSort(data, less)
			return
		}

		if depthLimit == 0 {
			heapSort(data, less)
			return
		}
		depthLimit--

		pivot := choosePivot(data, less)
		lt, gt := partition3Way(data, pivot, less)

		// Recurse into the smaller side, loop on the larger one.
		if lt < n-gt {
			introsort(data[:lt], less, depthLimit)
			data = data[gt:]
		} else {
			introsort(data[gt:], less, depthLimit)
			data = data[:lt]
		}
	}
}

func insertionSort[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func heapSort[T any](data []T, less func(a, b T) bool) {
	n := len(data)

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, less)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, less)
	}
}

func siftDown[T any](data []T, i, n int, less func(a, b T) bool) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && less(data[largest], data[left]) {
			largest = left
		}
		if right < n && less(data[largest], data[right]) {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// choosePivot returns the median of first, middle and last, or of five
// evenly spaced samples for larger ranges.
func choosePivot[T any](data []T, less func(a, b T) bool) T {
	n := len(data)
	if n <= sampledPivotThreshold {
		return medianOf3(data[0], data[n/2], data[n-1], less)
	}

	samples := [5]T{
		data[0],
		data[n/4],
		data[n/2],
		data[3*n/4],
		data[n-1],
	}
	insertionSort(samples[:], less)
	return samples[2]
}

func medianOf3[T any](a, b, c T, less func(a, b T) bool) T {
	if less(b, a) {
		a, b = b, a
	}
	if less(c, b) {
		b = c
		if less(b, a) {
			b = a
		}
	}
	return b
}

// partition3Way rearranges data into [< pivot | == pivot | > pivot] and
// returns the bounds of the middle band (Dutch National Flag).
func partition3Way[T any](data []T, pivot T, less func(a, b T) bool) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		if less(data[i], pivot) {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if less(pivot, data[i]) {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}

	return lt, gt
}
