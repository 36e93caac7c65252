package containers

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

// Helper to sort a whole slice through cursors
func sortSlice[T int | int32 | int64 | float64 | string](data []T) {
	Sort(IterOf(data, 0), IterOf(data, len(data)))
}

func TestSortConcrete(t *testing.T) {
	a := VectorOf(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	b := VectorOf(9, 8, 7, 6, 5, 4, 3, 2, 1)
	sorted := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	Sort(a.Begin(), a.End())
	Sort(b.Begin(), b.End())

	if diff := cmp.Diff(sorted, a.Data()); diff != "" {
		t.Errorf("Sort(a) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sorted[:9], b.Data()); diff != "" {
		t.Errorf("Sort(b) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncInverse(t *testing.T) {
	a := VectorOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	want := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	SortFunc(a.Begin(), a.End(), func(x, y int) bool { return x > y })

	if diff := cmp.Diff(want, a.Data()); diff != "" {
		t.Errorf("SortFunc(inverse) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortArray(t *testing.T) {
	a := ArrayOf(3.5, -1, 2, 0, 2)
	Sort(a.Begin(), a.End())
	if diff := cmp.Diff([]float64{-1, 0, 2, 2, 3.5}, a.Data()); diff != "" {
		t.Errorf("Sort(array) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	var empty Vector[int]
	Sort(empty.Begin(), empty.End())
	if empty.Len() != 0 {
		t.Errorf("Sort(empty) changed length to %d", empty.Len())
	}

	single := VectorOf(42)
	Sort(single.Begin(), single.End())
	if single.Front() != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", single.Data())
	}

	zero := NewArray[string](0)
	Sort(zero.Begin(), zero.End())
}

func TestSortPatterns(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 9, 15, 16, 17, 31, 32, 63, 64, 100, 256, 1000}
	patterns := map[string]func(n int) []int{
		"sorted": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			return s
		},
		"reverse": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = n - i
			}
			return s
		},
		"allSame": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = 5
			}
			return s
		},
		"sawtooth": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i % 7
			}
			return s
		},
		"organPipe": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = min(i, n-i)
			}
			return s
		},
	}

	for name, gen := range patterns {
		t.Run(name, func(t *testing.T) {
			for _, n := range sizes {
				data := gen(n)
				want := slices.Clone(data)
				slices.Sort(want)

				sortSlice(data)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Errorf("n=%d mismatch (-want +got):\n%s", n, diff)
				}
			}
		})
	}
}

func TestSortRandomMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 10000}

	for _, n := range sizes {
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(10000) - 5000
		}
		want := slices.Clone(data)
		slices.Sort(want)

		sortSlice(data)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("Sort(random int64, n=%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple", "cherry"}
	sortSlice(data)
	want := []string{"apple", "apple", "banana", "cherry", "fig", "pear"}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Sort(strings) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncStructs(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	rng := rand.New(rand.NewSource(7))
	v := NewVector[item](0)
	for i := 0; i < 500; i++ {
		v.PushBack(item{key: rng.Intn(50), name: "x"})
	}

	less := func(a, b item) bool { return a.key < b.key }
	SortFunc(v.Begin(), v.End(), less)

	if !IsSortedFunc(v.Begin(), v.End(), less) {
		t.Error("SortFunc(structs) produced unsorted result")
	}
	if v.Len() != 500 {
		t.Errorf("Len() after SortFunc = %d, want 500", v.Len())
	}
}

func TestSortSubrange(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	begin := IterOf(data, 0)

	Sort(begin.Add(2), begin.Add(7))

	want := []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Sort(subrange) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	data := make([]int, 2000)
	for i := range data {
		data[i] = rng.Intn(100)
	}

	counts := make(map[int]int)
	for _, x := range data {
		counts[x]++
	}

	sortSlice(data)
	for _, x := range data {
		counts[x]--
	}
	for k, c := range counts {
		if c != 0 {
			t.Errorf("value %d count changed by %d", k, -c)
		}
	}
	if !IsSorted(IterOf(data, 0), IterOf(data, len(data))) {
		t.Error("Sort produced unsorted result")
	}
}

func TestSortBadComparator(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	comparators := map[string]func(a, b int) bool{
		"reflexive":  func(a, b int) bool { return a <= b },
		"alwaysTrue": func(a, b int) bool { return true },
		"random":     func(a, b int) bool { return rng.Intn(2) == 0 },
	}

	for name, less := range comparators {
		t.Run(name, func(t *testing.T) {
			data := make([]int, 1000)
			for i := range data {
				data[i] = i % 13
			}
			want := slices.Clone(data)

			// Must terminate without panicking and keep every element.
			SortFunc(IterOf(data, 0), IterOf(data, len(data)), less)

			slices.Sort(want)
			got := slices.Clone(data)
			slices.Sort(got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("result is not a permutation (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortNaN(t *testing.T) {
	data := []float64{3, math.NaN(), 1, 2, math.NaN(), 0}
	Sort(IterOf(data, 0), IterOf(data, len(data)))
	if len(data) != 6 {
		t.Errorf("len after Sort = %d, want 6", len(data))
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{1}, true},
		{"sorted", []int{1, 2, 2, 3}, true},
		{"unsorted", []int{1, 3, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSorted(IterOf(tt.data, 0), IterOf(tt.data, len(tt.data)))
			if got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestHeapSort(t *testing.T) {
	data := []int{5, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	heapSort(data, func(a, b int) bool { return a < b })
	if !slices.IsSorted(data) {
		t.Errorf("heapSort produced unsorted result: %v", data)
	}
}

func TestPartition3Way(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	pivot := 5

	lt, gt := partition3Way(data, pivot, func(a, b int) bool { return a < b })

	for i := 0; i < lt; i++ {
		if data[i] >= pivot {
			t.Errorf("data[%d]=%d should be < pivot %d", i, data[i], pivot)
		}
	}
	for i := lt; i < gt; i++ {
		if data[i] != pivot {
			t.Errorf("data[%d]=%d should be == pivot %d", i, data[i], pivot)
		}
	}
	for i := gt; i < len(data); i++ {
		if data[i] <= pivot {
			t.Errorf("data[%d]=%d should be > pivot %d", i, data[i], pivot)
		}
	}
}

func TestMedianOf3(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	perms := [][3]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}
	for _, p := range perms {
		if got := medianOf3(p[0], p[1], p[2], less); got != 2 {
			t.Errorf("medianOf3(%v) = %d, want 2", p, got)
		}
	}
}
