package containers

// Array holds exactly N elements of T. N is chosen at construction and no
// method changes it; the backing buffer is allocated once and never
// reallocated, so slices from Data and cursors from Begin/End stay valid
// for the lifetime of the Array.
type Array[T any] struct {
	data []T
}

// NewArray returns an Array of n zero-valued elements.
// It panics if n is negative.
func NewArray[T any](n int) *Array[T] {
	return &Array[T]{data: allocSlots[T](n)}
}

// ArrayOf returns an Array holding a copy of values, in order.
func ArrayOf[T any](values ...T) *Array[T] {
	a := NewArray[T](len(values))
	copy(a.data, values)
	return a
}

// Len returns N.
func (a *Array[T]) Len() int { return len(a.data) }

// MaxLen returns N. An Array can never hold more than it was built with.
func (a *Array[T]) MaxLen() int { return len(a.data) }

// Empty reports whether N is zero.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Get returns element i without a library bounds check.
// The caller guarantees 0 <= i < Len().
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set assigns element i without a library bounds check.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Ptr returns a pointer to element i without a library bounds check.
func (a *Array[T]) Ptr(i int) *T { return &a.data[i] }

// At returns element i, or a *RangeError matching ErrOutOfRange when
// i is outside [0, Len()). Every index is out of range when N is zero.
func (a *Array[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(a.data)); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// SetAt assigns element i, or returns a *RangeError when i is outside [0, Len()).
func (a *Array[T]) SetAt(i int, v T) error {
	if err := checkIndex(i, len(a.data)); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Front returns the first element. Defined only when N > 0.
func (a *Array[T]) Front() T { return a.data[0] }

// Back returns the last element. Defined only when N > 0.
func (a *Array[T]) Back() T { return a.data[len(a.data)-1] }

// Data returns a slice of exactly N elements aliasing the array's storage.
// Writes through it are visible in the array and vice versa.
func (a *Array[T]) Data() []T { return a.data }

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() Iter[T] { return IterOf(a.data, 0) }

// End returns a cursor one past the last element.
func (a *Array[T]) End() Iter[T] { return IterOf(a.data, len(a.data)) }
