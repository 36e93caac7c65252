package containers

// Vector is a growable sequence backed by one contiguous buffer it owns
// exclusively. Not goroutine-safe.
//
// The zero value is an empty vector ready to use.
//
// Capacity only changes on reallocation. A reallocation happens when
// PushBack, Resize or ResizeFill need more room than Cap(), on Reserve above
// Cap(), and on ShrinkToFit when Cap() > Len(). Each reallocation
// invalidates every slice returned by Data, every pointer returned by Ptr
// and every Iter obtained before it. The vector cannot detect stale
// references; using them reads or writes the abandoned buffer.
type Vector[T any] struct {
	buf      []T // len(buf) is the capacity
	n        int // live elements, buf[:n]
	reallocs int
}

// NewVector returns a vector of n zero-valued elements with capacity n.
// It panics if n is negative, or with an *AllocError if n exceeds MaxLen.
func NewVector[T any](n int) *Vector[T] {
	return &Vector[T]{buf: allocSlots[T](n), n: n}
}

// NewVectorFill returns a vector of n copies of v with capacity n.
func NewVectorFill[T any](n int, v T) *Vector[T] {
	vec := NewVector[T](n)
	for i := range vec.buf {
		vec.buf[i] = v
	}
	return vec
}

// VectorOf returns a vector holding a copy of values, in order, with
// capacity len(values).
func VectorOf[T any](values ...T) *Vector[T] {
	vec := NewVector[T](len(values))
	copy(vec.buf, values)
	return vec
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated slots. Cap() >= Len() always.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// MaxLen returns the largest length any Vector[T] can reach. The value
// depends only on T.
func (v *Vector[T]) MaxLen() int { return maxLen[T]() }

// Empty reports whether Len() is zero.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// Get returns element i. Unchecked: the caller guarantees 0 <= i < Len().
func (v *Vector[T]) Get(i int) T { return v.buf[i] }

// Set assigns element i. Unchecked.
func (v *Vector[T]) Set(i int, x T) { v.buf[i] = x }

// Ptr returns a pointer to element i. Unchecked. The pointer is
// invalidated by the next reallocation.
func (v *Vector[T]) Ptr(i int) *T { return &v.buf[i] }

// At returns element i, or a *RangeError matching ErrOutOfRange when i is
// outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := checkIndex(i, v.n); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// SetAt assigns element i, or returns a *RangeError when i is outside [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if err := checkIndex(i, v.n); err != nil {
		return err
	}
	v.buf[i] = x
	return nil
}

// Front returns the first element. Defined only when Len() > 0.
func (v *Vector[T]) Front() T { return v.buf[0] }

// Back returns the last element. Defined only when Len() > 0.
func (v *Vector[T]) Back() T { return v.buf[v.n-1] }

// Data returns the live elements as a slice aliasing the vector's buffer.
// The slice is invalidated by the next reallocation.
func (v *Vector[T]) Data() []T { return v.buf[:v.n:v.n] }

// PushBack appends x. It reallocates only when Len() == Cap(); the new
// capacity is twice the old one (at least 1), so n appends cost O(n) in
// total. Reallocation invalidates outstanding references.
func (v *Vector[T]) PushBack(x T) {
	if v.n == len(v.buf) {
		v.grow(v.n + 1)
	}
	v.buf[v.n] = x
	v.n++
}

// PopBack removes and returns the last element. Capacity is unchanged.
// Defined only when Len() > 0.
func (v *Vector[T]) PopBack() T {
	v.n--
	x := v.buf[v.n]
	var zero T
	v.buf[v.n] = zero
	return x
}

// Resize sets the length to n. Shrinking releases the trailing elements
// and never reduces capacity. Growing appends zero values and reallocates
// only when n > Cap().
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeFill(n, zero)
}

// ResizeFill is like Resize but new elements are copies of x.
func (v *Vector[T]) ResizeFill(n int, x T) {
	if n < 0 {
		panic("containers: negative size")
	}
	if n <= v.n {
		clear(v.buf[n:v.n])
		v.n = n
		return
	}
	if n > len(v.buf) {
		v.grow(n)
	}
	for i := v.n; i < n; i++ {
		v.buf[i] = x
	}
	v.n = n
}

// Reserve ensures Cap() >= n without changing Len(). Unlike the growth
// paths, it reports an oversized request as an *AllocError instead of
// panicking, and leaves the vector untouched in that case.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if err := checkAlloc[T](n); err != nil {
		return err
	}
	v.realloc(n)
	return nil
}

// ShrinkToFit reduces Cap() to exactly Len(). It is a no-op when they are
// already equal; otherwise the elements move to a buffer of the exact size.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.n {
		return
	}
	v.realloc(v.n)
}

// Clear sets the length to zero and keeps the buffer for reuse.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.n])
	v.n = 0
}

// Clone returns an independent copy whose capacity equals its length.
func (v *Vector[T]) Clone() *Vector[T] {
	return VectorOf(v.buf[:v.n]...)
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Iter[T] { return IterOf(v.buf[:v.n], 0) }

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Iter[T] { return IterOf(v.buf[:v.n], v.n) }

// grow reallocates to hold at least need elements following the growth
// policy. It panics with an *AllocError before touching the vector if need
// cannot be satisfied.
func (v *Vector[T]) grow(need int) {
	if err := checkAlloc[T](need); err != nil {
		panic(err)
	}
	v.realloc(growCapacity[T](len(v.buf), need))
}

// realloc moves the live elements into a new buffer of exactly c slots.
func (v *Vector[T]) realloc(c int) {
	buf := make([]T, c)
	copy(buf, v.buf[:v.n])
	v.buf = buf
	v.reallocs++
}
