package containers

// Iter is a random-access cursor into contiguous storage.
//
// An Iter captures the backing buffer at the moment it is created. After a
// Vector reallocates (PushBack past capacity, Resize above capacity,
// Reserve, ShrinkToFit) every Iter obtained earlier refers to the old buffer
// and must not be used.
//
// Comparing or measuring the distance between cursors of different
// storage is undefined.
type Iter[T any] struct {
	base []T
	pos  int
}

// IterOf returns a cursor at position pos of s. pos may equal len(s),
// which yields the end cursor.
func IterOf[T any](s []T, pos int) Iter[T] {
	return Iter[T]{base: s, pos: pos}
}

// Pos returns the cursor's offset from the start of its storage.
func (it Iter[T]) Pos() int { return it.pos }

// Get dereferences the cursor. Unchecked.
func (it Iter[T]) Get() T { return it.base[it.pos] }

// Set assigns through the cursor. Unchecked.
func (it Iter[T]) Set(v T) { it.base[it.pos] = v }

// Ptr returns a pointer to the element under the cursor.
func (it Iter[T]) Ptr() *T { return &it.base[it.pos] }

// At returns the element k positions away, like it[k].
func (it Iter[T]) At(k int) T { return it.base[it.pos+k] }

// Next returns the cursor advanced by one.
func (it Iter[T]) Next() Iter[T] { return Iter[T]{base: it.base, pos: it.pos + 1} }

// Prev returns the cursor moved back by one.
func (it Iter[T]) Prev() Iter[T] { return Iter[T]{base: it.base, pos: it.pos - 1} }

// Add returns the cursor moved by k, which may be negative.
func (it Iter[T]) Add(k int) Iter[T] { return Iter[T]{base: it.base, pos: it.pos + k} }

// Distance returns it - other in elements.
func (it Iter[T]) Distance(other Iter[T]) int { return it.pos - other.pos }

// Equal reports whether both cursors point at the same position.
func (it Iter[T]) Equal(other Iter[T]) bool { return it.pos == other.pos }

// Less reports whether it precedes other.
func (it Iter[T]) Less(other Iter[T]) bool { return it.pos < other.pos }

// span returns the half-open range [first, last) as a slice aliasing the
// storage of first.
func span[T any](first, last Iter[T]) []T {
	if last.pos <= first.pos {
		return nil
	}
	return first.base[first.pos:last.pos]
}
