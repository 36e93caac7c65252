package containers

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every error returned from a checked accessor.
	ErrOutOfRange = errors.New("containers: index out of range")

	// ErrAllocation is matched by every allocation failure.
	ErrAllocation = errors.New("containers: allocation failed")
)

// RangeError reports a checked access outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("containers: index %d out of range [0:%d)", e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// AllocError reports a request for more element slots than MaxLen allows.
// Growth paths that cannot return an error panic with an *AllocError.
type AllocError struct {
	Requested int
	Max       int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("containers: cannot allocate %d elements (max %d)", e.Requested, e.Max)
}

// Is reports whether target is ErrAllocation.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocation
}

// checkIndex returns a *RangeError if i is not a valid index for length n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Index: i, Len: n}
	}
	return nil
}
