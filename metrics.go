package containers

// Reallocations returns how many times the vector has replaced its buffer.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.n) / float64(len(v.buf))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		MaxLen:        v.MaxLen(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	MaxLen        int     // Upper bound for the element type
	Reallocations int     // Buffer replacements so far
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
