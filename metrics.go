package vec

// Stats contains statistical information about a vector's storage.
type Stats struct {
	Len         int     // live elements
	Cap         int     // cells the current storage can hold
	Growths     int     // storage replacements since creation
	Utilization float64 // ratio of live elements to capacity (0.0-1.0)
}

// Growths returns how many times the vector has replaced its storage,
// through organic growth or a growing Reserve.
func (v *Vector[T]) Growths() int {
	return v.growths
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no allocation.
func (v *Vector[T]) Utilization() float64 {
	if v.buf.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.buf.Cap())
}

// Stats returns a snapshot of vector storage statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.size,
		Cap:         v.buf.Cap(),
		Growths:     v.growths,
		Utilization: v.Utilization(),
	}
}
