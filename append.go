package vec

import "github.com/pavanmanishd/vec/internal/assert"

// PushBack appends x, taking ownership of it. When the live range already
// fills the capacity, storage is doubled and the existing elements are
// relocated; a failed relocation tears the new storage down and leaves the
// vector unchanged.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.appendValue(x)
	return err
}

// EmplaceBack appends an element produced by build and returns its
// address. If build fails, the vector is unchanged.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	val, err := build()
	if err != nil {
		return nil, err
	}
	return v.appendValue(val)
}

// appendValue places val in the next free cell, growing first if needed.
// In the growth path the new element lands at its final slot in the new
// storage before the existing elements are relocated around it; if that
// relocation fails, the placed element is destroyed and the new storage
// released, so the vector is unchanged.
func (v *Vector[T]) appendValue(val T) (*T, error) {
	if v.size == v.buf.Cap() {
		nb := NewRawBuffer[T](v.growCap())
		*nb.At(v.size) = val
		if err := v.relocate(&nb, 0, v.size, 0); err != nil {
			v.fn.drop(nb.At(v.size))
			nb.Release()
			return nil, err
		}
		v.adopt(&nb)
	} else {
		*v.buf.At(v.size) = val
	}
	v.size++
	return v.buf.At(v.size - 1), nil
}

// PopBack destroys the last live element. Popping an empty vector is a
// programmer error, asserted in normal builds.
func (v *Vector[T]) PopBack() {
	assert.Assert(v.size > 0, "vec: PopBack on empty vector")
	v.size--
	v.destroyCells(&v.buf, v.size, v.size+1)
}
