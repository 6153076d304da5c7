package vec

import "github.com/pavanmanishd/vec/internal/assert"

// Insert places x at position pos, shifting later elements one slot right.
// It is a convenience wrapper around Emplace.
func (v *Vector[T]) Insert(pos int, x T) (*T, error) {
	return v.Emplace(pos, func() (T, error) { return x, nil })
}

// Emplace constructs an element produced by build at position pos and
// returns its address. pos == Len() appends. If build fails, the vector is
// unchanged.
//
// When growth is required the new element is placed at its final slot in
// the new storage and the prefix and suffix are relocated around it, each
// phase tearing the new storage down on failure so the vector is unchanged
// (strong guarantee). Within existing capacity the shift happens in place
// by move-assignment, with no attempt to undo a partial shift (basic
// guarantee).
func (v *Vector[T]) Emplace(pos int, build func() (T, error)) (*T, error) {
	assert.Assert(pos >= 0 && pos <= v.size, "vec: position %d out of range %d", pos, v.size)
	if pos == v.size {
		return v.EmplaceBack(build)
	}
	val, err := build()
	if err != nil {
		return nil, err
	}
	if v.size == v.buf.Cap() {
		err = v.insertGrow(pos, val)
	} else {
		err = v.insertInPlace(pos, val)
	}
	if err != nil {
		return nil, err
	}
	return v.buf.At(pos), nil
}

// insertGrow inserts val at pos via new storage: place val, relocate
// [0,pos) before it, relocate [pos,size) after it, then adopt. Either
// relocation failing destroys everything constructed in the new storage
// and leaves the vector untouched.
func (v *Vector[T]) insertGrow(pos int, val T) error {
	nb := NewRawBuffer[T](v.growCap())
	*nb.At(pos) = val
	if err := v.relocate(&nb, 0, pos, 0); err != nil {
		v.fn.drop(nb.At(pos))
		nb.Release()
		return err
	}
	if err := v.relocate(&nb, pos, v.size-pos, pos+1); err != nil {
		v.destroyCells(&nb, 0, pos+1)
		nb.Release()
		return err
	}
	v.adopt(&nb)
	v.size++
	return nil
}

// insertInPlace inserts val at pos within existing capacity: extend the
// live range by moving the last element into the next free cell, shift
// [pos, size-1) right one slot by move-assignment, then assign val into
// pos. The length grows as soon as the end cell is live, so a failure
// mid-shift leaves every live cell accounted for.
func (v *Vector[T]) insertInPlace(pos int, val T) error {
	last, err := v.fn.moveOut(v.buf.At(v.size - 1))
	if err != nil {
		v.fn.drop(&val)
		return err
	}
	*v.buf.At(v.size) = last
	v.size++
	for i := v.size - 2; i > pos; i-- {
		if err := v.moveAssign(i, i-1); err != nil {
			v.fn.drop(&val)
			return err
		}
	}
	v.fn.drop(v.buf.At(pos))
	*v.buf.At(pos) = val
	return nil
}

// Erase removes the element at pos, shifting later elements one slot left
// by move-assignment; the next element then lives at pos. A failing move
// mid-shift leaves the vector valid but partially shifted (basic
// guarantee).
func (v *Vector[T]) Erase(pos int) error {
	assert.Assert(pos >= 0 && pos < v.size, "vec: position %d out of range %d", pos, v.size)
	for i := pos; i < v.size-1; i++ {
		if err := v.moveAssign(i, i+1); err != nil {
			return err
		}
	}
	v.size--
	v.destroyCells(&v.buf, v.size, v.size+1)
	return nil
}
