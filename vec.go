package vec

import (
	"github.com/pavanmanishd/vec/internal/assert"
)

// Vector is a growable, contiguous array of T. The leading Len() cells of
// its storage hold live elements; the remaining cells up to Cap() are raw
// capacity. Not goroutine-safe.
type Vector[T any] struct {
	buf     RawBuffer[T]
	size    int
	fn      Funcs[T]
	growths int
}

// New creates an empty vector. No allocation is made until the first
// element arrives or Reserve is called.
func New[T any](fn Funcs[T]) *Vector[T] {
	return &Vector[T]{fn: fn}
}

// NewWithLen creates a vector of n default-constructed elements in storage
// sized exactly n. If a construction fails partway, everything built so
// far is destroyed and the storage released before the error returns.
func NewWithLen[T any](fn Funcs[T], n int) (*Vector[T], error) {
	assert.Assert(n >= 0, "vec: negative length %d", n)
	v := &Vector[T]{fn: fn, buf: NewRawBuffer[T](n)}
	for i := 0; i < n; i++ {
		val, err := v.fn.construct()
		if err != nil {
			v.destroyCells(&v.buf, 0, i)
			v.buf.Release()
			return nil, err
		}
		*v.buf.At(i) = val
	}
	v.size = n
	return v, nil
}

// Clone returns a deep copy of v with storage sized to v's length. If a
// copy fails partway, the partial clone is destroyed and released, and v
// is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{fn: v.fn, buf: NewRawBuffer[T](v.size)}
	for i := 0; i < v.size; i++ {
		val, err := v.fn.copyOf(*v.buf.At(i))
		if err != nil {
			out.destroyCells(&out.buf, 0, i)
			out.buf.Release()
			return nil, err
		}
		*out.buf.At(i) = val
	}
	out.size = v.size
	return out, nil
}

// MoveFrom steals other's storage and size, leaving other empty with no
// allocation. The receiver's previous contents are destroyed first. Never
// fails.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.destroyCells(&v.buf, 0, v.size)
	v.buf.Release()
	v.buf.take(&other.buf)
	v.size = other.size
	other.size = 0
}

// CopyFrom copy-assigns other's contents into v. Both vectors must use
// equivalent lifecycles. Self-assignment is a no-op.
//
// When other does not fit in v's capacity the copy is built aside and
// swapped in, so a failed copy leaves v exactly as it was. When capacity
// suffices, v's storage is reused: cells are copy-assigned one by one and
// only the per-element guarantee holds on failure.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if other.size > v.buf.Cap() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	overlap := min(v.size, other.size)
	for i := 0; i < overlap; i++ {
		val, err := v.fn.copyOf(*other.buf.At(i))
		if err != nil {
			return err
		}
		v.fn.drop(v.buf.At(i))
		*v.buf.At(i) = val
	}
	if other.size < v.size {
		v.destroyCells(&v.buf, other.size, v.size)
	} else {
		for i := v.size; i < other.size; i++ {
			val, err := v.fn.copyOf(*other.buf.At(i))
			if err != nil {
				v.destroyCells(&v.buf, v.size, i)
				return err
			}
			*v.buf.At(i) = val
		}
	}
	v.size = other.size
	return nil
}

// Release destroys all live elements and frees the storage, returning the
// vector to the empty state. The vector remains usable afterward.
func (v *Vector[T]) Release() {
	v.destroyCells(&v.buf, 0, v.size)
	v.size = 0
	v.buf.Release()
}

// Swap exchanges the full state of two vectors in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.fn, other.fn = other.fn, v.fn
	v.growths, other.growths = other.growths, v.growths
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of cells the current storage can hold.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of the i-th live element. The index is asserted
// against the live range in normal builds; out-of-range access in a
// release build is undefined.
func (v *Vector[T]) At(i int) *T {
	assert.Assert(i >= 0 && i < v.size, "vec: index %d out of range %d", i, v.size)
	return v.buf.At(i)
}

// Slice returns a view over the live range [0, Len()). The view shares the
// vector's storage and is invalidated by any operation that grows capacity
// or shifts elements.
func (v *Vector[T]) Slice() []T {
	return v.buf.slice(v.size)
}

// Reserve grows capacity to at least n without changing length or element
// values. It is a no-op when n does not exceed the current capacity;
// otherwise the live elements are relocated into storage of exactly n
// cells. On a failed relocation the new storage is torn down and v is
// unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	nb := NewRawBuffer[T](n)
	if err := v.relocate(&nb, 0, v.size, 0); err != nil {
		nb.Release()
		return err
	}
	v.adopt(&nb)
	return nil
}

// Resize sets the live length to n. Shrinking destroys the trailing
// elements and leaves capacity alone; growing reserves capacity, then
// default-constructs the new tail. If a construction fails, the elements
// built by this call are destroyed and the length is unchanged.
func (v *Vector[T]) Resize(n int) error {
	assert.Assert(n >= 0, "vec: negative length %d", n)
	if n < v.size {
		v.destroyCells(&v.buf, n, v.size)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		val, err := v.fn.construct()
		if err != nil {
			v.destroyCells(&v.buf, v.size, i)
			return err
		}
		*v.buf.At(i) = val
	}
	v.size = n
	return nil
}

// growCap is the growth policy: double the capacity, with a floor of one
// cell for a vector that has never allocated.
func (v *Vector[T]) growCap() int {
	if c := v.buf.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// relocate transfers count live elements starting at cell src into nb at
// dstOff, by move or copy per the lifecycle's relocation rule. On failure
// the cells this call constructed in nb are destroyed, leaving nb with no
// new live cells; releasing nb is the caller's job.
func (v *Vector[T]) relocate(nb *RawBuffer[T], src, count, dstOff int) error {
	byMove := v.fn.relocateByMove()
	for i := 0; i < count; i++ {
		var val T
		var err error
		if byMove {
			val, err = v.fn.moveOut(v.buf.At(src + i))
		} else {
			val, err = v.fn.copyOf(*v.buf.At(src + i))
		}
		if err != nil {
			v.destroyCells(nb, dstOff, dstOff+i)
			return err
		}
		*nb.At(dstOff+i) = val
	}
	return nil
}

// adopt destroys the old live elements, swaps nb in as the current storage
// and releases the old block. Called only after every live element has
// been transferred into nb.
func (v *Vector[T]) adopt(nb *RawBuffer[T]) {
	v.destroyCells(&v.buf, 0, v.size)
	v.buf.Swap(nb)
	nb.Release()
	v.growths++
}

// moveAssign moves the element in cell src into cell dst, destroying dst's
// previous contents. On failure dst is untouched.
func (v *Vector[T]) moveAssign(dst, src int) error {
	val, err := v.fn.moveOut(v.buf.At(src))
	if err != nil {
		return err
	}
	v.fn.drop(v.buf.At(dst))
	*v.buf.At(dst) = val
	return nil
}

// destroyCells drops cells [from, to) of buf and zeroes them, so no stale
// reference survives and a later drop of the cell is harmless.
func (v *Vector[T]) destroyCells(buf *RawBuffer[T], from, to int) {
	var zero T
	for i := from; i < to; i++ {
		p := buf.At(i)
		v.fn.drop(p)
		*p = zero
	}
}
