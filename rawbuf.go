package vec

import (
	"unsafe"

	"github.com/pavanmanishd/vec/internal/assert"
)

// RawBuffer owns a fixed block of heap memory sized for a number of cells
// of T. It tracks only capacity and knows nothing about which cells hold
// live elements, so Release never runs element cleanup; liveness
// bookkeeping belongs to the layer above.
//
// A RawBuffer is move-only: ownership changes hands through take (used by
// Vector) and Swap, never by copying. The zero value is an empty buffer.
type RawBuffer[T any] struct {
	ptr unsafe.Pointer // first cell, nil iff cap == 0
	cap int
}

// NewRawBuffer allocates a block for n cells of T in a single allocation.
// n == 0 yields an empty buffer and performs no allocation.
func NewRawBuffer[T any](n int) RawBuffer[T] {
	assert.Assert(n >= 0, "vec: negative capacity %d", n)
	if n == 0 {
		return RawBuffer[T]{}
	}
	// The block is allocated as []T so the collector sees T's pointer
	// map. The cells are still raw storage to the layer above: nothing
	// here is a live element until the vector constructs it.
	return RawBuffer[T]{
		ptr: unsafe.Pointer(&make([]T, n)[0]),
		cap: n,
	}
}

// At returns the address of cell i. The index is checked against capacity,
// not liveness: the caller must not read a cell it has not constructed.
func (b *RawBuffer[T]) At(i int) *T {
	assert.Assert(i >= 0 && i < b.cap, "vec: cell %d out of capacity %d", i, b.cap)
	var zero T
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// Cap returns the number of cells the block can hold.
func (b *RawBuffer[T]) Cap() int {
	return b.cap
}

// Swap exchanges the owned blocks of two buffers in constant time.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.ptr, other.ptr = other.ptr, b.ptr
	b.cap, other.cap = other.cap, b.cap
}

// Release drops the owned block and resets the buffer to empty. It never
// touches cell contents; destroying live elements first is the caller's
// job.
func (b *RawBuffer[T]) Release() {
	b.ptr = nil
	b.cap = 0
}

// take steals other's block and resets other to empty. The receiver must
// not own a block of its own.
func (b *RawBuffer[T]) take(other *RawBuffer[T]) {
	b.ptr, b.cap = other.ptr, other.cap
	other.ptr, other.cap = nil, 0
}

// slice returns a typed view over the first n cells.
func (b *RawBuffer[T]) slice(n int) []T {
	assert.Assert(n >= 0 && n <= b.cap, "vec: slice length %d out of capacity %d", n, b.cap)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), n)
}
