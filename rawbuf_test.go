package vec

import (
	"testing"
	"unsafe"
)

func TestNewRawBuffer(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero capacity", 0},
		{"single cell", 1},
		{"many cells", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRawBuffer[int64](tt.n)
			if b.Cap() != tt.n {
				t.Errorf("NewRawBuffer(%d) capacity = %d, want %d", tt.n, b.Cap(), tt.n)
			}
			if (b.ptr == nil) != (tt.n == 0) {
				t.Errorf("NewRawBuffer(%d): ptr nil = %v, want %v", tt.n, b.ptr == nil, tt.n == 0)
			}
		})
	}
}

func TestRawBufferAt(t *testing.T) {
	b := NewRawBuffer[int64](8)

	// Cells must be contiguous and addressable across the full capacity.
	for i := 0; i < 8; i++ {
		*b.At(i) = int64(i * 10)
	}
	for i := 0; i < 8; i++ {
		if got := *b.At(i); got != int64(i*10) {
			t.Errorf("cell %d = %d, want %d", i, got, i*10)
		}
	}

	stride := uintptr(unsafe.Pointer(b.At(1))) - uintptr(unsafe.Pointer(b.At(0)))
	if stride != unsafe.Sizeof(int64(0)) {
		t.Errorf("cell stride = %d, want %d", stride, unsafe.Sizeof(int64(0)))
	}
}

func TestRawBufferAtOutOfCapacity(t *testing.T) {
	b := NewRawBuffer[int](4)

	defer func() {
		if recover() == nil {
			t.Error("At(4) on capacity 4 should panic")
		}
	}()
	_ = b.At(4)
}

func TestRawBufferSwap(t *testing.T) {
	a := NewRawBuffer[int](2)
	b := NewRawBuffer[int](8)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)

	if a.Cap() != 8 || b.Cap() != 2 {
		t.Errorf("after swap caps = %d, %d, want 8, 2", a.Cap(), b.Cap())
	}
	if *a.At(0) != 2 || *b.At(0) != 1 {
		t.Errorf("after swap cells = %d, %d, want 2, 1", *a.At(0), *b.At(0))
	}
}

func TestRawBufferTake(t *testing.T) {
	src := NewRawBuffer[int](4)
	*src.At(0) = 7

	var dst RawBuffer[int]
	dst.take(&src)

	if dst.Cap() != 4 || *dst.At(0) != 7 {
		t.Errorf("take: dst cap = %d, cell = %d, want 4, 7", dst.Cap(), *dst.At(0))
	}
	if src.Cap() != 0 || src.ptr != nil {
		t.Errorf("take: source not reset, cap = %d", src.Cap())
	}
}

func TestRawBufferRelease(t *testing.T) {
	b := NewRawBuffer[int](4)
	b.Release()
	if b.Cap() != 0 || b.ptr != nil {
		t.Errorf("Release: cap = %d, want 0 with nil block", b.Cap())
	}

	// Release on an empty buffer is a no-op.
	var empty RawBuffer[int]
	empty.Release()
}

func TestRawBufferSlice(t *testing.T) {
	b := NewRawBuffer[int](4)
	for i := 0; i < 3; i++ {
		*b.At(i) = i + 1
	}

	s := b.slice(3)
	if len(s) != 3 {
		t.Fatalf("slice(3) length = %d, want 3", len(s))
	}
	for i, got := range s {
		if got != i+1 {
			t.Errorf("slice[%d] = %d, want %d", i, got, i+1)
		}
	}
	if b.slice(0) != nil {
		t.Error("slice(0) should be nil")
	}

	// The view aliases the buffer's cells.
	s[0] = 99
	if *b.At(0) != 99 {
		t.Error("slice does not alias buffer cells")
	}
}
