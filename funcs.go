package vec

// Funcs describes the element lifecycle for a vector's element type. Types
// whose elements own resources, or whose construction and duplication can
// fail, supply their operations here; every field may be nil to select
// trivial behavior.
type Funcs[T any] struct {
	// New default-constructs an element. Nil means the zero value.
	New func() (T, error)

	// Copy duplicates an element. Nil means T is not copyable: Clone,
	// CopyFrom and copy-based relocation report ErrNotCopyable.
	Copy func(T) (T, error)

	// Move transfers an element out of *src. It must leave *src in a
	// state that is safe to pass to Drop. Nil means a plain value
	// transfer that zeroes the source and never fails.
	Move func(src *T) (T, error)

	// MoveNeverFails declares that Move never returns an error. Growing
	// operations relocate elements by move when the move cannot fail
	// (this field set, or Move nil) or when no Copy exists; otherwise
	// they copy, so a failed relocation leaves the original cells
	// untouched.
	MoveNeverFails bool

	// Drop releases an element's resources. Nil means no cleanup. Drop
	// also runs on moved-from cells, including the zero value left
	// behind by the trivial move, and must tolerate them.
	Drop func(*T)
}

// Plain returns the lifecycle for trivially copyable value types:
// zero-value construction, copy by value, a non-failing move and no
// cleanup.
func Plain[T any]() Funcs[T] {
	return Funcs[T]{
		Copy: func(x T) (T, error) { return x, nil },
	}
}

func (f *Funcs[T]) construct() (T, error) {
	if f.New == nil {
		var zero T
		return zero, nil
	}
	return f.New()
}

func (f *Funcs[T]) copyOf(x T) (T, error) {
	if f.Copy == nil {
		var zero T
		return zero, ErrNotCopyable
	}
	return f.Copy(x)
}

// moveOut transfers the element out of *src. The trivial move zeroes the
// source so no two cells ever hold the same live value.
func (f *Funcs[T]) moveOut(src *T) (T, error) {
	if f.Move == nil {
		var zero T
		v := *src
		*src = zero
		return v, nil
	}
	return f.Move(src)
}

func (f *Funcs[T]) drop(p *T) {
	if f.Drop != nil {
		f.Drop(p)
	}
}

// relocateByMove reports whether growing operations transfer existing
// elements by move rather than copy.
func (f *Funcs[T]) relocateByMove() bool {
	return f.Move == nil || f.MoveNeverFails || f.Copy == nil
}
