package vec

import "errors"

var (
	// ErrNotCopyable indicates a copy operation on a vector whose element
	// lifecycle has no Copy func.
	ErrNotCopyable = errors.New("vec: element type has no copy func")
)
