// Package vec implements a growable, contiguous, generically typed array
// built on raw storage, with explicit control over element lifetimes.
//
// # Overview
//
// A Vector keeps its elements in a single heap block owned by a RawBuffer.
// The buffer tracks only capacity; the vector tracks how many of the
// leading cells hold live elements. The split matters for element types
// that own resources or whose copy and construction can fail: the vector
// guarantees that after every operation the first Len() cells are live and
// the rest are not, that no element is destroyed twice, and that a failed
// operation never leaks a partially built element. This is useful for:
//
//   - Value types carrying handles that need deterministic cleanup
//   - Element types whose duplication is fallible (deep copies, pooled
//     resources)
//   - Code that needs predictable doubling growth and explicit capacity
//     control rather than append's reallocation heuristics
//
// # Element Lifecycles
//
// Go values have no constructors or destructors, so each vector carries a
// Funcs descriptor naming the element operations it should use: New
// (default construction), Copy, Move and Drop. Any of them may be nil to
// select trivial behavior, and Plain returns the descriptor for ordinary
// value types:
//
//	v := vec.New(vec.Plain[int]())
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	fmt.Println(v.Slice()) // [1 2]
//
// # Failure Guarantees
//
// Operations that grow storage (PushBack, EmplaceBack, Emplace, Insert,
// Reserve, growing Resize) either complete or leave the vector exactly as
// it was: partially transferred elements in the new storage are destroyed
// and the new block released before the error returns. Relocation moves
// elements when the move cannot fail (or no copy exists) and copies them
// otherwise, so the original cells stay intact across a failed transfer.
//
// In-place Emplace and Erase shift elements by move-assignment and make no
// attempt to undo a partial shift: on failure the vector is valid and
// destructible but possibly reordered (basic guarantee).
//
// # Iteration and Invalidation
//
// Slice returns a view over the live range, and At returns element
// addresses. Both alias the vector's storage and are invalidated by any
// operation that grows capacity, and by Insert, Emplace or Erase at any
// position other than the end.
//
// # Preconditions
//
// Index range, insert position and non-empty PopBack are programmer
// obligations, not runtime errors. They are checked by assertions in
// normal builds and unchecked when compiling with the release build tag.
//
// # Thread Safety
//
// Vector and RawBuffer are not goroutine-safe. A vector has a single
// writer by design.
package vec
