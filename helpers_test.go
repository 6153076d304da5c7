package vec

import "errors"

// item is the element type used by lifecycle tests. A counters instance
// tallies copies, moves and drops; operating on a poisoned value fails.
type item struct {
	v      int
	poison bool
}

var errPoison = errors.New("poisoned value")

type counters struct {
	copies int
	moves  int
	drops  int
}

// copyReloc returns a lifecycle whose move is fallible, so growing
// operations relocate by copy. Copying or moving a poisoned value fails.
func (c *counters) copyReloc() Funcs[item] {
	return Funcs[item]{
		Copy: func(x item) (item, error) {
			if x.poison {
				return item{}, errPoison
			}
			c.copies++
			return x, nil
		},
		Move: func(src *item) (item, error) {
			if src.poison {
				return item{}, errPoison
			}
			c.moves++
			out := *src
			*src = item{}
			return out, nil
		},
		Drop: func(p *item) { c.drops++ },
	}
}

// moveReloc is copyReloc with the move declared non-failing, so growing
// operations relocate by move even though a copy exists.
func (c *counters) moveReloc() Funcs[item] {
	f := c.copyReloc()
	f.Move = func(src *item) (item, error) {
		c.moves++
		out := *src
		*src = item{}
		return out, nil
	}
	f.MoveNeverFails = true
	return f
}

// values extracts the element payloads of the live range.
func values(v *Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for _, it := range v.Slice() {
		out = append(out, it.v)
	}
	return out
}

// pushItems appends plain items with the given payloads.
func pushItems(v *Vector[item], payloads ...int) error {
	for _, p := range payloads {
		if err := v.PushBack(item{v: p}); err != nil {
			return err
		}
	}
	return nil
}
