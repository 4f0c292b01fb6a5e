// Package holes tracks the free address intervals of a partially occupied
// layout. The set is address-ordered and mutable: the placer repeatedly asks
// for the tightest fitting hole, then shrinks or removes it.
package holes

import (
	"fmt"

	"github.com/google/btree"
)

// btreeDegree is the branching factor for the hole B-tree. Hole counts are
// bounded by the kept-section count, so a small degree is plenty.
const btreeDegree = 4

// Hole is a free address interval. Usable is the size available for
// placement after the trailing spacing margin has been reserved; it is
// meaningless when Unbounded is set.
type Hole struct {
	Start     int64
	Usable    int64
	Unbounded bool
}

// Fits reports whether a section of the given size can be placed in the hole.
func (h Hole) Fits(size int64) bool {
	return h.Unbounded || h.Usable >= size
}

func (h Hole) String() string {
	if h.Unbounded {
		return fmt.Sprintf("[%d:∞)", h.Start)
	}
	return fmt.Sprintf("[%d:+%d)", h.Start, h.Usable)
}

// Set is a mutable collection of holes ordered by start address.
type Set struct {
	tree *btree.BTreeG[Hole]
}

// NewSet returns an empty hole set.
func NewSet() *Set {
	return &Set{
		tree: btree.NewG(btreeDegree, func(a, b Hole) bool {
			return a.Start < b.Start
		}),
	}
}

// Insert adds a hole. A hole already registered at the same start address is
// replaced.
func (s *Set) Insert(h Hole) {
	s.tree.ReplaceOrInsert(h)
}

// Remove deletes the hole starting at the given address. It reports whether
// a hole was present.
func (s *Set) Remove(start int64) bool {
	_, ok := s.tree.Delete(Hole{Start: start})
	return ok
}

// Shrink advances the hole at start by the given amount, reducing its usable
// size accordingly (unbounded holes only advance). It reports whether the
// hole was present.
func (s *Set) Shrink(start, advance int64) bool {
	h, ok := s.tree.Delete(Hole{Start: start})
	if !ok {
		return false
	}
	h.Start += advance
	if !h.Unbounded {
		h.Usable -= advance
	}
	s.tree.ReplaceOrInsert(h)
	return true
}

// TightestFit returns the hole with the smallest usable size that still fits
// a section of the given size. An unbounded hole counts as infinitely large,
// so it is only chosen when no bounded hole fits; ties between equally tight
// bounded holes go to the lowest start address.
func (s *Set) TightestFit(size int64) (Hole, bool) {
	var best Hole
	found := false
	s.tree.Ascend(func(h Hole) bool {
		if !h.Fits(size) {
			return true
		}
		switch {
		case !found:
			best, found = h, true
		case best.Unbounded && !h.Unbounded:
			best = h
		case !h.Unbounded && h.Usable < best.Usable:
			best = h
		}
		return true
	})
	return best, found
}

// Top returns the hole with the highest start address. For sets built by the
// hole finder this is the terminal unbounded hole.
func (s *Set) Top() (Hole, bool) {
	return s.tree.Max()
}

// Len returns the number of holes in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Ascend visits every hole in ascending start order until the iterator
// returns false.
func (s *Set) Ascend(fn func(Hole) bool) {
	s.tree.Ascend(btree.ItemIteratorG[Hole](fn))
}

// Snapshot returns the holes in ascending start order. Used by tests and
// debug logging.
func (s *Set) Snapshot() []Hole {
	out := make([]Hole, 0, s.tree.Len())
	s.tree.Ascend(func(h Hole) bool {
		out = append(out, h)
		return true
	})
	return out
}
