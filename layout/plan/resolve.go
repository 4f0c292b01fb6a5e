package plan

import (
	"slices"
)

// resolve detects pairwise range conflicts among keep-candidates and evicts
// a greedily chosen subset until the survivors are pairwise disjoint.
// Survivors take their old address as the final one.
//
// By default this is a single detect+evict pass; with iterate set the pass
// repeats until a detection round finds no conflicts.
func (c *runContext) resolve(iterate bool) error {
	for pass := 1; ; pass++ {
		found := c.detectConflicts()
		if found == 0 {
			break
		}
		evicted := c.evictConflicted()
		c.log.Debug("resolved overlaps",
			"pass", pass, "conflict_pairs", found, "evicted", evicted)
		if !iterate || evicted == 0 {
			break
		}
	}

	// Postcondition: no surviving candidate may still carry a conflict.
	var unresolved []string
	for _, s := range c.arena {
		if s.kept && len(s.conflicts) > 0 {
			unresolved = append(unresolved, s.name)
		}
	}
	if len(unresolved) > 0 {
		return &UnresolvedOverlapError{Sections: unresolved}
	}

	for _, s := range c.kept {
		s.newAddr = s.oldAddr
	}
	return nil
}

// detectConflicts sorts the candidates by old address and records every
// overlapping pair symmetrically on both sections. Two kept sections
// conflict iff their old ranges strictly overlap; a gap narrower than the
// spacing is not a conflict (prior layouts are trusted as-is). Returns the
// number of conflicting pairs found.
func (c *runContext) detectConflicts() int {
	for _, s := range c.kept {
		s.conflicts = nil
	}
	slices.SortStableFunc(c.kept, func(a, b *section) int {
		switch {
		case a.oldAddr < b.oldAddr:
			return -1
		case a.oldAddr > b.oldAddr:
			return 1
		default:
			return 0
		}
	})

	pairs := 0
	for i, a := range c.kept {
		for _, b := range c.kept[i+1:] {
			if b.oldAddr >= a.oldEnd() {
				break
			}
			a.addConflict(b.idx)
			b.addConflict(a.idx)
			pairs++
		}
	}
	return pairs
}

// evictConflicted makes one greedy pass over the conflicted candidates in
// ascending size order. A section still carrying a conflict when visited is
// evicted to the to-place group and struck from its partners' conflict
// sets, which often leaves a larger partner conflict-free without evicting
// it. Equal-size ties visit the later-listed section first, so the earlier
// of two tied conflicting sections survives in place. The queue is fixed up
// front: a section skipped earlier is not revisited. Returns the number of
// evictions.
func (c *runContext) evictConflicted() int {
	queue := make([]*section, 0, len(c.kept))
	for _, s := range c.kept {
		if len(s.conflicts) > 0 {
			queue = append(queue, s)
		}
	}
	slices.SortStableFunc(queue, func(a, b *section) int {
		switch {
		case a.size < b.size:
			return -1
		case a.size > b.size:
			return 1
		default:
			return b.idx - a.idx
		}
	})

	evicted := 0
	for _, s := range queue {
		if len(s.conflicts) == 0 {
			continue
		}
		for partner := range s.conflicts {
			delete(c.arena[partner].conflicts, s.idx)
		}
		s.conflicts = nil
		s.kept = false
		c.toPlace = append(c.toPlace, s)
		evicted++
		c.log.Debug("evicted section", "name", s.name,
			"old_addr", s.oldAddr, "size", s.size)
	}

	if evicted > 0 {
		survivors := c.kept[:0]
		for _, s := range c.kept {
			if s.kept {
				survivors = append(survivors, s)
			}
		}
		c.kept = survivors
	}
	return evicted
}
