package plan

import "slices"

// place assigns an address to every section in the to-place group, largest
// first so later, smaller sections can still use the leftover fragments.
// Each section goes into the tightest hole that fits it; the chosen hole is
// shrunk past the new section plus spacing, or discarded entirely when the
// residual could never hold another spacing-separated section.
//
// The unbounded top-of-space hole is never fully consumed, so placement
// cannot fail for validated input; ErrNoSpace only fires on a corrupted
// hole set. Afterwards the new base is the start of the unbounded hole,
// which after all shrinking sits one spacing above the top of used space.
func (c *runContext) place() error {
	order := slices.Clone(c.toPlace)
	slices.SortStableFunc(order, func(a, b *section) int {
		switch {
		case a.size > b.size:
			return -1
		case a.size < b.size:
			return 1
		default:
			return a.idx - b.idx
		}
	})

	for _, s := range order {
		h, ok := c.free.TightestFit(s.size)
		if !ok {
			return ErrNoSpace
		}
		s.newAddr = h.Start

		step := s.size + c.params.Spacing
		if h.Unbounded || h.Usable-step > c.params.Spacing {
			c.free.Shrink(h.Start, step)
		} else {
			c.free.Remove(h.Start)
		}
		c.log.Debug("placed section", "name", s.name, "addr", s.newAddr,
			"size", s.size, "hole", h.String())
	}

	top, ok := c.free.Top()
	if !ok {
		return ErrNoSpace
	}
	c.newBase = top.Start
	return nil
}
