package plan

import "github.com/layoutkit/layoutkit/layout/holes"

// findFreeSpace walks the surviving kept sections from the base upward and
// records the usable gaps between them as holes. A gap only becomes a hole
// when it strictly exceeds the spacing, and its usable size excludes the
// trailing spacing reserved for whatever ends up abutting the next kept
// section. One unbounded hole above the kept layout guarantees that every
// later placement request can be satisfied.
func (c *runContext) findFreeSpace() {
	free := holes.NewSet()

	// kept is sorted ascending by address after resolution.
	cursor := c.params.Base
	for _, s := range c.kept {
		gap := s.oldAddr - cursor
		if gap > c.params.Spacing {
			free.Insert(holes.Hole{Start: cursor, Usable: gap - c.params.Spacing})
		}
		cursor = s.oldEnd()
	}

	top := c.params.Base
	if len(c.kept) > 0 {
		top = cursor + c.params.Spacing
	}
	free.Insert(holes.Hole{Start: top, Unbounded: true})

	c.free = free
	c.log.Debug("computed free space", "holes", free.Len(), "top", top)
}
