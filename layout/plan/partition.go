package plan

// partition splits the arena into keep-in-place candidates (known prior
// address at or above the base) and sections that must be freshly placed.
// Pure and total: every section lands in exactly one group.
func (c *runContext) partition() {
	for _, s := range c.arena {
		if s.oldAddr >= c.params.Base {
			s.kept = true
			c.kept = append(c.kept, s)
		} else {
			c.toPlace = append(c.toPlace, s)
		}
	}
	c.log.Debug("partitioned sections",
		"kept_candidates", len(c.kept),
		"to_place", len(c.toPlace))
}
