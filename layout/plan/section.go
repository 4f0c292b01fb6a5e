package plan

import "github.com/layoutkit/layoutkit/pkg/types"

// section is the working record for one input section. Sections live in the
// run context's arena; all cross-references (conflicts) are arena indices,
// never pointers, so clearing a conflict is a removal by identifier.
type section struct {
	idx     int // arena index == original input order, used as sort tie-break
	name    string
	oldAddr int64 // types.UnknownAddr when the section was never placed
	size    int64

	// newAddr is assigned exactly once, by either the resolver (kept
	// sections take their old address) or the placer.
	newAddr int64

	// kept is true while the section is a keep-in-place candidate; eviction
	// clears it.
	kept bool

	// conflicts holds the arena indices of kept sections whose old ranges
	// overlap this one. Populated and fully drained inside resolution.
	conflicts map[int]struct{}
}

func newSection(idx int, spec types.SectionSpec) *section {
	return &section{
		idx:     idx,
		name:    spec.Name,
		oldAddr: spec.OldAddr,
		size:    spec.Size,
		newAddr: types.UnknownAddr,
	}
}

// oldEnd returns the exclusive end of the section's prior range.
func (s *section) oldEnd() int64 { return s.oldAddr + s.size }

func (s *section) addConflict(other int) {
	if s.conflicts == nil {
		s.conflicts = make(map[int]struct{})
	}
	s.conflicts[other] = struct{}{}
}
