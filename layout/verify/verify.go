// Package verify provides validation checks for finished layouts. The
// checks mirror the guarantees the planner makes: completeness, the base
// floor, pairwise disjoint ranges, spacing around freshly placed sections,
// and address stability for kept sections. They are used by tests and by
// `layoutctl verify`.
package verify

import (
	"fmt"
	"slices"

	"github.com/layoutkit/layoutkit/pkg/types"
)

// ValidationError describes one violated layout invariant.
type ValidationError struct {
	Check   string // which invariant failed (e.g. "NoOverlap")
	Section string // offending section name, empty when not section-specific
	Message string
}

func (e *ValidationError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s: section %q: %s", e.Check, e.Section, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Check, e.Message)
}

// AllInvariants validates every layout invariant in one call. Returns the
// first error encountered, or nil if all checks pass.
func AllInvariants(specs []types.SectionSpec, res *types.Result, params types.Params) error {
	if err := Complete(specs, res); err != nil {
		return err
	}
	if err := Floor(res, params.Base); err != nil {
		return err
	}
	if err := NoOverlap(specs, res); err != nil {
		return err
	}
	if err := Spacing(specs, res, params.Spacing); err != nil {
		return err
	}
	if err := Stability(specs, res); err != nil {
		return err
	}
	if err := TopBase(specs, res); err != nil {
		return err
	}
	return nil
}

// TopBase checks that the reported new base clears the end of the highest
// section, so a follow-up run placing from NewBase cannot collide with this
// layout.
func TopBase(specs []types.SectionSpec, res *types.Result) error {
	ranges := sortedRanges(specs, res)
	if len(ranges) == 0 {
		return nil
	}
	top := ranges[len(ranges)-1]
	if res.NewBase < top.addr+top.size {
		return &ValidationError{Check: "TopBase", Section: top.name,
			Message: fmt.Sprintf("new base %d inside topmost section ending at %d",
				res.NewBase, top.addr+top.size)}
	}
	return nil
}

// Complete checks that the result places every input section exactly once
// and nothing else, and that placements are sorted ascending by address.
func Complete(specs []types.SectionSpec, res *types.Result) error {
	want := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		want[s.Name] = struct{}{}
	}
	for i, p := range res.Placements {
		if _, ok := want[p.Name]; !ok {
			return &ValidationError{Check: "Complete", Section: p.Name,
				Message: "placed but not in input (or placed twice)"}
		}
		delete(want, p.Name)
		if i > 0 && res.Placements[i-1].Addr > p.Addr {
			return &ValidationError{Check: "Complete", Section: p.Name,
				Message: "placements not sorted by address"}
		}
	}
	for name := range want {
		return &ValidationError{Check: "Complete", Section: name,
			Message: "missing from layout"}
	}
	return nil
}

// Floor checks that every section sits at or above the base.
func Floor(res *types.Result, base int64) error {
	for _, p := range res.Placements {
		if p.Addr < base {
			return &ValidationError{Check: "Floor", Section: p.Name,
				Message: fmt.Sprintf("address %d below base %d", p.Addr, base)}
		}
	}
	return nil
}

// NoOverlap checks that all section ranges are pairwise disjoint.
func NoOverlap(specs []types.SectionSpec, res *types.Result) error {
	ranges := sortedRanges(specs, res)
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if prev.addr+prev.size > cur.addr {
			return &ValidationError{Check: "NoOverlap", Section: cur.name,
				Message: fmt.Sprintf("[%d,%d) overlaps %q ending at %d",
					cur.addr, cur.addr+cur.size, prev.name, prev.addr+prev.size)}
		}
	}
	return nil
}

// Spacing checks that address-adjacent pairs of freshly placed sections
// are separated by at least the given spacing. Pairs involving a kept
// section are not checked: gaps between kept sections are whatever the
// input already had, and holes reserve spacing only toward the kept
// section that follows them, not the one they start at.
func Spacing(specs []types.SectionSpec, res *types.Result, spacing int64) error {
	ranges := sortedRanges(specs, res)
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if prev.kept || cur.kept {
			continue
		}
		if cur.addr < prev.addr+prev.size+spacing {
			return &ValidationError{Check: "Spacing", Section: cur.name,
				Message: fmt.Sprintf("only %d of %d spacing after %q",
					cur.addr-(prev.addr+prev.size), spacing, prev.name)}
		}
	}
	return nil
}

// Stability checks that every kept section remained at its old address.
func Stability(specs []types.SectionSpec, res *types.Result) error {
	old := make(map[string]int64, len(specs))
	for _, s := range specs {
		old[s.Name] = s.OldAddr
	}
	for _, p := range res.Placements {
		if p.Kept && p.Addr != old[p.Name] {
			return &ValidationError{Check: "Stability", Section: p.Name,
				Message: fmt.Sprintf("kept section moved from %d to %d",
					old[p.Name], p.Addr)}
		}
	}
	return nil
}

type placedRange struct {
	name string
	addr int64
	size int64
	kept bool
}

func sortedRanges(specs []types.SectionSpec, res *types.Result) []placedRange {
	sizes := make(map[string]int64, len(specs))
	for _, s := range specs {
		sizes[s.Name] = s.Size
	}
	ranges := make([]placedRange, 0, len(res.Placements))
	for _, p := range res.Placements {
		ranges = append(ranges, placedRange{
			name: p.Name,
			addr: p.Addr,
			size: sizes[p.Name],
			kept: p.Kept,
		})
	}
	slices.SortStableFunc(ranges, func(a, b placedRange) int {
		switch {
		case a.addr < b.addr:
			return -1
		case a.addr > b.addr:
			return 1
		default:
			return 0
		}
	})
	return ranges
}
