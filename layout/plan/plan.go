package plan

import (
	"log/slog"
	"slices"

	"github.com/layoutkit/layoutkit/layout/holes"
	"github.com/layoutkit/layoutkit/pkg/types"
)

// runContext carries all mutable state for one planning run. Nothing
// survives between runs; there is no package-level state.
type runContext struct {
	params  types.Params
	arena   []*section // every section, in input order
	kept    []*section // keep-in-place survivors, sorted by oldAddr after resolve
	toPlace []*section // sections needing a fresh address
	free    *holes.Set
	newBase int64
	log     *slog.Logger
}

// Compute plans a layout for the given sections. On success every section
// has a final address at or above params.Base, no two ranges overlap, and
// sections that survived at their prior address are reported as kept.
//
// The run fails with an *InputError for malformed input and with an
// *UnresolvedOverlapError when kept sections could not be untangled; in
// both cases no partial result is returned.
func Compute(specs []types.SectionSpec, params types.Params, opts Options) (*types.Result, error) {
	if err := validateInput(specs, params); err != nil {
		return nil, err
	}

	c := &runContext{
		params: params,
		arena:  make([]*section, 0, len(specs)),
		log:    opts.logger(),
	}
	for i, spec := range specs {
		c.arena = append(c.arena, newSection(i, spec))
	}

	c.partition()
	if err := c.resolve(opts.IterateResolution); err != nil {
		return nil, err
	}
	c.findFreeSpace()
	if err := c.place(); err != nil {
		return nil, err
	}
	return c.project(), nil
}

// project merges kept and placed sections into one address-sorted result.
func (c *runContext) project() *types.Result {
	placements := make([]types.Placement, 0, len(c.arena))
	for _, s := range c.arena {
		placements = append(placements, types.Placement{
			Name: s.name,
			Addr: s.newAddr,
			Kept: s.kept,
		})
	}
	slices.SortStableFunc(placements, func(a, b types.Placement) int {
		switch {
		case a.Addr < b.Addr:
			return -1
		case a.Addr > b.Addr:
			return 1
		default:
			return 0
		}
	})
	return &types.Result{Placements: placements, NewBase: c.newBase}
}

func validateInput(specs []types.SectionSpec, params types.Params) error {
	if params.Base < 0 {
		return &InputError{Message: "negative base"}
	}
	if params.Spacing < 0 {
		return &InputError{Message: "negative spacing"}
	}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return &InputError{Message: "empty section name"}
		}
		if _, dup := seen[spec.Name]; dup {
			return &InputError{Section: spec.Name, Message: "duplicate name"}
		}
		seen[spec.Name] = struct{}{}
		if spec.Size <= 0 {
			return &InputError{Section: spec.Name, Message: "size must be positive"}
		}
		if spec.OldAddr < 0 && spec.OldAddr != types.UnknownAddr {
			return &InputError{Section: spec.Name, Message: "old address is neither valid nor unknown"}
		}
	}
	return nil
}
