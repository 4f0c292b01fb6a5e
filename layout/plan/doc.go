// Package plan computes a revised memory layout for a collection of named,
// sized sections.
//
// # Overview
//
// The planner keeps as many sections as possible at their prior addresses so
// that an image diff against the previous layout stays small, while
// guaranteeing that every address is at or above the configured base and
// that no two section ranges overlap. Relocation minimality is a heuristic,
// not a guarantee: picking the provably minimal set of moves is treated as
// intractable, and the planner settles for a deterministic greedy pass.
//
// # Pipeline
//
// A run flows strictly forward through five stages over one run context:
//
//  1. Partition: sections with a known prior address at or above the base
//     become keep-candidates; everything else must be freshly placed.
//  2. Resolve: pairwise range conflicts among keep-candidates are recorded
//     symmetrically, then a single greedy pass evicts conflicted sections in
//     ascending size order (ties by input order). Evicting a section clears
//     it from its partners, so a larger partner often survives untouched.
//  3. Find free space: the gaps between surviving sections become holes,
//     capped by one unbounded hole above the top of the kept layout.
//  4. Place: evicted and never-placed sections are laid out largest first,
//     each into the tightest hole that fits it, separated by the configured
//     spacing. The unbounded hole guarantees placement always succeeds.
//  5. Project: kept and placed sections merge into one address-sorted
//     result, together with the new top-of-space base.
//
// # Usage
//
//	res, err := plan.Compute(specs, types.Params{Base: 0x1000, Spacing: 8}, plan.Options{})
//	if err != nil {
//	    var uo *plan.UnresolvedOverlapError
//	    if errors.As(err, &uo) {
//	        // conflicting kept sections could not be untangled
//	    }
//	    return err
//	}
//	for _, p := range res.Placements {
//	    fmt.Printf("%s -> %#x\n", p.Name, p.Addr)
//	}
//
// The computation is synchronous, single-threaded, and deterministic: equal
// inputs always produce equal layouts, and a produced layout fed back in as
// fully-known input is a fixed point.
package plan
