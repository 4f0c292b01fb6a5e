package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layoutkit/layoutkit/layout/verify"
	"github.com/layoutkit/layoutkit/pkg/types"
)

// TestCompute_OverlapExample runs the canonical two-section overlap: the
// earlier section stays put, the evicted one lands one spacing above it,
// and the new base clears the whole layout.
func TestCompute_OverlapExample(t *testing.T) {
	specs := []types.SectionSpec{
		sec("a", 0, 10),
		sec("b", 5, 10),
	}
	params := types.Params{Base: 0, Spacing: 2}

	res, err := Compute(specs, params, Options{})
	require.NoError(t, err)

	a := addrOf(t, res, "a")
	b := addrOf(t, res, "b")
	assert.True(t, a.Kept)
	assert.Equal(t, int64(0), a.Addr)
	assert.False(t, b.Kept)
	assert.Equal(t, int64(12), b.Addr, "evicted section goes one spacing past the survivor")
	assert.Equal(t, int64(24), res.NewBase)

	require.NoError(t, verify.AllInvariants(specs, res, params))
}

// TestCompute_DisjointInputUnchanged verifies the no-op case: disjoint,
// already-spaced sections come back untouched and the new base is the end
// of the last one plus spacing.
func TestCompute_DisjointInputUnchanged(t *testing.T) {
	specs := []types.SectionSpec{
		sec("x", 0, 10),
		sec("y", 12, 10),
		sec("z", 24, 10),
	}
	params := types.Params{Base: 0, Spacing: 2}

	res, err := Compute(specs, params, Options{})
	require.NoError(t, err)

	for _, s := range specs {
		p := addrOf(t, res, s.Name)
		assert.True(t, p.Kept, s.Name)
		assert.Equal(t, s.OldAddr, p.Addr, s.Name)
	}
	assert.Equal(t, int64(36), res.NewBase)
	require.NoError(t, verify.AllInvariants(specs, res, params))
}

// TestCompute_BelowBaseAndUnknown relocates both a section under the floor
// and a never-placed one, above the kept layout.
func TestCompute_BelowBaseAndUnknown(t *testing.T) {
	specs := []types.SectionSpec{
		sec("low", 50, 10),
		sec("fresh", types.UnknownAddr, 5),
		sec("kept", 100, 10),
	}
	params := types.Params{Base: 100, Spacing: 2}

	res, err := Compute(specs, params, Options{})
	require.NoError(t, err)

	assert.Equal(t, int64(100), addrOf(t, res, "kept").Addr)
	assert.Equal(t, int64(112), addrOf(t, res, "low").Addr, "larger section placed first")
	assert.Equal(t, int64(124), addrOf(t, res, "fresh").Addr)
	assert.Equal(t, int64(131), res.NewBase)
	require.NoError(t, verify.AllInvariants(specs, res, params))
}

// TestCompute_EmptyInput yields an empty layout and the base unchanged.
func TestCompute_EmptyInput(t *testing.T) {
	res, err := Compute(nil, types.Params{Base: 4096, Spacing: 8}, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Placements)
	assert.Equal(t, int64(4096), res.NewBase)
}

// TestCompute_ResultSortedByAddress verifies the projection ordering.
func TestCompute_ResultSortedByAddress(t *testing.T) {
	specs := []types.SectionSpec{
		sec("high", 300, 10),
		sec("fresh", types.UnknownAddr, 4),
		sec("low", 100, 10),
	}
	res, err := Compute(specs, types.Params{Base: 0, Spacing: 2}, Options{})
	require.NoError(t, err)

	for i := 1; i < len(res.Placements); i++ {
		assert.Less(t, res.Placements[i-1].Addr, res.Placements[i].Addr)
	}
}

// TestCompute_Idempotent feeds a computed layout back in as a fully-known
// request: the layout is already conflict-free, so it is a fixed point.
func TestCompute_Idempotent(t *testing.T) {
	specs := []types.SectionSpec{
		sec("a", 0, 10),
		sec("b", 5, 10),
		sec("c", types.UnknownAddr, 30),
		sec("d", 2000, 16),
	}
	params := types.Params{Base: 0, Spacing: 8}

	first, err := Compute(specs, params, Options{})
	require.NoError(t, err)

	again := make([]types.SectionSpec, 0, len(specs))
	sizes := map[string]int64{}
	for _, s := range specs {
		sizes[s.Name] = s.Size
	}
	for _, p := range first.Placements {
		again = append(again, sec(p.Name, p.Addr, sizes[p.Name]))
	}

	second, err := Compute(again, params, Options{})
	require.NoError(t, err)

	require.Len(t, second.Placements, len(first.Placements))
	for i := range first.Placements {
		assert.Equal(t, first.Placements[i].Name, second.Placements[i].Name)
		assert.Equal(t, first.Placements[i].Addr, second.Placements[i].Addr)
		assert.True(t, second.Placements[i].Kept, "every section of a fixed point is kept")
	}
	assert.Equal(t, first.NewBase, second.NewBase)
}

// TestCompute_Deterministic runs the same request repeatedly, including
// equal-size ties, and demands identical layouts.
func TestCompute_Deterministic(t *testing.T) {
	specs := []types.SectionSpec{
		sec("t1", 0, 10),
		sec("t2", 4, 10),
		sec("t3", 8, 10),
		sec("f1", types.UnknownAddr, 6),
		sec("f2", types.UnknownAddr, 6),
		sec("f3", types.UnknownAddr, 6),
	}
	params := types.Params{Base: 0, Spacing: 2}

	first, err := Compute(specs, params, Options{})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		res, err := Compute(specs, params, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}
}

// TestCompute_IterateResolutionOption verifies the fixed-point switch
// produces a valid layout on the same inputs as the single pass.
func TestCompute_IterateResolutionOption(t *testing.T) {
	specs := []types.SectionSpec{
		sec("a", 0, 10),
		sec("b", 5, 6),
		sec("c", 9, 12),
	}
	params := types.Params{Base: 0, Spacing: 2}

	res, err := Compute(specs, params, Options{IterateResolution: true})
	require.NoError(t, err)
	require.NoError(t, verify.AllInvariants(specs, res, params))
}

// TestCompute_InputValidation covers the malformed-input taxonomy.
func TestCompute_InputValidation(t *testing.T) {
	good := types.Params{Base: 0, Spacing: 0}

	cases := []struct {
		name   string
		specs  []types.SectionSpec
		params types.Params
	}{
		{"negative base", []types.SectionSpec{sec("a", 0, 1)}, types.Params{Base: -1}},
		{"negative spacing", []types.SectionSpec{sec("a", 0, 1)}, types.Params{Spacing: -1}},
		{"empty name", []types.SectionSpec{sec("", 0, 1)}, good},
		{"duplicate name", []types.SectionSpec{sec("a", 0, 1), sec("a", 10, 1)}, good},
		{"zero size", []types.SectionSpec{sec("a", 0, 0)}, good},
		{"negative size", []types.SectionSpec{sec("a", 0, -4)}, good},
		{"bad old address", []types.SectionSpec{sec("a", -7, 1)}, good},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.specs, tc.params, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			var ie *InputError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

// TestUnresolvedOverlapError_Shape pins the error type contract the CLI
// branches on.
func TestUnresolvedOverlapError_Shape(t *testing.T) {
	err := &UnresolvedOverlapError{Sections: []string{"a", "b"}}
	assert.ErrorIs(t, err, ErrUnresolvedOverlap)
	assert.Contains(t, err.Error(), "a, b")

	var uo *UnresolvedOverlapError
	assert.True(t, errors.As(err, &uo))
}
