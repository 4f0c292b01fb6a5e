package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/layoutkit/layoutkit/pkg/types"
)

// sec builds a SectionSpec; addr may be types.UnknownAddr.
func sec(name string, addr, size int64) types.SectionSpec {
	return types.SectionSpec{Name: name, OldAddr: addr, Size: size}
}

// newTestRun builds a run context over the given specs without running any
// stage.
func newTestRun(t *testing.T, specs []types.SectionSpec, params types.Params) *runContext {
	t.Helper()
	require.NoError(t, validateInput(specs, params))
	c := &runContext{params: params, log: Options{}.logger()}
	for i, spec := range specs {
		c.arena = append(c.arena, newSection(i, spec))
	}
	return c
}

// addrOf returns the placement for name, failing the test when missing.
func addrOf(t *testing.T, res *types.Result, name string) types.Placement {
	t.Helper()
	for _, p := range res.Placements {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("section %q missing from result", name)
	return types.Placement{}
}
