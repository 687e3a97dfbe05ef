package gen

import (
	"testing"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Topology(t *testing.T) {
	af, err := Chain(3)
	require.NoError(t, err)

	assert.Equal(t, []core.Argument{"A1", "A2", "A3"}, af.Arguments())
	assert.Equal(t, []core.Attack{
		{From: "A1", To: "A2"},
		{From: "A2", To: "A3"},
	}, af.Attacks())
}

func TestCycle_Topology(t *testing.T) {
	af, err := Cycle(3)
	require.NoError(t, err)

	require.Len(t, af.Attacks(), 3)
	assert.True(t, af.HasAttack("A3", "A1"), "cycle must close back to A1")

	// Parity is part of the contract: an n-cycle has exactly n attacks.
	even, err := Cycle(4)
	require.NoError(t, err)
	assert.Len(t, even.Attacks(), 4)
}

func TestNoConflict_Topology(t *testing.T) {
	af, err := NoConflict(5)
	require.NoError(t, err)
	assert.Equal(t, 5, af.Size())
	assert.Empty(t, af.Attacks())
}

func TestSingleTargetMultipleAttackers_Topology(t *testing.T) {
	af, err := SingleTargetMultipleAttackers(4)
	require.NoError(t, err)

	assert.Equal(t, 4, af.Size())
	assert.Len(t, af.Attackers("T"), 3)
	assert.Empty(t, af.AttackedBy("T"))
}

func TestSingleAttackMultipleDefenders_Topology(t *testing.T) {
	af, err := SingleAttackMultipleDefenders(5)
	require.NoError(t, err)

	assert.Equal(t, 5, af.Size())
	assert.Equal(t, []core.Argument{"Att"}, af.Attackers("T"))
	assert.Len(t, af.Attackers("Att"), 3)
}

func TestSymmetricPairs_Topology(t *testing.T) {
	af, err := SymmetricPairs(6)
	require.NoError(t, err)

	assert.Equal(t, 6, af.Size())
	for _, i := range []string{"1", "2", "3"} {
		a, b := core.Argument("A"+i), core.Argument("B"+i)
		assert.True(t, af.HasAttack(a, b))
		assert.True(t, af.HasAttack(b, a))
	}
	assert.Len(t, af.Attacks(), 6)
}

func TestDisconnected_NoCrossAttacks(t *testing.T) {
	af, err := Disconnected(7)
	require.NoError(t, err)
	require.Equal(t, 7, af.Size())

	prefix := func(a core.Argument) byte { return a[0] }
	for _, at := range af.Attacks() {
		assert.Equal(t, prefix(at.From), prefix(at.To),
			"attack %v crosses the disconnected parts", at)
	}
}

func TestUnion_RejectsOverlap(t *testing.T) {
	a, err := Chain(2)
	require.NoError(t, err)
	b, err := Chain(3)
	require.NoError(t, err)

	_, err = Union("overlap", a, b)
	var cerr *core.ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestGenerators_MinimumSizes(t *testing.T) {
	cases := []struct {
		name string
		g    core.Generator
		n    int
	}{
		{"no_conflict", NoConflict, 0},
		{"chain", Chain, 1},
		{"cycle", Cycle, 1},
		{"stma", SingleTargetMultipleAttackers, 1},
		{"samd", SingleAttackMultipleDefenders, 2},
		{"symmetric_pairs_odd", SymmetricPairs, 3},
		{"symmetric_pairs_small", SymmetricPairs, 0},
		{"disconnected", Disconnected, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.g(tc.n)
			var cerr *core.ConfigurationError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

func TestSuite_DeterministicAndValid(t *testing.T) {
	for name, g := range Suite() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{4, 8} {
				first, err := g(n)
				require.NoError(t, err)
				second, err := g(n)
				require.NoError(t, err)
				assert.Equal(t, core.EncodeAF(first), core.EncodeAF(second))

				// Construction invariant: re-parsing the canonical form succeeds.
				_, err = core.ParseAF(first.Name(), core.EncodeAF(first))
				require.NoError(t, err)
			}
		})
	}
}
