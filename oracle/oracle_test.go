package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/gen"
	"github.com/realearn-people/benchmarking-aa-reasoning/metamorphic"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

func statuses(verdicts []core.Verdict) map[string]core.VerdictStatus {
	out := make(map[string]core.VerdictStatus, len(verdicts))
	for _, v := range verdicts {
		out[v.Check+"/"+string(v.Semantics)] = v.Status
	}
	return out
}

func TestCheckBase_GroundTruthPasses(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	o := New(nil)
	verdicts := o.CheckBase(af, semantics.Extensions(af))
	require.Len(t, verdicts, 4)
	for _, v := range verdicts {
		assert.Equal(t, core.VerdictPass, v.Status)
	}
}

func TestCheckBase_WrongAnswerFails(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim := semantics.Extensions(af)
	claim[core.StableSemantics] = core.NewExtensionSet(core.NewExtension("A1", "A2"))

	o := New(nil)
	got := statuses(o.CheckBase(af, claim))
	assert.Equal(t, core.VerdictPass, got["validity/GE"])
	assert.Equal(t, core.VerdictFail, got["validity/SE"])
}

func TestCheckBase_MissingSemanticsIsError(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim := semantics.Extensions(af)
	delete(claim, core.PreferredSemantics)

	o := New(nil)
	got := statuses(o.CheckBase(af, claim))
	assert.Equal(t, core.VerdictError, got["validity/PE"])
	assert.Equal(t, core.VerdictPass, got["validity/GE"])
}

func TestCheckProperties_HierarchyViolation(t *testing.T) {
	af, err := gen.Cycle(4)
	require.NoError(t, err)

	// A stable set missing from the preferred answer breaks FP-3.
	claim := semantics.Extensions(af)
	claim[core.PreferredSemantics] = core.NewExtensionSet(core.NewExtension("A1", "A3"))

	o := New(nil)
	got := statuses(o.CheckProperties(af, claim))
	assert.Equal(t, core.VerdictFail, got["FP-3/SE"])
	assert.Equal(t, core.VerdictPass, got["FP-1/GE"])
}

func TestCheckProperties_GroundedUniqueness(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim := semantics.Extensions(af)
	claim[core.GroundedSemantics] = core.NewExtensionSet(core.NewExtension("A1", "A3"), core.NewExtension())
	claim[core.CompleteSemantics] = core.NewExtensionSet(core.NewExtension("A1", "A3"), core.NewExtension())

	o := New(nil)
	got := statuses(o.CheckProperties(af, claim))
	assert.Equal(t, core.VerdictFail, got["FP-4/GE"])
}

func TestCheckProperties_ConflictFreeness(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim := semantics.Extensions(af)
	claim[core.CompleteSemantics] = core.NewExtensionSet(core.NewExtension("A1", "A2"))

	o := New(nil)
	got := statuses(o.CheckProperties(af, claim))
	assert.Equal(t, core.VerdictFail, got["FP-6/CE"])
	assert.Equal(t, core.VerdictPass, got["FP-6/GE"])
}

func TestCheckProperties_MissingPreferred(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim := semantics.Extensions(af)
	claim[core.PreferredSemantics] = core.NewExtensionSet()

	o := New(nil)
	got := statuses(o.CheckProperties(af, claim))
	assert.Equal(t, core.VerdictFail, got["FP-5/PE"])
}

// The base instance is answered correctly and the transformed instance's
// answer is self-consistent, yet the two answers do not correspond across the
// transformation. Only the cross-instance check catches this; it is the
// central signal the system exists to detect.
func TestCheckRelation_FailsWhileIndividualChecksPass(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	iso := metamorphic.Isomorphism{}
	tr, err := iso.Apply(af, nil)
	require.NoError(t, err)

	o := New(nil)
	sourceClaim := semantics.Extensions(af)

	// Rename-blind agent: it answers the relabeled instance with the source
	// labels. The claim keeps the containment hierarchy, GE uniqueness, PE
	// existence and conflict-freeness, so every individual property check
	// passes.
	targetClaim := sourceClaim

	for _, v := range o.CheckBase(af, sourceClaim) {
		require.Equal(t, core.VerdictPass, v.Status)
	}
	for _, v := range o.CheckProperties(tr.Target, targetClaim) {
		require.Equal(t, core.VerdictPass, v.Status, "%s/%s", v.Check, v.Semantics)
	}

	failed := 0
	for _, v := range o.CheckRelation(iso, tr, sourceClaim, targetClaim) {
		if v.Status == core.VerdictFail {
			failed++
		}
	}
	assert.Equal(t, len(core.AllSemantics), failed, "cross-instance violation must be detected for every semantics")
}

func TestAgentFailure_ErrorVerdictPerSemantics(t *testing.T) {
	verdicts := AgentFailure("validity", "unparseable reply")
	require.Len(t, verdicts, 4)
	for _, v := range verdicts {
		assert.Equal(t, core.VerdictError, v.Status)
		assert.Contains(t, v.Violations[0], "unparseable")
	}
}
