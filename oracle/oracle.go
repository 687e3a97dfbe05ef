// Package oracle compares claimed extensions against the verifier's ground
// truth and against metamorphic expectations, producing immutable verdicts.
// No check mutates the frameworks or extensions it inspects; a wrong answer
// is a fail verdict, never an error.
package oracle

import (
	"fmt"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/metamorphic"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

// Oracle produces verdicts for one evaluation run. Ground truth comes from
// the verifier, optionally through the LRU cache.
type Oracle struct {
	cache *semantics.Cache
}

// New creates an oracle. A nil cache computes ground truth on every call.
func New(cache *semantics.Cache) *Oracle {
	return &Oracle{cache: cache}
}

func (o *Oracle) truth(af *core.AF) core.Claim {
	if o.cache != nil {
		return o.cache.Extensions(af)
	}
	return semantics.Extensions(af)
}

// GroundTruth exposes the oracle's view of a framework's correct extensions,
// for result records and for mock agents.
func (o *Oracle) GroundTruth(af *core.AF) core.Claim {
	return o.truth(af)
}

// CheckBase verifies basic correctness: per semantics, the claimed extension
// set must equal the enumerated ground truth, which is exactly the set of
// subsets satisfying that semantics' definition.
func (o *Oracle) CheckBase(af *core.AF, claim core.Claim) []core.Verdict {
	truth := o.truth(af)
	verdicts := make([]core.Verdict, 0, len(core.AllSemantics))
	for _, sem := range core.AllSemantics {
		expected := truth[sem]
		claimed, ok := claim[sem]
		if !ok {
			verdicts = append(verdicts, core.ErrorVerdict("validity", sem,
				fmt.Sprintf("no answer for %s semantics", sem.Description())))
			continue
		}
		if claimed.Equal(expected) {
			verdicts = append(verdicts, core.PassVerdict("validity", sem, claimed.CanonicalSlice(), expected.CanonicalSlice()))
			continue
		}
		violation := fmt.Sprintf("invalid %s: expected %s but got %s", sem, expected.Canonical(), claimed.Canonical())
		verdicts = append(verdicts, core.FailVerdict("validity", sem, claimed.CanonicalSlice(), expected.CanonicalSlice(), violation))
	}
	return verdicts
}

// CheckProperties verifies the fundamental properties any self-consistent
// claim must satisfy, independent of ground truth: the containment hierarchy
// (FP-1..FP-3), uniqueness of the grounded extension (FP-4), existence of a
// preferred extension (FP-5), and conflict-freeness of every claimed set
// (FP-6).
func (o *Oracle) CheckProperties(af *core.AF, claim core.Claim) []core.Verdict {
	ge, ce := claim[core.GroundedSemantics], claim[core.CompleteSemantics]
	pe, se := claim[core.PreferredSemantics], claim[core.StableSemantics]

	verdicts := []core.Verdict{
		containment("FP-1", core.GroundedSemantics, "grounded", "complete", ge, ce),
		containment("FP-2", core.PreferredSemantics, "preferred", "complete", pe, ce),
		containment("FP-3", core.StableSemantics, "stable", "preferred", se, pe),
	}

	if ge.Len() > 1 {
		verdicts = append(verdicts, core.FailVerdict("FP-4", core.GroundedSemantics, ge.CanonicalSlice(), nil,
			fmt.Sprintf("FP-4 violation: expected 1 grounded extension, found %d: %s", ge.Len(), ge.Canonical())))
	} else {
		verdicts = append(verdicts, core.PassVerdict("FP-4", core.GroundedSemantics, ge.CanonicalSlice(), nil))
	}

	if pe.Len() == 0 {
		verdicts = append(verdicts, core.FailVerdict("FP-5", core.PreferredSemantics, nil, nil,
			"FP-5 violation: expected at least 1 preferred extension, found none"))
	} else {
		verdicts = append(verdicts, core.PassVerdict("FP-5", core.PreferredSemantics, pe.CanonicalSlice(), nil))
	}

	for _, sem := range core.AllSemantics {
		var violations []string
		for _, e := range claim[sem].Sorted() {
			if !af.IsConflictFree(e) {
				violations = append(violations, fmt.Sprintf(
					"FP-6 violation (%s): extension %s is not conflict-free", sem, e.Canonical()))
			}
		}
		if len(violations) > 0 {
			verdicts = append(verdicts, core.FailVerdict("FP-6", sem, claim[sem].CanonicalSlice(), nil, violations...))
		} else {
			verdicts = append(verdicts, core.PassVerdict("FP-6", sem, claim[sem].CanonicalSlice(), nil))
		}
	}
	return verdicts
}

// CheckRelation evaluates the relation's expected predicate over the two
// claims. The cross-instance check can legitimately fail even when both
// individual base checks pass; that inconsistency is the central signal the
// system exists to detect.
func (o *Oracle) CheckRelation(rel metamorphic.Relation, t *metamorphic.Transformed, source, target core.Claim) []core.Verdict {
	return rel.Verify(t, source, target)
}

// AgentFailure converts an unusable agent response into one error verdict per
// semantics for the given check, keeping "unusable" distinct from "wrong".
func AgentFailure(check, reason string) []core.Verdict {
	verdicts := make([]core.Verdict, 0, len(core.AllSemantics))
	for _, sem := range core.AllSemantics {
		verdicts = append(verdicts, core.ErrorVerdict(check, sem, reason))
	}
	return verdicts
}

func containment(check string, sem core.Semantics, innerName, outerName string, inner, outer core.ExtensionSet) core.Verdict {
	if inner.SubsetOf(outer) {
		return core.PassVerdict(check, sem, inner.CanonicalSlice(), outer.CanonicalSlice())
	}
	violation := fmt.Sprintf("%s violation: %s extensions %s are not a subset of %s extensions %s",
		check, innerName, inner.Canonical(), outerName, outer.Canonical())
	return core.FailVerdict(check, sem, inner.CanonicalSlice(), outer.CanonicalSlice(), violation)
}
