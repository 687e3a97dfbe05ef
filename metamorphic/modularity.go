package metamorphic

import (
	"fmt"
	"math/rand"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/gen"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

// Modularity composes the source framework disjointly with a companion
// framework. Without cross-attacks, every extension of the composition
// decomposes exactly into (an extension of the source) union (an extension of
// the companion); no extension may span dependencies that do not exist.
//
// The zero value composes with the trivial one-argument framework, which
// reduces the expected relation to the bijection E -> E ∪ {U}.
type Modularity struct {
	// Companion overrides the default trivial companion. Its argument labels
	// must be disjoint from the source's.
	Companion *core.AF
}

func (Modularity) Name() string { return "modularity" }

// Apply builds the disjoint union and fixes the companion's ground truth at
// apply time, so the expected predicate is fully determined by the transform.
func (m Modularity) Apply(af *core.AF, rng *rand.Rand) (*Transformed, error) {
	if af.Size() < 1 {
		return nil, core.NewConfigurationError("modularity requires at least 1 argument")
	}
	companion := m.Companion
	if companion == nil {
		u := freshLabel(af, "U")
		trivial, err := core.NewAF("isolated", []core.Argument{u}, nil)
		if err != nil {
			return nil, err
		}
		companion = trivial
	}
	target, err := gen.Union("modular "+af.Name(), af, companion)
	if err != nil {
		return nil, err
	}
	return &Transformed{
		Relation:       "modularity",
		Source:         af,
		Target:         target,
		Companion:      companion,
		CompanionTruth: semantics.Extensions(companion),
	}, nil
}

// Verify checks that for every semantics the target claim is exactly the set
// of pairwise unions of the source claim with the companion's ground truth.
// When one side has no extension (stable may be empty), the composition has
// none either.
func (Modularity) Verify(t *Transformed, source, target core.Claim) []core.Verdict {
	var verdicts []core.Verdict
	for _, sem := range core.AllSemantics {
		expected := pairwiseUnions(source[sem], t.CompanionTruth[sem])
		claimed := target[sem]
		if expected.Equal(claimed) {
			verdicts = append(verdicts, core.PassVerdict("MR-MOD", sem, claimed.CanonicalSlice(), expected.CanonicalSlice()))
			continue
		}
		violation := fmt.Sprintf("MR-MOD violation (%s): expected %s from the disjoint composition but got %s",
			sem, expected.Canonical(), claimed.Canonical())
		verdicts = append(verdicts, core.FailVerdict("MR-MOD", sem, claimed.CanonicalSlice(), expected.CanonicalSlice(), violation))
	}
	return verdicts
}

// pairwiseUnions returns { a ∪ b : a ∈ left, b ∈ right }.
func pairwiseUnions(left, right core.ExtensionSet) core.ExtensionSet {
	out := core.NewExtensionSet()
	for _, a := range left.Sorted() {
		for _, b := range right.Sorted() {
			out.Add(a.Union(b))
		}
	}
	return out
}
