package metamorphic

import (
	"fmt"
	"math/rand"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// FundamentalConsistency adds one isolated self-attacking argument. A
// self-attacker can never be defended and never belongs to any extension, so
// the edit must not disturb the rest of the framework: SA appears in no
// target extension and the grounded extension is unchanged.
type FundamentalConsistency struct{}

func (FundamentalConsistency) Name() string { return "fundamental_consistency" }

// Apply appends a fresh self-attacking argument SA.
func (FundamentalConsistency) Apply(af *core.AF, rng *rand.Rand) (*Transformed, error) {
	if af.Size() < 1 {
		return nil, core.NewConfigurationError("fundamental consistency requires at least 1 argument")
	}
	sa := freshLabel(af, "SA")
	args := append(af.Arguments(), sa)
	attacks := append(af.Attacks(), core.Attack{From: sa, To: sa})
	target, err := core.NewAF("fundamental-consistency "+af.Name(), args, attacks)
	if err != nil {
		return nil, err
	}
	return &Transformed{
		Relation: "fundamental_consistency",
		Source:   af,
		Target:   target,
		Added:    sa,
	}, nil
}

// Verify checks that the self-attacker appears in no target extension of any
// semantics, and that the grounded extension is untouched.
func (FundamentalConsistency) Verify(t *Transformed, source, target core.Claim) []core.Verdict {
	var verdicts []core.Verdict
	for _, sem := range core.AllSemantics {
		claimed := target[sem]
		var violations []string
		for _, e := range claimed.Sorted() {
			if e.Has(t.Added) {
				violations = append(violations, fmt.Sprintf(
					"MR-FC violation (%s): self-attacking argument %q appeared in extension %s",
					sem, t.Added, e.Canonical()))
			}
		}
		// Only the grounded extension has an expected value here; the other
		// semantics are constrained by absence of the self-attacker, not by
		// equality with the source sets.
		var expected []string
		if sem == core.GroundedSemantics {
			expected = source[sem].CanonicalSlice()
			if !source[sem].Equal(claimed) {
				violations = append(violations, fmt.Sprintf(
					"MR-FC violation (GE): grounded extension changed from %s to %s",
					source[sem].Canonical(), claimed.Canonical()))
			}
		}
		if len(violations) > 0 {
			verdicts = append(verdicts, core.FailVerdict("MR-FC", sem, claimed.CanonicalSlice(), expected, violations...))
		} else {
			verdicts = append(verdicts, core.PassVerdict("MR-FC", sem, claimed.CanonicalSlice(), expected))
		}
	}
	return verdicts
}
