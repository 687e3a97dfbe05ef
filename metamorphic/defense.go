package metamorphic

import (
	"fmt"
	"math/rand"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

// DefenseDynamics picks an existing attack and adds a fresh defender striking
// the attacker, strengthening the attacked argument's defense chain. The
// expected direction of change is derived from the grounded fixpoint, not
// asserted independently:
//
//	DD-1: the defender is unattacked, so it enters the grounded extension.
//	DD-2: the struck attacker is now attacked by an unattacked argument and
//	      can never be defended, so it leaves the grounded extension.
//	DD-3: the defended argument's membership in the target's grounded
//	      extension must equal the fixpoint recomputed on the target; mere
//	      absence of its attackers from the claim is not sufficient, an
//	      attacker left undecided still blocks reinstatement.
type DefenseDynamics struct{}

func (DefenseDynamics) Name() string { return "defense_dynamics" }

// Apply selects an attack (seeded, or the first in canonical order) and adds
// the defender. A framework with no attacks cannot host the relation.
func (DefenseDynamics) Apply(af *core.AF, rng *rand.Rand) (*Transformed, error) {
	attacks := af.Attacks()
	if len(attacks) == 0 {
		return nil, core.NewConfigurationError("defense dynamics requires at least 1 attack")
	}
	chosen := attacks[0]
	if rng != nil {
		chosen = attacks[rng.Intn(len(attacks))]
	}

	defender := freshLabel(af, "M_Defender")
	args := append(af.Arguments(), defender)
	newAttacks := append(af.Attacks(), core.Attack{From: defender, To: chosen.From})
	target, err := core.NewAF("defense-dynamics "+af.Name(), args, newAttacks)
	if err != nil {
		return nil, err
	}
	return &Transformed{
		Relation: "defense_dynamics",
		Source:   af,
		Target:   target,
		Defender: defender,
		Attacker: chosen.From,
		Defended: chosen.To,
	}, nil
}

// Verify checks the claimed grounded extension of the target against the
// derived direction of change. The relation constrains only the grounded
// semantics; the other semantics are covered by the base checks.
func (DefenseDynamics) Verify(t *Transformed, source, target core.Claim) []core.Verdict {
	claimedGE := soleExtension(target[core.GroundedSemantics])
	expectedGE := semantics.Grounded(t.Target)

	var violations []string
	if !claimedGE.Has(t.Defender) {
		violations = append(violations, fmt.Sprintf(
			"MR-DD.1 violation: defender %q missing from the claimed grounded extension %s",
			t.Defender, claimedGE.Canonical()))
	}
	if claimedGE.Has(t.Attacker) {
		violations = append(violations, fmt.Sprintf(
			"MR-DD.2 violation: attacker %q is struck by the unattacked defender yet still claimed grounded",
			t.Attacker))
	}

	sourceGE := semantics.Grounded(t.Source)
	if !sourceGE.Has(t.Defended) {
		// The defended argument was out; the fixpoint decides whether the new
		// defense chain reinstates it.
		shouldHold := expectedGE.Has(t.Defended)
		holds := claimedGE.Has(t.Defended)
		switch {
		case shouldHold && !holds:
			violations = append(violations, fmt.Sprintf(
				"MR-DD.3 violation: %q is reinstated by the fixpoint but missing from the claim",
				t.Defended))
		case !shouldHold && holds:
			violations = append(violations, fmt.Sprintf(
				"MR-DD.3 violation: %q is claimed grounded but an attacker is still undefeated",
				t.Defended))
		}
	}

	claimed := target[core.GroundedSemantics].CanonicalSlice()
	expected := core.NewExtensionSet(expectedGE).CanonicalSlice()
	if len(violations) > 0 {
		return []core.Verdict{core.FailVerdict("MR-DD", core.GroundedSemantics, claimed, expected, violations...)}
	}
	return []core.Verdict{core.PassVerdict("MR-DD", core.GroundedSemantics, claimed, expected)}
}
