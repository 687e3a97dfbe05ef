package metamorphic

import (
	"fmt"
	"math/rand"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Isomorphism relabels every argument through a bijection and relabels the
// attack relation consistently. The expected relation: for every semantics,
// the target's extensions are exactly the source's extensions with the same
// relabeling applied, element for element.
type Isomorphism struct{}

func (Isomorphism) Name() string { return "isomorphism" }

// Apply renames every argument. Without a random source each label gets the
// X_ prefix; with one, labels are permuted into X1..Xn in shuffled order.
func (Isomorphism) Apply(af *core.AF, rng *rand.Rand) (*Transformed, error) {
	if af.Size() < 1 {
		return nil, core.NewConfigurationError("isomorphism requires at least 1 argument")
	}

	args := af.Arguments()
	rename := make(map[core.Argument]core.Argument, len(args))
	if rng == nil {
		for _, a := range args {
			rename[a] = core.Argument("X_" + string(a))
		}
	} else {
		perm := rng.Perm(len(args))
		for i, a := range args {
			rename[a] = core.Argument(fmt.Sprintf("X%d", perm[i]+1))
		}
	}

	newArgs := make([]core.Argument, 0, len(args))
	for _, a := range args {
		newArgs = append(newArgs, rename[a])
	}
	var newAttacks []core.Attack
	for _, at := range af.Attacks() {
		newAttacks = append(newAttacks, core.Attack{From: rename[at.From], To: rename[at.To]})
	}

	target, err := core.NewAF("isomorphic "+af.Name(), newArgs, newAttacks)
	if err != nil {
		return nil, err
	}
	return &Transformed{
		Relation: "isomorphism",
		Source:   af,
		Target:   target,
		Rename:   rename,
	}, nil
}

// Verify checks exact correspondence under the relabeling for all four
// semantics. Cardinality alone never passes; each renamed source extension
// must appear in the target claim and vice versa.
func (Isomorphism) Verify(t *Transformed, source, target core.Claim) []core.Verdict {
	var verdicts []core.Verdict
	for _, sem := range core.AllSemantics {
		expected := source[sem].Rename(t.Rename)
		claimed := target[sem]
		if expected.Equal(claimed) {
			verdicts = append(verdicts, core.PassVerdict("MR-ISO", sem, claimed.CanonicalSlice(), expected.CanonicalSlice()))
			continue
		}
		violation := fmt.Sprintf("MR-ISO violation (%s): expected %s under relabeling but got %s",
			sem, expected.Canonical(), claimed.Canonical())
		verdicts = append(verdicts, core.FailVerdict("MR-ISO", sem, claimed.CanonicalSlice(), expected.CanonicalSlice(), violation))
	}
	return verdicts
}
