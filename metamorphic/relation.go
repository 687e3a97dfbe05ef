// Package metamorphic transforms a framework into a related one and carries
// the expected relationship between the two instances' semantics. The catalog
// is a closed set of four relations; each is stateless and reusable, and each
// Apply is pure given an explicit random source.
package metamorphic

import (
	"math/rand"
	"strconv"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Transformed is the outcome of applying one relation: the target framework
// plus the structural mapping the expected predicate needs.
type Transformed struct {
	Relation string
	Source   *core.AF
	Target   *core.AF

	// Rename maps source to target labels (isomorphism).
	Rename map[core.Argument]core.Argument

	// Added is the argument introduced by fundamental consistency.
	Added core.Argument

	// Companion is the framework composed in by modularity, with its ground
	// truth fixed at apply time.
	Companion      *core.AF
	CompanionTruth core.Claim

	// Defender, Attacker and Defended describe the defense-dynamics edit:
	// Defender is the fresh argument, Attacker the existing attacker it
	// strikes, Defended the argument at the end of the strengthened chain.
	Defender core.Argument
	Attacker core.Argument
	Defended core.Argument
}

// Relation is one metamorphic transformation plus its expected predicate.
// Apply builds the target instance; Verify evaluates the expected
// relationship over the two claims and returns one verdict per semantics it
// constrains. Verify never errors: a violated expectation is a fail verdict.
type Relation interface {
	Name() string
	Apply(af *core.AF, rng *rand.Rand) (*Transformed, error)
	Verify(t *Transformed, source, target core.Claim) []core.Verdict
}

// Catalog returns the full relation catalog in evaluation order.
func Catalog() []Relation {
	return []Relation{
		Isomorphism{},
		FundamentalConsistency{},
		Modularity{},
		DefenseDynamics{},
	}
}

// freshLabel returns base if it is unused in af, otherwise base_1, base_2, ...
func freshLabel(af *core.AF, base core.Argument) core.Argument {
	if !af.Has(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := core.Argument(string(base) + "_" + strconv.Itoa(i))
		if !af.Has(candidate) {
			return candidate
		}
	}
}

// soleExtension picks the single extension a unique-semantics claim should
// hold. Empty claims yield the empty extension; surplus extensions are left
// for the fundamental-property checks to flag.
func soleExtension(set core.ExtensionSet) core.Extension {
	for _, e := range set.Sorted() {
		return e
	}
	return core.NewExtension()
}
