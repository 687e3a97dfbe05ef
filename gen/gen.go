// Package gen produces argumentation-framework instances with known
// topologies. Every generator is a pure function of the target size: the same
// size always yields the same framework, and sizes below a topology's minimum
// fail with a ConfigurationError instead of producing a degenerate instance.
package gen

import (
	"fmt"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// NoConflict builds n arguments with no attacks. Minimum size 1.
func NoConflict(n int) (*core.AF, error) {
	if n < 1 {
		return nil, core.NewConfigurationError("no-conflict requires at least 1 argument, got %d", n)
	}
	return core.NewAF(fmt.Sprintf("no-conflict (n=%d)", n), labels("A", n), nil)
}

// Chain builds a linear attack chain A1->A2->...->An, the alternating
// defender/attacker pattern. Minimum size 2.
func Chain(n int) (*core.AF, error) {
	if n < 2 {
		return nil, core.NewConfigurationError("linear attack chain requires at least 2 arguments, got %d", n)
	}
	args := labels("A", n)
	attacks := make([]core.Attack, 0, n-1)
	for i := 0; i < n-1; i++ {
		attacks = append(attacks, core.Attack{From: args[i], To: args[i+1]})
	}
	return core.NewAF(fmt.Sprintf("linear-attack-chain (n=%d)", n), args, attacks)
}

// Cycle builds a chain closed by An->A1. The parity of n decides whether
// stable extensions exist, so the cycle length is exactly n. Minimum size 2.
func Cycle(n int) (*core.AF, error) {
	if n < 2 {
		return nil, core.NewConfigurationError("cycle requires at least 2 arguments, got %d", n)
	}
	args := labels("A", n)
	attacks := make([]core.Attack, 0, n)
	for i := 0; i < n; i++ {
		attacks = append(attacks, core.Attack{From: args[i], To: args[(i+1)%n]})
	}
	return core.NewAF(fmt.Sprintf("cycle (n=%d)", n), args, attacks)
}

// SingleTargetMultipleAttackers builds one target T attacked by n-1 attackers.
// Minimum size 2.
func SingleTargetMultipleAttackers(n int) (*core.AF, error) {
	if n < 2 {
		return nil, core.NewConfigurationError("single-target-multiple-attackers requires at least 2 arguments, got %d", n)
	}
	args := append([]core.Argument{"T"}, labels("A", n-1)...)
	attacks := make([]core.Attack, 0, n-1)
	for _, a := range args[1:] {
		attacks = append(attacks, core.Attack{From: a, To: "T"})
	}
	return core.NewAF(fmt.Sprintf("single-target-multiple-attackers (n=%d)", n), args, attacks)
}

// SingleAttackMultipleDefenders builds Att->T with n-2 defenders attacking
// Att. Minimum size 3.
func SingleAttackMultipleDefenders(n int) (*core.AF, error) {
	if n < 3 {
		return nil, core.NewConfigurationError("single-attack-multiple-defenders requires at least 3 arguments, got %d", n)
	}
	args := append([]core.Argument{"T", "Att"}, labels("D", n-2)...)
	attacks := []core.Attack{{From: "Att", To: "T"}}
	for _, d := range args[2:] {
		attacks = append(attacks, core.Attack{From: d, To: "Att"})
	}
	return core.NewAF(fmt.Sprintf("single-attack-multiple-defenders (n=%d)", n), args, attacks)
}

// SymmetricPairs builds n/2 disconnected mutual-attack pairs (Ai <-> Bi).
// Requires an even size of at least 2.
func SymmetricPairs(n int) (*core.AF, error) {
	if n < 2 || n%2 != 0 {
		return nil, core.NewConfigurationError("symmetric pairs require an even size of at least 2, got %d", n)
	}
	var args []core.Argument
	var attacks []core.Attack
	for i := 1; i <= n/2; i++ {
		a := core.Argument(fmt.Sprintf("A%d", i))
		b := core.Argument(fmt.Sprintf("B%d", i))
		args = append(args, a, b)
		attacks = append(attacks, core.Attack{From: a, To: b}, core.Attack{From: b, To: a})
	}
	return core.NewAF(fmt.Sprintf("symmetric-pairs (n=%d)", n), args, attacks)
}

// Disconnected builds the disjoint union of a chain and a cycle with disjoint
// label prefixes and no cross-attacks. The chain takes the larger half.
// Minimum size 4 (each part needs at least 2 arguments).
func Disconnected(n int) (*core.AF, error) {
	if n < 4 {
		return nil, core.NewConfigurationError("disconnected union requires at least 4 arguments, got %d", n)
	}
	chainSize := n - n/2
	chain, err := prefixed("C", Chain, chainSize)
	if err != nil {
		return nil, err
	}
	cycle, err := prefixed("Y", Cycle, n/2)
	if err != nil {
		return nil, err
	}
	return Union(fmt.Sprintf("disconnected (n=%d)", n), chain, cycle)
}

// Union builds the disjoint union of the given frameworks. Overlapping
// argument labels are a ConfigurationError: the union must keep every label
// globally unique, never silently merge.
func Union(name string, parts ...*core.AF) (*core.AF, error) {
	seen := make(map[core.Argument]string)
	var args []core.Argument
	var attacks []core.Attack
	for _, part := range parts {
		for _, a := range part.Arguments() {
			if owner, dup := seen[a]; dup {
				return nil, core.NewConfigurationError("argument %q appears in both %q and %q", a, owner, part.Name())
			}
			seen[a] = part.Name()
			args = append(args, a)
		}
		attacks = append(attacks, part.Attacks()...)
	}
	return core.NewAF(name, args, attacks)
}

// Suite returns the generator registry keyed by the names the driver and
// result records use.
func Suite() map[string]core.Generator {
	return map[string]core.Generator{
		"no_conflict":                      NoConflict,
		"linear_attack_chain":              Chain,
		"cycle":                            Cycle,
		"single_target_multiple_attackers": SingleTargetMultipleAttackers,
		"single_attack_multiple_defenders": SingleAttackMultipleDefenders,
		"symmetric_pairs":                  SymmetricPairs,
		"disconnected":                     Disconnected,
	}
}

func labels(prefix string, n int) []core.Argument {
	out := make([]core.Argument, n)
	for i := 0; i < n; i++ {
		out[i] = core.Argument(fmt.Sprintf("%s%d", prefix, i+1))
	}
	return out
}

func prefixed(prefix string, g core.Generator, n int) (*core.AF, error) {
	af, err := g(n)
	if err != nil {
		return nil, err
	}
	rename := make(map[core.Argument]core.Argument, af.Size())
	var args []core.Argument
	for _, a := range af.Arguments() {
		to := core.Argument(prefix + string(a))
		rename[a] = to
		args = append(args, to)
	}
	var attacks []core.Attack
	for _, at := range af.Attacks() {
		attacks = append(attacks, core.Attack{From: rename[at.From], To: rename[at.To]})
	}
	return core.NewAF(af.Name(), args, attacks)
}
