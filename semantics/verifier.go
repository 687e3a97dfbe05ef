// Package semantics decides membership in the four argumentation semantics
// and computes ground-truth extensions for oracle comparison. All functions
// are read-only over the framework: a wrong candidate fails a predicate, it
// never raises an error.
package semantics

import (
	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Characteristic applies the characteristic function F(S): the set of
// arguments defended by s.
func Characteristic(af *core.AF, s core.Extension) core.Extension {
	out := core.NewExtension()
	for _, a := range af.Arguments() {
		if af.Defends(s, a) {
			out.Add(a)
		}
	}
	return out
}

// Grounded computes the unique least complete extension: the fixpoint of the
// characteristic function starting from the empty set. The fixpoint is
// idempotent; re-running it on its own output returns the same set.
func Grounded(af *core.AF) core.Extension {
	current := core.NewExtension()
	for {
		next := Characteristic(af, current)
		if next.Equal(current) {
			return current
		}
		current = next
	}
}

// IsAdmissible reports whether s is conflict-free and defends every member.
func IsAdmissible(af *core.AF, s core.Extension) bool {
	if !af.IsConflictFree(s) {
		return false
	}
	for a := range s {
		if !af.Defends(s, a) {
			return false
		}
	}
	return true
}

// IsComplete reports whether s is admissible and contains every argument it
// defends: s is exactly a fixpoint of the characteristic function.
func IsComplete(af *core.AF, s core.Extension) bool {
	return IsAdmissible(af, s) && Characteristic(af, s).Equal(s)
}

// IsGrounded reports whether s is the grounded extension.
func IsGrounded(af *core.AF, s core.Extension) bool {
	return s.Equal(Grounded(af))
}

// IsPreferred reports whether s is admissible and inclusion-maximal among
// admissible sets. Maximality is checked against the complete extensions:
// every admissible set extends to a complete one, so a proper admissible
// superset exists iff a proper complete superset does.
func IsPreferred(af *core.AF, s core.Extension) bool {
	if !IsAdmissible(af, s) {
		return false
	}
	for _, c := range CompleteExtensions(af).Sorted() {
		if s.SubsetOf(c) && !c.Equal(s) {
			return false
		}
	}
	return true
}

// IsStable reports whether s is conflict-free and attacks every argument
// outside s.
func IsStable(af *core.AF, s core.Extension) bool {
	if !af.IsConflictFree(s) {
		return false
	}
	for _, a := range af.Arguments() {
		if s.Has(a) {
			continue
		}
		attacked := false
		for member := range s {
			if af.HasAttack(member, a) {
				attacked = true
				break
			}
		}
		if !attacked {
			return false
		}
	}
	return true
}

// CompleteExtensions enumerates every complete extension: the conflict-free
// fixpoints of the characteristic function. Enumeration walks the
// conflict-free lattice with pruning, never all raw subsets.
func CompleteExtensions(af *core.AF) core.ExtensionSet {
	out := core.NewExtensionSet()
	forEachConflictFree(af, func(s core.Extension) {
		if IsAdmissible(af, s) && Characteristic(af, s).Equal(s) {
			out.Add(s.Clone())
		}
	})
	return out
}

// PreferredExtensions enumerates the inclusion-maximal admissible sets: the
// maximal complete extensions. Always non-empty for a finite framework.
func PreferredExtensions(af *core.AF) core.ExtensionSet {
	complete := CompleteExtensions(af).Sorted()
	out := core.NewExtensionSet()
	for _, s := range complete {
		maximal := true
		for _, other := range complete {
			if s.SubsetOf(other) && !other.Equal(s) {
				maximal = false
				break
			}
		}
		if maximal {
			out.Add(s)
		}
	}
	return out
}

// StableExtensions enumerates the conflict-free sets attacking every outside
// argument. May be empty (e.g. odd cycles).
func StableExtensions(af *core.AF) core.ExtensionSet {
	out := core.NewExtensionSet()
	forEachConflictFree(af, func(s core.Extension) {
		if IsStable(af, s) {
			out.Add(s.Clone())
		}
	})
	return out
}

// Extensions computes the full ground truth for a framework: one extension
// set per semantics, with the grounded extension as a singleton set.
func Extensions(af *core.AF) core.Claim {
	return core.Claim{
		core.GroundedSemantics:  core.NewExtensionSet(Grounded(af)),
		core.CompleteSemantics:  CompleteExtensions(af),
		core.PreferredSemantics: PreferredExtensions(af),
		core.StableSemantics:    StableExtensions(af),
	}
}

// forEachConflictFree visits every conflict-free subset exactly once, growing
// candidates argument by argument and pruning any branch that introduces a
// conflict. The callback must not retain the extension; it is reused.
func forEachConflictFree(af *core.AF, visit func(core.Extension)) {
	args := af.Arguments()
	current := core.NewExtension()

	var walk func(i int)
	walk = func(i int) {
		if i == len(args) {
			visit(current)
			return
		}
		// Branch 1: leave args[i] out.
		walk(i + 1)

		// Branch 2: take args[i] if it keeps the set conflict-free.
		a := args[i]
		if af.HasAttack(a, a) {
			return
		}
		for member := range current {
			if af.HasAttack(a, member) || af.HasAttack(member, a) {
				return
			}
		}
		current.Add(a)
		walk(i + 1)
		delete(current, a)
	}
	walk(0)
}
