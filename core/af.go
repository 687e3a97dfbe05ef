package core

import (
	"sort"
)

// Argument is an opaque label, unique within a framework.
type Argument string

// Attack is an ordered pair: From attacks To. Self-attacks are permitted.
type Attack struct {
	From Argument `json:"from"`
	To   Argument `json:"to"`
}

// AF is a finite argumentation framework: a set of arguments plus an attack
// relation over them. Values are immutable after construction; transformations
// build new frameworks.
type AF struct {
	name      string
	args      []Argument // sorted
	argSet    map[Argument]struct{}
	attacks   map[Attack]struct{}
	attackers map[Argument][]Argument // a -> sorted arguments attacking a
	targets   map[Argument][]Argument // a -> sorted arguments a attacks
}

// NewAF builds a framework from an argument list and an attack list.
// Duplicate arguments and attacks collapse. An attack referencing an argument
// outside the argument set, or a label that cannot survive the text form, is
// rejected with a ValidationError.
func NewAF(name string, args []Argument, attacks []Attack) (*AF, error) {
	argSet := make(map[Argument]struct{}, len(args))
	for _, a := range args {
		if err := checkLabel(a); err != nil {
			return nil, err
		}
		argSet[a] = struct{}{}
	}
	sorted := make([]Argument, 0, len(argSet))
	for a := range argSet {
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	attackSet := make(map[Attack]struct{}, len(attacks))
	attackers := make(map[Argument][]Argument)
	targets := make(map[Argument][]Argument)
	for _, at := range attacks {
		if _, ok := argSet[at.From]; !ok {
			return nil, NewValidationError("attack (%s,%s) references unknown argument %q", at.From, at.To, at.From)
		}
		if _, ok := argSet[at.To]; !ok {
			return nil, NewValidationError("attack (%s,%s) references unknown argument %q", at.From, at.To, at.To)
		}
		if _, dup := attackSet[at]; dup {
			continue
		}
		attackSet[at] = struct{}{}
		attackers[at.To] = append(attackers[at.To], at.From)
		targets[at.From] = append(targets[at.From], at.To)
	}
	for _, adj := range []map[Argument][]Argument{attackers, targets} {
		for _, list := range adj {
			sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		}
	}

	return &AF{
		name:      name,
		args:      sorted,
		argSet:    argSet,
		attacks:   attackSet,
		attackers: attackers,
		targets:   targets,
	}, nil
}

// Name returns the framework's display name.
func (af *AF) Name() string { return af.name }

// Size returns the number of arguments.
func (af *AF) Size() int { return len(af.args) }

// Has reports whether a belongs to the argument set.
func (af *AF) Has(a Argument) bool {
	_, ok := af.argSet[a]
	return ok
}

// Arguments returns the arguments in sorted order.
func (af *AF) Arguments() []Argument {
	out := make([]Argument, len(af.args))
	copy(out, af.args)
	return out
}

// Attacks returns the attack relation in sorted order.
func (af *AF) Attacks() []Attack {
	out := make([]Attack, 0, len(af.attacks))
	for at := range af.attacks {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// HasAttack reports whether from attacks to.
func (af *AF) HasAttack(from, to Argument) bool {
	_, ok := af.attacks[Attack{From: from, To: to}]
	return ok
}

// Attackers returns the arguments attacking a, sorted.
func (af *AF) Attackers(a Argument) []Argument {
	out := make([]Argument, len(af.attackers[a]))
	copy(out, af.attackers[a])
	return out
}

// AttackedBy returns the arguments a attacks, sorted.
func (af *AF) AttackedBy(a Argument) []Argument {
	out := make([]Argument, len(af.targets[a]))
	copy(out, af.targets[a])
	return out
}

// IsConflictFree reports whether no member of s attacks another member,
// including self-attacks.
func (af *AF) IsConflictFree(s Extension) bool {
	for a := range s {
		for _, t := range af.targets[a] {
			if s.Has(t) {
				return false
			}
		}
	}
	return true
}

// Defends reports whether s defends a: every attacker of a is attacked by
// some member of s. An unattacked argument is defended by every set.
func (af *AF) Defends(s Extension, a Argument) bool {
	for _, attacker := range af.attackers[a] {
		countered := false
		for member := range s {
			if af.HasAttack(member, attacker) {
				countered = true
				break
			}
		}
		if !countered {
			return false
		}
	}
	return true
}
