package core

// Semantics identifies one of the four argumentation semantics under test.
type Semantics string

const (
	GroundedSemantics  Semantics = "GE"
	CompleteSemantics  Semantics = "CE"
	PreferredSemantics Semantics = "PE"
	StableSemantics    Semantics = "SE"
)

// AllSemantics lists the semantics in their fixed evaluation order.
var AllSemantics = []Semantics{GroundedSemantics, CompleteSemantics, PreferredSemantics, StableSemantics}

// Valid reports whether s is one of the four known semantics.
func (s Semantics) Valid() bool {
	switch s {
	case GroundedSemantics, CompleteSemantics, PreferredSemantics, StableSemantics:
		return true
	}
	return false
}

// Description returns the long name of the semantics.
func (s Semantics) Description() string {
	switch s {
	case GroundedSemantics:
		return "grounded"
	case CompleteSemantics:
		return "complete"
	case PreferredSemantics:
		return "preferred"
	case StableSemantics:
		return "stable"
	default:
		return "unknown"
	}
}

// Claim is an agent's full answer for one framework: one extension set per
// semantics.
type Claim map[Semantics]ExtensionSet
