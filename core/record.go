package core

// VerdictStatus is the tri-state outcome of one check.
type VerdictStatus string

const (
	VerdictPass  VerdictStatus = "pass"
	VerdictFail  VerdictStatus = "fail"
	VerdictError VerdictStatus = "error"
)

// Verdict is the outcome of one check on one instance, for one semantics.
// Produced once, immutable, consumed by reporting.
type Verdict struct {
	// Check identifies the test performed: "validity", a fundamental
	// property tag like "FP-1", or a metamorphic tag like "MR-ISO".
	Check      string        `json:"check"`
	Semantics  Semantics     `json:"semantics"`
	Status     VerdictStatus `json:"status"`
	Claimed    []string      `json:"claimed,omitempty"`
	Expected   []string      `json:"expected,omitempty"`
	Violations []string      `json:"violations,omitempty"`
}

// RecordVersion versions the ResultRecord field set. Reporting tools pin the
// version they understand.
const RecordVersion = 1

// ResultRecord is one immutable evaluation outcome: a verdict placed in its
// run context. The field set and ordering are the contract the report
// generator relies on.
type ResultRecord struct {
	Version    int           `json:"version"`
	Generator  string        `json:"generator"`
	Size       int           `json:"size"`
	Relation   string        `json:"relation"` // "base" for the untransformed instance
	Semantics  Semantics     `json:"semantics"`
	Check      string        `json:"check"`
	Claimed    []string      `json:"claimed,omitempty"`
	Expected   []string      `json:"expected,omitempty"`
	Verdict    VerdictStatus `json:"verdict"`
	Violations []string      `json:"violations,omitempty"`
}

// PassVerdict builds a passing verdict for a check.
func PassVerdict(check string, sem Semantics, claimed, expected []string) Verdict {
	return Verdict{Check: check, Semantics: sem, Status: VerdictPass, Claimed: claimed, Expected: expected}
}

// FailVerdict builds a failing verdict carrying the violation details.
func FailVerdict(check string, sem Semantics, claimed, expected []string, violations ...string) Verdict {
	return Verdict{Check: check, Semantics: sem, Status: VerdictFail, Claimed: claimed, Expected: expected, Violations: violations}
}

// ErrorVerdict builds an error verdict for an unusable answer. It is distinct
// from a fail so reporting can separate "wrong" from "unusable".
func ErrorVerdict(check string, sem Semantics, reason string) Verdict {
	return Verdict{Check: check, Semantics: sem, Status: VerdictError, Violations: []string{reason}}
}
