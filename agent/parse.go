// Package agent holds the reasoning-agent boundary: the answer schema the
// agent must produce, strict parsing of claimed extensions onto a framework's
// arguments, and shared prompt text. Parse failures surface as
// *core.AgentResponseError so the oracle can record an error verdict instead
// of mistaking an unusable answer for an empty extension.
package agent

import (
	"encoding/json"
	"strings"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Instruction is the system prompt establishing the answer contract. The
// framework itself is appended in its canonical text form.
const Instruction = `You are an expert in computational argumentation. You will be given a string representation of an Argumentation Framework (AF) as a tuple of arguments and attack relationships. The input follows this schema: ([arguments], [attack_relationships]).

Your task is to analyze the provided AF and compute all Grounded (GE), Complete (CE), Preferred (PE), and Stable (SE) extensions.

Format your response as a single, clean JSON object with the following schema:
{
    "GE": [[list of arguments], ...],
    "CE": [[list of arguments], ...],
    "PE": [[list of arguments], ...],
    "SE": [[list of arguments], ...]
}

- Each argument name must be a string.
- If an extension type has multiple possible sets, list all of them.
- If an extension type results in an empty set, represent it as [[]].
- If an extension type has no valid sets, represent it as [].`

// ParseClaim parses a raw agent reply into a claim mapped onto af's
// arguments. It is strict: every one of the four semantics keys must be
// present, every member must be a plain argument label with no embedded
// whitespace (mathematical notation and prose descriptions are rejected), and
// every label must name an argument of af.
func ParseClaim(af *core.AF, raw []byte) (core.Claim, error) {
	var reply map[string][][]string
	if err := json.Unmarshal(StripFences(raw), &reply); err != nil {
		return nil, core.NewAgentResponseError("cannot decode reply as extension JSON: %v", err)
	}

	claim := make(core.Claim, len(core.AllSemantics))
	for _, sem := range core.AllSemantics {
		sets, ok := reply[string(sem)]
		if !ok {
			return nil, core.NewAgentResponseError("reply is missing the %s key", sem)
		}
		parsed := core.NewExtensionSet()
		for _, set := range sets {
			ext := core.NewExtension()
			for _, label := range set {
				if strings.TrimSpace(label) != label || strings.ContainsAny(label, " \t\n") {
					return nil, core.NewAgentResponseError(
						"%s member %q is not a plain argument name; mathematical notation or descriptions are not acceptable", sem, label)
				}
				if label == "" {
					return nil, core.NewAgentResponseError("%s contains an empty argument name", sem)
				}
				a := core.Argument(label)
				if !af.Has(a) {
					return nil, core.NewAgentResponseError("%s names unknown argument %q", sem, label)
				}
				ext.Add(a)
			}
			parsed.Add(ext)
		}
		claim[sem] = parsed
	}
	return claim, nil
}

// EncodeClaim renders a claim in the reply schema, the inverse of ParseClaim.
// Extensions and their members are emitted in canonical order.
func EncodeClaim(claim core.Claim) []byte {
	reply := make(map[string][][]string, len(core.AllSemantics))
	for _, sem := range core.AllSemantics {
		sets := make([][]string, 0, claim[sem].Len())
		for _, e := range claim[sem].Sorted() {
			set := make([]string, 0, len(e))
			for _, a := range e.Sorted() {
				set = append(set, string(a))
			}
			sets = append(sets, set)
		}
		reply[string(sem)] = sets
	}
	raw, _ := json.Marshal(reply)
	return raw
}

// StripFences removes a surrounding markdown code fence, with or without a
// language tag, that chat models habitually wrap JSON in.
func StripFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// Drop a language tag like "json" on the opening fence line.
		if fence := strings.TrimSpace(s[:nl]); fence == "json" || fence == "" {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// Prompt renders the full user prompt for a framework.
func Prompt(af *core.AF) string {
	return "Here is the Argumentation Framework: " + core.EncodeAF(af)
}
