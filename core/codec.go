package core

import (
	"strings"
)

// The canonical text form of a framework is
//
//	([A1,A2,A3], [(A1,A2),(A2,A3)])
//
// with arguments and attacks in sorted order. It is the single encoding shared
// by the prompt layer and the verifier, so argument identity survives any
// relabeling. Labels must not contain whitespace or the delimiters , ( ) [ ].

// EncodeAF renders af in the canonical text form.
func EncodeAF(af *AF) string {
	var b strings.Builder
	b.WriteString("([")
	for i, a := range af.Arguments() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(string(a))
	}
	b.WriteString("], [")
	for i, at := range af.Attacks() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(")
		b.WriteString(string(at.From))
		b.WriteString(",")
		b.WriteString(string(at.To))
		b.WriteString(")")
	}
	b.WriteString("])")
	return b.String()
}

// ParseAF parses the canonical text form back into a framework. The result of
// ParseAF(EncodeAF(af)) is structurally equal to af. Malformed input yields a
// ValidationError.
func ParseAF(name, text string) (*AF, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, NewValidationError("framework encoding must be wrapped in parentheses: %q", text)
	}
	s = s[1 : len(s)-1]

	argsPart, attacksPart, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}

	var args []Argument
	for _, tok := range splitList(argsPart) {
		label, err := parseLabel(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, label)
	}

	var attacks []Attack
	for _, tok := range splitPairs(attacksPart) {
		tok = strings.TrimSpace(tok)
		if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
			return nil, NewValidationError("malformed attack pair %q", tok)
		}
		inner := tok[1 : len(tok)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 2 {
			return nil, NewValidationError("attack pair %q must have exactly two members", tok)
		}
		from, err := parseLabel(parts[0])
		if err != nil {
			return nil, err
		}
		to, err := parseLabel(parts[1])
		if err != nil {
			return nil, err
		}
		attacks = append(attacks, Attack{From: from, To: to})
	}

	return NewAF(name, args, attacks)
}

// splitTopLevel separates the argument list from the attack list: the two
// bracketed sections of the canonical form.
func splitTopLevel(s string) (string, string, error) {
	open := strings.Index(s, "[")
	if open < 0 {
		return "", "", NewValidationError("missing argument list in %q", s)
	}
	close := strings.Index(s[open:], "]")
	if close < 0 {
		return "", "", NewValidationError("unterminated argument list in %q", s)
	}
	argsPart := s[open+1 : open+close]

	rest := s[open+close+1:]
	open2 := strings.Index(rest, "[")
	if open2 < 0 {
		return "", "", NewValidationError("missing attack list in %q", s)
	}
	close2 := strings.LastIndex(rest, "]")
	if close2 < open2 {
		return "", "", NewValidationError("unterminated attack list in %q", s)
	}
	return argsPart, rest[open2+1 : close2], nil
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// splitPairs splits "(a,b),(c,d)" on the commas between pairs.
func splitPairs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func parseLabel(tok string) (Argument, error) {
	label := strings.TrimSpace(tok)
	label = strings.Trim(label, `"'`)
	if err := checkLabel(Argument(label)); err != nil {
		return "", err
	}
	return Argument(label), nil
}

// checkLabel enforces the character rule the text form depends on. NewAF
// applies it too, so every framework that exists can round-trip through the
// codec.
func checkLabel(a Argument) error {
	if a == "" {
		return NewValidationError("empty argument label")
	}
	if strings.ContainsAny(string(a), " \t(),[]") {
		return NewValidationError("argument label %q contains delimiter characters", a)
	}
	return nil
}
