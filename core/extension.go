package core

import (
	"sort"
	"strings"
)

// Extension is a subset of a framework's arguments, representing one claimed
// or computed solution under a semantics.
type Extension map[Argument]struct{}

// NewExtension builds an extension from the given arguments.
func NewExtension(args ...Argument) Extension {
	e := make(Extension, len(args))
	for _, a := range args {
		e[a] = struct{}{}
	}
	return e
}

// Has reports membership of a.
func (e Extension) Has(a Argument) bool {
	_, ok := e[a]
	return ok
}

// Add inserts a. Used while building; computed extensions are never mutated
// after they are returned.
func (e Extension) Add(a Argument) { e[a] = struct{}{} }

// Clone returns an independent copy.
func (e Extension) Clone() Extension {
	out := make(Extension, len(e))
	for a := range e {
		out[a] = struct{}{}
	}
	return out
}

// Union returns a new extension containing the members of both sets.
func (e Extension) Union(other Extension) Extension {
	out := e.Clone()
	for a := range other {
		out[a] = struct{}{}
	}
	return out
}

// Equal reports set equality.
func (e Extension) Equal(other Extension) bool {
	if len(e) != len(other) {
		return false
	}
	for a := range e {
		if !other.Has(a) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every member of e belongs to other.
func (e Extension) SubsetOf(other Extension) bool {
	for a := range e {
		if !other.Has(a) {
			return false
		}
	}
	return true
}

// Sorted returns the members in sorted order.
func (e Extension) Sorted() []Argument {
	out := make([]Argument, 0, len(e))
	for a := range e {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Canonical returns the canonical display form, e.g. "{A1,A3}". The empty
// extension renders as "{}".
func (e Extension) Canonical() string {
	members := e.Sorted()
	parts := make([]string, len(members))
	for i, a := range members {
		parts[i] = string(a)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Rename returns a copy with every member mapped through rename. Members
// missing from the map keep their label.
func (e Extension) Rename(rename map[Argument]Argument) Extension {
	out := make(Extension, len(e))
	for a := range e {
		if to, ok := rename[a]; ok {
			out[to] = struct{}{}
		} else {
			out[a] = struct{}{}
		}
	}
	return out
}

// ExtensionSet is a set of extensions, keyed by canonical form. It is the
// shape of one semantics' answer: zero, one, or many extensions.
type ExtensionSet map[string]Extension

// NewExtensionSet builds a set from the given extensions.
func NewExtensionSet(exts ...Extension) ExtensionSet {
	s := make(ExtensionSet, len(exts))
	for _, e := range exts {
		s.Add(e)
	}
	return s
}

// Add inserts e.
func (s ExtensionSet) Add(e Extension) { s[e.Canonical()] = e }

// Contains reports whether an extension equal to e is present.
func (s ExtensionSet) Contains(e Extension) bool {
	_, ok := s[e.Canonical()]
	return ok
}

// Len returns the number of extensions.
func (s ExtensionSet) Len() int { return len(s) }

// Equal reports whether both sets hold exactly the same extensions.
func (s ExtensionSet) Equal(other ExtensionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for key := range s {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every extension of s appears in other.
func (s ExtensionSet) SubsetOf(other ExtensionSet) bool {
	for key := range s {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the extensions ordered by canonical form.
func (s ExtensionSet) Sorted() []Extension {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Extension, len(keys))
	for i, key := range keys {
		out[i] = s[key]
	}
	return out
}

// Canonical returns the canonical display form of the whole set,
// e.g. "[{A1,A3},{A2,A4}]".
func (s ExtensionSet) Canonical() string {
	exts := s.Sorted()
	parts := make([]string, len(exts))
	for i, e := range exts {
		parts[i] = e.Canonical()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// CanonicalSlice returns each extension's canonical form, sorted. This is the
// shape result records carry.
func (s ExtensionSet) CanonicalSlice() []string {
	exts := s.Sorted()
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = e.Canonical()
	}
	return out
}

// Rename returns a copy with every extension mapped through rename.
func (s ExtensionSet) Rename(rename map[Argument]Argument) ExtensionSet {
	out := make(ExtensionSet, len(s))
	for _, e := range s {
		out.Add(e.Rename(rename))
	}
	return out
}

// UnionEach returns a copy with extra united into every extension. An empty
// input set stays empty.
func (s ExtensionSet) UnionEach(extra Extension) ExtensionSet {
	out := make(ExtensionSet, len(s))
	for _, e := range s {
		out.Add(e.Union(extra))
	}
	return out
}
