package types

// Subtypes is the bidirectional supertype/subtype multimap: supers[t]
// holds every Type directly declared as a supertype of t, subs[t] holds
// every Type directly declared as a subtype of t, always kept in sync.
//
// Grounded on spec.md §4.6's data structure and
// original_source/src/types/subtyping.rs's Subtypes, with one
// deliberate deviation from the literal Rust revision — see AddSubtype.
type Subtypes struct {
	supers map[*Type][]*Type
	subs   map[*Type][]*Type
}

// NewSubtypes returns an empty Subtypes multimap.
func NewSubtypes() *Subtypes {
	return &Subtypes{supers: map[*Type][]*Type{}, subs: map[*Type][]*Type{}}
}

func containsType(list []*Type, t *Type) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// AddSubtype records that sub is a direct subtype of parent: parent
// joins supers[sub], sub joins subs[parent].
//
// spec.md §4.6's prose places the cycle check inside add_subtype itself
// ("Rejected ... if a path from parent up through supertypes ever
// reaches sub"), checked before the edge is inserted. The literal
// original_source/src/types/subtyping.rs revision disagrees with its
// own spec: add_subtype there inserts unconditionally, and cycle safety
// is only a debug-mode assert_integrity panic; the actual
// cycle-avoidance the original performs lives one level up, in
// info.rs's declare_subtyping, as a caller-side pre-check before it
// ever calls add_subtype. This port follows spec.md's prose as
// authoritative over that inconsistency: the check lives here, inside
// AddSubtype, and failure is reported through the return value for the
// caller to turn into an ET00 diagnostic rather than a panic.
//
// Returns the witnessing path (see SupertypePath) and true when the
// edge was rejected; on success returns (nil, false).
func (s *Subtypes) AddSubtype(parent, sub *Type) ([]*Type, bool) {
	if path, ok := s.SupertypePath(parent, sub); ok {
		return path, true
	}
	if !containsType(s.supers[sub], parent) {
		s.supers[sub] = append(s.supers[sub], parent)
	}
	if !containsType(s.subs[parent], sub) {
		s.subs[parent] = append(s.subs[parent], sub)
	}
	return nil, false
}

// IsSubtype reports whether this is a subtype of of: reflexively true
// when this == of, otherwise a DFS over this's declared supertypes.
func (s *Subtypes) IsSubtype(this, of *Type) bool {
	if this == of {
		return true
	}
	for _, parent := range s.supers[this] {
		if s.IsSubtype(parent, of) {
			return true
		}
	}
	return false
}

// SupertypePath returns a path [b, ..., a] witnessing a ≤ b — b first
// (the target supertype), a last (the source subtype) — or (nil, false)
// if a is not (yet) a subtype of b.
func (s *Subtypes) SupertypePath(a, b *Type) ([]*Type, bool) {
	if a == b {
		return []*Type{b}, true
	}
	for _, parent := range s.supers[a] {
		if path, ok := s.SupertypePath(parent, b); ok {
			return append(path, a), true
		}
	}
	return nil, false
}

// Types returns every Type that participates in at least one subtyping
// edge, as either a sub or a super, in no particular order. Intended
// for introspection (e.g. a dump/debug command), not the lattice's own
// algorithms.
func (s *Subtypes) Types() []*Type {
	seen := map[*Type]bool{}
	var result []*Type
	for t := range s.supers {
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	for t := range s.subs {
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	return result
}

// Supertypes returns of followed by every transitive supertype of of,
// in no particular order and with possible duplicates in a diamond
// lattice — callers that need a set should dedupe. The source's
// supertypes is a lazy iterator; this port returns a slice instead,
// matching how the rest of this codebase favors plain slices over
// iterator objects for these small, short-lived graphs.
func (s *Subtypes) Supertypes(of *Type) []*Type {
	result := []*Type{of}
	for _, parent := range s.supers[of] {
		result = append(result, s.Supertypes(parent)...)
	}
	return result
}
