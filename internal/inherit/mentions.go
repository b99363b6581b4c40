// Package inherit computes the inheritance "mentions" graph over a
// resolved file's classes and variants, and partitions it into
// strongly connected components in dependency order — the ordering
// internal/types relies on to build its subtyping lattice one
// component at a time.
//
// Grounded on spec.md §4.5 and
// original_source/src/inheritance/{mentions,components}.rs.
package inherit

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/rst"
)

func nameComparator(a, b interface{}) int {
	as, bs := a.(ident.Name).String(), b.(ident.Name).String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func newNameSet(items ...ident.Name) *treeset.Set {
	elems := make([]interface{}, len(items))
	for i, n := range items {
		elems[i] = n
	}
	return treeset.NewWith(nameComparator, elems...)
}

// Mentions maps every class/variant Name to the set of Names it
// mentions positively in its `is` clause, plus (for a Variant) an
// implicit mention added to each of its nested classes.
type Mentions map[ident.Name]*treeset.Set

// AllMentions walks items (as resolved by internal/resolve) and builds
// the mentions graph for every class/variant found, at any nesting
// depth.
func AllMentions(items rst.Items) Mentions {
	m := Mentions{}
	collectMentions(m, items.Classes)
	return m
}

func collectMentions(m Mentions, classes []rst.Class) {
	for _, c := range classes {
		name, ok := classIdentity(c.Name)
		if ok {
			set := newNameSet()
			for _, ty := range c.Inherits {
				typeMentions(set, ty)
			}
			if existing, ok := m[name]; ok {
				existing.Each(func(_ int, v interface{}) { set.Add(v) })
			}
			m[name] = set
		}

		if ok && c.Kind == rst.ClassKindVariant {
			for _, nested := range c.Items.Classes {
				nestedName, nestedOK := classIdentity(nested.Name)
				if !nestedOK {
					continue
				}
				if m[nestedName] == nil {
					m[nestedName] = newNameSet()
				}
				m[nestedName].Add(name)
			}
		}

		collectMentions(m, c.Items.Classes)
	}
}

// classIdentity extracts the plain Name a class/variant declaration
// resolved to. Field-prefixed class names never occur in practice (the
// grammar allows a prefix on any declaration, but nothing in this
// front end nests a class under another class's method), and a
// Field-scoped class is left out of the mentions graph rather than
// guessed at — same spirit as resolve_names.rs's declaration_name
// leaving DeclarationName::Field unimplemented (todo!()) for this
// exact purpose.
func classIdentity(name rst.DeclarationName) (ident.Name, bool) {
	if name.Name != nil {
		return *name.Name, true
	}
	return ident.Name{}, false
}

func typeMentions(into *treeset.Set, ty rst.Type) {
	switch {
	case ty.Node.Name != nil:
		into.Add(*ty.Node.Name)
	case ty.Node.Field != nil:
		typeMentions(into, *ty.Node.Field.Base)
	case ty.Node.Applied != nil:
		typeMentions(into, *ty.Node.Applied.Base)
		for _, a := range ty.Node.Applied.Args {
			typeMentions(into, a)
		}
	case ty.Node.Func != nil:
		for _, a := range ty.Node.Func.Args {
			typeMentions(into, a)
		}
		typeMentions(into, *ty.Node.Func.Result)
	case ty.Node.Ref != nil:
		typeMentions(into, *ty.Node.Ref)
	}
	// Int, Nat, Boolean, Unit, Invalid contribute nothing.
}
