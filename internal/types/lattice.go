package types

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/inherit"
	"github.com/rry-lang/rryc/internal/rst"
)

// Info is the subtyping lattice built for one resolved file: every
// class/variant's Type, which of them remain open for external
// subclassing, the nested-member table Field projections resolve
// through, and the Subtypes multimap connecting them all.
type Info struct {
	Interner *Interner
	Subtypes *Subtypes
	Open     map[*Type]bool
	Nested   nestedTable
}

// Build runs spec.md §4.6's two-phase, per-component lattice
// construction over items, driven by internal/inherit.Components —
// that ordering guarantees every type a component's inherits clauses
// can reach was already declared by the time that component runs.
// in is the Interner the resulting Types are built from; pass the same
// Interner across every source in a compilation session so Type values
// for shared names intern identically (spec.md §5's "shared,
// internally synchronized, append-only" intern table requirement,
// carried by internal/query.Store).
func Build(in *Interner, items rst.Items, acc *diag.Accumulator) *Info {
	classes := classesByName(items)
	components := inherit.Components(inherit.AllMentions(items))

	info := &Info{
		Interner: in,
		Subtypes: NewSubtypes(),
		Open:     map[*Type]bool{},
		Nested:   nestedTable{},
	}

	for _, component := range components {
		names := componentNames(component)
		declareNested(info, classes, names)
		declareSubtyping(info, classes, names, acc)
	}
	return info
}

func componentNames(component *treeset.Set) []ident.Name {
	values := component.Values()
	names := make([]ident.Name, len(values))
	for i, v := range values {
		names[i] = v.(ident.Name)
	}
	return names
}

func classesByName(items rst.Items) map[ident.Name]rst.Class {
	table := map[ident.Name]rst.Class{}
	var walk func([]rst.Class)
	walk = func(classes []rst.Class) {
		for _, c := range classes {
			if c.Name.Name != nil {
				table[*c.Name.Name] = c
			}
			walk(c.Items.Classes)
		}
	}
	walk(items.Classes)
	return table
}

// declareNested is spec.md §4.6 step 1: every Class-kind name in the
// component is marked open for subclassing, and each class's directly
// nested classes populate info.Nested keyed by short name. A nested
// declaration named Field or Invalid is skipped, matching the source's
// declare_nested match arms (see classIdentity's doc comment in
// internal/inherit for the same skip elsewhere in the pipeline).
func declareNested(info *Info, classes map[ident.Name]rst.Class, names []ident.Name) {
	for _, name := range names {
		c, ok := classes[name]
		if !ok {
			continue
		}
		t := info.Interner.Name(name)
		if c.Kind == rst.ClassKindClass {
			info.Open[t] = true
		}
		members := map[ident.NamePart]ident.Name{}
		for _, nested := range c.Items.Classes {
			if nested.Name.Name == nil {
				continue
			}
			members[nested.Name.Name.Part] = *nested.Name.Name
		}
		if len(members) > 0 {
			info.Nested[name] = members
		}
	}
}

// declareSubtyping is spec.md §4.6 step 2: every inherits-clause type
// expression converts to a Type and becomes a supertype edge. A
// Variant's implicit edges to its nested classes are reserved behavior,
// not fully specified in the source (spec.md §9), and are left
// unimplemented here rather than guessed at.
func declareSubtyping(info *Info, classes map[ident.Name]rst.Class, names []ident.Name, acc *diag.Accumulator) {
	for _, name := range names {
		c, ok := classes[name]
		if !ok {
			continue
		}
		sub := info.Interner.Name(name)
		for _, inheritsType := range c.Inherits {
			parent := convert(inheritsType, info.Interner, info.Nested, acc)
			if path, rejected := info.Subtypes.AddSubtype(parent, sub); rejected {
				diag.At(acc, inheritsType.At).SubtypeCycle(pathStrings(path))
			}
		}
	}
}

func pathStrings(path []*Type) []string {
	strs := make([]string, len(path))
	for i, t := range path {
		strs[i] = t.String()
	}
	return strs
}
