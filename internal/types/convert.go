package types

import (
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/rst"
)

// nestedTable maps a class/variant Name to its directly nested classes,
// keyed by their short NamePart — built by declareNested (lattice.go)
// from a single component before declareSubtyping runs.
type nestedTable map[ident.Name]map[ident.NamePart]ident.Name

// convert implements spec.md §4.6's RST-to-Type conversion table. The
// Field node's own span (ty.At) is where an ER01 is reported if a Field
// projection's base name has no such nested member.
func convert(ty rst.Type, in *Interner, nested nestedTable, acc *diag.Accumulator) *Type {
	switch {
	case ty.Node.Invalid:
		return in.Bottom()
	case ty.Node.Int:
		return in.Int()
	case ty.Node.Nat:
		return in.Nat()
	case ty.Node.Boolean:
		return in.Boolean()
	case ty.Node.Unit:
		return in.Unit()
	case ty.Node.Name != nil:
		return in.Name(*ty.Node.Name)
	case ty.Node.Ref != nil:
		return in.Reference(convert(*ty.Node.Ref, in, nested, acc))
	case ty.Node.Func != nil:
		args := make([]*Type, len(ty.Node.Func.Args))
		for i, a := range ty.Node.Func.Args {
			args[i] = convert(a, in, nested, acc)
		}
		return in.Function(args, convert(*ty.Node.Func.Result, in, nested, acc))
	case ty.Node.Field != nil:
		base := convert(*ty.Node.Field.Base, in, nested, acc)
		if base.Node.Name == nil {
			// A non-Name root (e.g. a field projection off a function
			// or reference type) is unspecified in the source — see
			// spec.md §9. Recover with Bottom, as an unresolved member
			// does, but without a diagnostic and without inventing a
			// resolution rule.
			return in.Bottom()
		}
		members, ok := nested[*base.Node.Name]
		if ok {
			if member, ok := members[ty.Node.Field.Name]; ok {
				return in.Name(member)
			}
		}
		diag.At(acc, ty.At).UnresolvedName()
		return in.Bottom()
	case ty.Node.Applied != nil:
		// Generic application has no defined Type shape in the source
		// (spec.md §9); fall back to the base type so downstream
		// subtyping at least sees the unapplied class.
		return convert(*ty.Node.Applied.Base, in, nested, acc)
	default:
		return in.Bottom()
	}
}
