package resolve

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/rst"
)

func (r *resolver) resolveType(t ast.Type) rst.Type {
	switch {
	case t.Node.Int:
		return rst.Type{Node: rst.TypeNode{Int: true}, At: t.At}
	case t.Node.Nat:
		return rst.Type{Node: rst.TypeNode{Nat: true}, At: t.At}
	case t.Node.Boolean:
		return rst.Type{Node: rst.TypeNode{Boolean: true}, At: t.At}
	case t.Node.Unit:
		return rst.Type{Node: rst.TypeNode{Unit: true}, At: t.At}
	case t.Node.Invalid:
		return rst.Type{Node: rst.TypeNode{Invalid: true}, At: t.At}

	case t.Node.Name != nil:
		n, ok := r.resolveUse(*t.Node.Name, t.At)
		if !ok {
			return rst.Type{Node: rst.TypeNode{Invalid: true}, At: t.At}
		}
		return rst.Type{Node: rst.TypeNode{Name: &n}, At: t.At}

	case t.Node.Field != nil:
		base := r.resolveType(*t.Node.Field.Base)
		return rst.Type{
			Node: rst.TypeNode{Field: &rst.FieldType{Base: &base, Name: t.Node.Field.Name}},
			At:   t.At,
		}

	case t.Node.Applied != nil:
		base := r.resolveType(*t.Node.Applied.Base)
		args := make([]rst.Type, 0, len(t.Node.Applied.Args))
		for _, a := range t.Node.Applied.Args {
			args = append(args, r.resolveType(a))
		}
		return rst.Type{
			Node: rst.TypeNode{Applied: &rst.AppliedType{Base: &base, Args: args}},
			At:   t.At,
		}

	case t.Node.Func != nil:
		args := make([]rst.Type, 0, len(t.Node.Func.Args))
		for _, a := range t.Node.Func.Args {
			args = append(args, r.resolveType(a))
		}
		result := r.resolveType(*t.Node.Func.Result)
		return rst.Type{
			Node: rst.TypeNode{Func: &rst.FunctionType{Args: args, Result: &result}},
			At:   t.At,
		}

	case t.Node.Ref != nil:
		inner := r.resolveType(*t.Node.Ref)
		return rst.Type{Node: rst.TypeNode{Ref: &inner}, At: t.At}

	default:
		return rst.Type{Node: rst.TypeNode{Invalid: true}, At: t.At}
	}
}
