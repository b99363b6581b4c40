package resolve

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/rst"
)

func (r *resolver) resolveExpr(e ast.Expression) rst.Expression {
	switch {
	case e.Node.Reference != nil:
		inner := r.resolveExpr(*e.Node.Reference)
		return rst.Expression{Node: rst.ExpressionNode{Reference: &inner}, At: e.At}

	case e.Node.Call != nil:
		callee := r.resolveExpr(*e.Node.Call.Callee)
		args := make([]rst.Expression, 0, len(e.Node.Call.Args))
		for _, a := range e.Node.Call.Args {
			args = append(args, r.resolveExpr(a))
		}
		return rst.Expression{
			Node: rst.ExpressionNode{Call: &rst.CallExpression{Callee: &callee, Args: args}},
			At:   e.At,
		}

	case e.Node.Field != nil:
		base := r.resolveExpr(*e.Node.Field.Base)
		name := fieldPart(e.Node.Field.Name)
		return rst.Expression{
			Node: rst.ExpressionNode{Field: &rst.FieldExpression{Base: &base, Name: name}},
			At:   e.At,
		}

	case e.Node.Name != nil:
		n, ok := r.resolveUse(*e.Node.Name, e.At)
		if !ok {
			return rst.Expression{Node: rst.ExpressionNode{Invalid: true}, At: e.At}
		}
		return rst.Expression{Node: rst.ExpressionNode{Name: &n}, At: e.At}

	case e.Node.Number != nil:
		text := *e.Node.Number
		return rst.Expression{Node: rst.ExpressionNode{Number: &text}, At: e.At}

	case e.Node.String != nil:
		text := *e.Node.String
		return rst.Expression{Node: rst.ExpressionNode{String: &text}, At: e.At}

	case e.Node.Unit:
		return rst.Expression{Node: rst.ExpressionNode{Unit: true}, At: e.At}

	default:
		return rst.Expression{Node: rst.ExpressionNode{Invalid: true}, At: e.At}
	}
}

// fieldPart recovers the NamePart kind ast.FieldExpression's bare
// string dropped: the lexer only ever produces a TypeName or ValueName
// token for a field access (internal/parser's longExpr), and those
// token classes are themselves defined by the identifier's leading
// case, so the case of the first rune is enough to reconstruct it.
func fieldPart(text string) ident.NamePart {
	if text != "" && text[0] >= 'A' && text[0] <= 'Z' {
		return ident.NewTypePart(text)
	}
	return ident.NewValuePart(text)
}
