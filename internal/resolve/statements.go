package resolve

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/rst"
)

func (r *resolver) block(b ast.Block) rst.Block {
	var out rst.Block
	for _, s := range b.Statements {
		out.Statements = append(out.Statements, r.statement(s, &out))
	}
	return out
}

// statement implements spec.md §4.4's RST rewriting rules: `var`/`let`
// statements disappear as their own node, instead contributing a
// (Name, Type) pair to blk.Declarations and surfacing as an
// Assignment; everything else maps one-to-one.
func (r *resolver) statement(s ast.Statement, blk *rst.Block) rst.Statement {
	switch {
	case s.Node.Variable != nil:
		return r.localBinding(s, s.Node.Variable, blk, true)

	case s.Node.Constant != nil:
		return r.localBinding(s, s.Node.Constant, blk, false)

	case s.Node.Assignment != nil:
		var targetExpr rst.Expression
		if target, ok := r.resolveUse(s.Node.Assignment.Name, s.At); ok {
			targetExpr = rst.Expression{Node: rst.ExpressionNode{Name: &target}, At: s.At}
		} else {
			targetExpr = rst.Expression{Node: rst.ExpressionNode{Invalid: true}, At: s.At}
		}
		body := r.resolveExpr(s.Node.Assignment.Body)
		return rst.Statement{
			Node: rst.StatementNode{Assignment: &rst.AssignmentStatement{Target: targetExpr, Body: body}},
			At:   s.At,
		}

	case s.Node.Return != nil:
		e := r.resolveExpr(*s.Node.Return)
		return rst.Statement{Node: rst.StatementNode{Return: &e}, At: s.At}

	case s.Node.Expression != nil:
		e := r.resolveExpr(*s.Node.Expression)
		return rst.Statement{Node: rst.StatementNode{Expression: &e}, At: s.At}

	case s.Node.Null:
		return rst.Statement{Node: rst.StatementNode{Null: true}, At: s.At}

	default:
		inv := rst.Expression{Node: rst.ExpressionNode{Invalid: true}, At: s.At}
		return rst.Statement{Node: rst.StatementNode{Expression: &inv}, At: s.At}
	}
}

func (r *resolver) localBinding(s ast.Statement, lb *ast.LocalBinding, blk *rst.Block, mutable bool) rst.Statement {
	typ := r.resolveType(lb.Type)
	body := r.resolveExpr(lb.Body)
	name := r.declareLocal(lb.Name)

	blk.Declarations = append(blk.Declarations, rst.LocalDeclaration{Name: name, Type: typ})
	if mutable {
		r.mutable[name] = true
	}

	target := rst.Expression{Node: rst.ExpressionNode{Name: &name}, At: s.At}
	return rst.Statement{
		Node: rst.StatementNode{Assignment: &rst.AssignmentStatement{Target: target, Body: body}},
		At:   s.At,
	}
}
