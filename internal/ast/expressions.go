package ast

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Expression is a parsed value-producing expression.
type Expression struct {
	Node ExpressionNode
	At   source.Span
}

func (e Expression) Span() source.Span { return e.At }

// ExpressionNode is the closed sum of expression shapes.
type ExpressionNode struct {
	Reference *Expression // &Expr

	Call  *CallExpression
	Field *FieldExpression

	Name   *ident.NamePart
	Number *string
	String *string
	Unit   bool

	Invalid bool
}

// CallExpression is `Callee(Args...)`.
type CallExpression struct {
	Callee *Expression
	Args   []Expression
}

// FieldExpression is `Base.name`.
type FieldExpression struct {
	Base *Expression
	Name string
}
