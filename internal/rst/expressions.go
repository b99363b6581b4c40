package rst

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

type Expression struct {
	Node ExpressionNode
	At   source.Span
}

// ExpressionNode mirrors ast.ExpressionNode. A resolved Name replaces
// ast's raw NamePart once lookup has run (internal/resolve §4.4's
// lookup algorithm); unresolved identifiers become Invalid plus an
// ER01 diagnostic rather than surviving into the RST unresolved.
type ExpressionNode struct {
	Reference *Expression
	Call      *CallExpression
	Field     *FieldExpression
	Name      *ident.Name
	Number    *string
	String    *string
	Unit      bool
	Invalid   bool
}

type CallExpression struct {
	Callee *Expression
	Args   []Expression
}

type FieldExpression struct {
	Base *Expression
	Name ident.NamePart
}
