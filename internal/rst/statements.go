package rst

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Block is a resolved statement sequence. Declarations lists every
// local (`var`/`let`) name introduced directly in this block, paired
// with its resolved type, in declaration order — the resolver appends
// to this as it walks Statements, since a local's scope begins at its
// own declaration, not at the top of the block.
type Block struct {
	Declarations []LocalDeclaration
	Statements   []Statement
}

type LocalDeclaration struct {
	Name ident.Name
	Type Type
}

type Statement struct {
	Node StatementNode
	At   source.Span
}

// StatementNode mirrors ast.StatementNode. `var`/`let` statements do
// not survive into the RST as their own node: they become an entry in
// the enclosing Block's Declarations plus an Assignment statement, per
// spec.md §4.4's RST rewriting rules.
type StatementNode struct {
	Expression *Expression
	Assignment *AssignmentStatement
	Return     *Expression
	Null       bool
}

type AssignmentStatement struct {
	Target Expression
	Body   Expression
}
