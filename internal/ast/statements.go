package ast

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Block is a function body: the sequence of statements between the
// function's signature and its `end`.
type Block struct {
	Statements []Statement
}

// Statement is one statement in a function body.
type Statement struct {
	Node StatementNode
	At   source.Span
}

func (s Statement) Span() source.Span { return s.At }

// StatementNode is the closed sum of statement shapes.
type StatementNode struct {
	Expression *Expression

	Variable *LocalBinding
	Constant *LocalBinding

	Assignment *AssignmentStatement

	Return *Expression

	Null bool
}

// LocalBinding is `var Name Type := Body` or `let Name Type := Body`
// inside a function body (as opposed to VariableDeclaration, which is a
// top-level or class-member binding).
type LocalBinding struct {
	Name ident.NamePart
	Type Type
	Body Expression
}

// AssignmentStatement is `Name := Body`.
type AssignmentStatement struct {
	Name ident.NamePart
	Body Expression
}
