package ast

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Declaration is one top-level or nested item: a class, variant, function,
// or variable/let binding.
type Declaration struct {
	Node DeclarationNode
	At   source.Span
}

func (d Declaration) Span() source.Span { return d.At }

// DeclarationNode is the closed sum of declaration shapes. Exactly one of
// the embedded pointers is non-nil.
type DeclarationNode struct {
	Class    *ClassDeclaration
	Variant  *VariantDeclaration
	Function *FunctionDeclaration
	Variable *VariableDeclaration
}

// ClassDeclaration is `class Name [is T, ...] <public members> [private
// <private members>] end`.
type ClassDeclaration struct {
	Name     DeclarationName
	Public   []Declaration
	Private  []Declaration
	Inherits []Type
}

// VariantDeclaration has the same shape as a class, and the parser reads
// it with the same rules; its nested class declarations are its cases.
// There is no separate `case` member syntax: the `case` keyword is lexed
// but never accepted as a declaration.
type VariantDeclaration struct {
	Name     DeclarationName
	Public   []Declaration
	Private  []Declaration
	Inherits []Type
}

// FunctionDeclaration is `function Name(args) ReturnType <body> end`, or
// with Body == nil, a bare signature (an abstract/declared-only member).
//
// This is non-nil when the parameter list opens with `this`, holding the
// number of trailing `&` reference markers (`this` = 0, `this&` = 1, ...).
// Nil means a free function with no implicit receiver.
type FunctionDeclaration struct {
	Name       DeclarationName
	This       *int
	Args       []Parameter
	ReturnType Type
	Body       *Block
}

// Parameter is one (name, type) entry in a function's parameter list.
type Parameter struct {
	Name ident.NamePart
	Type Type
}

// VariableDeclaration is `var Name Type [:= Body]`. Top-level and class-
// member bindings are always declared with `var`; `let` only introduces
// locals inside a function body (see LocalBinding in statements.go).
type VariableDeclaration struct {
	Name    DeclarationName
	Anno    Type
	Body    Expression
	HasBody bool
}

// DeclarationName is a possibly-prefixed name: `Prefix.Node`, where Prefix
// is present only for a method declared against an inherited class (e.g.
// `function Super.method() ...`).
type DeclarationName struct {
	Node   DeclarationNameNode
	Prefix *ident.NamePart
	At     source.Span
}

func (n DeclarationName) Span() source.Span { return n.At }

// DeclarationNameNode is the closed sum of declaration-name shapes.
type DeclarationNameNode struct {
	Identifier *ident.NamePart
	Quoted     *string
	Invalid    bool
}
