package ast

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Type is a parsed type expression.
type Type struct {
	Node TypeNode
	At   source.Span
}

func (t Type) Span() source.Span { return t.At }

// TypeNode is the closed sum of type shapes. Exactly one field is set;
// Int, Nat, Boolean, Unit, and Invalid are represented by their own bool
// flag since they carry no payload.
type TypeNode struct {
	Name    *ident.NamePart
	Field   *FieldType
	Applied *AppliedType
	Func    *FunctionType
	Ref     *Type

	Int     bool
	Nat     bool
	Boolean bool
	Unit    bool
	Invalid bool
}

// FieldType is `Base.Name`, a type nested inside another (e.g. a variant
// case referenced through its variant).
type FieldType struct {
	Base *Type
	Name ident.NamePart
}

// AppliedType is `Base[Args...]`, a generic instantiation. Parsed but
// never resolved — generics instantiation is out of scope.
type AppliedType struct {
	Base *Type
	Args []Type
}

// FunctionType is `(Args...) Result`, e.g. `() Int` or `(Int, Bool) Int`.
type FunctionType struct {
	Args   []Type
	Result *Type
}
