package rst

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// Type is a resolved type expression, ready for internal/types to turn
// into an interned lattice element.
type Type struct {
	Node TypeNode
	At   source.Span
}

// TypeNode mirrors ast.TypeNode, with Name/Field's name parts resolved
// (Field keeps its unresolved NamePart, same reasoning as
// DeclarationName.Field: a field's own identifier is never looked up by
// name, only the base it's projected from).
type TypeNode struct {
	Name    *ident.Name
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

type FieldType struct {
	Base *Type
	Name ident.NamePart
}

type AppliedType struct {
	Base *Type
	Args []Type
}

type FunctionType struct {
	Args   []Type
	Result *Type
}
