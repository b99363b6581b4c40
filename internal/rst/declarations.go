package rst

import (
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// ClassKind distinguishes a `class` declaration from a `variant` one;
// both resolve to the same node shape, since resolution treats them
// identically — only internal/inherit's implicit mention edge and
// internal/types' lattice construction tell them apart.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindVariant
)

// Class is a resolved class or variant declaration.
type Class struct {
	Name     DeclarationName
	Kind     ClassKind
	Items    Items
	Inherits []Type
	At       source.Span
}

// Value is a resolved free function or variable declaration.
type Value struct {
	Name DeclarationName
	Node ValueNode
	At   source.Span
}

// ValueNode is a Function or a Variable; never both.
type ValueNode struct {
	Function *FunctionValue
	Variable *VariableValue
}

// FunctionValue is a resolved function. This, when non-nil, counts the
// `&` suffixes on the `this` receiver marker (0 means `this` with no
// `&`); nil means the declaration was a free function.
type FunctionValue struct {
	This       *int
	Args       []Parameter
	ReturnType Type
	Body       *Block
}

// Parameter pairs a resolved parameter Name with its resolved Type.
type Parameter struct {
	Name ident.Name
	Type Type
}

// VariableValue is a resolved top-level or member variable.
type VariableValue struct {
	Anno    Type
	Body    Expression
	HasBody bool
}

// DeclarationName is the resolved form of ast.DeclarationName: either a
// plain Name, a Field access rooted at a resolved Name (for
// `Class.method`-prefixed declarations — see internal/names'
// declarationName doc comment for why the prefix is resolved by
// ordinary lookup here rather than during discovery), or Invalid when
// the declaration's own name couldn't be read at all (quoted names, or
// a parse failure) or its prefix did not resolve.
type DeclarationName struct {
	Name    *ident.Name
	Field   *FieldName
	Invalid bool
	At      source.Span
}

// FieldName is a DeclarationName rooted at another resolved Name, e.g.
// `Super.method`: Of is `Super` resolved by ordinary lookup, Part is
// the unresolved field identifier `method`.
type FieldName struct {
	Of   ident.Name
	Part ident.NamePart
}
