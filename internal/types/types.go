// Package types implements the subtyping engine: an interned Type
// lattice built one inheritance-graph component at a time, with cycle
// rejection baked into the edge-insertion primitive itself.
//
// Grounded on spec.md §4.6 and original_source/src/types/{mod,info,subtyping}.rs.
package types

import (
	"strings"

	"github.com/rry-lang/rryc/internal/ident"
)

// Type is an interned type value. Two Types built from structurally
// equal TypeNodes are always the same *Type pointer, so Type is
// comparable and usable as a map key directly — unlike ident.Name,
// Function carries a slice of argument Types, which breaks native Go
// struct comparability, so this package keeps its own intern table
// rather than relying on structural equality the way internal/ident
// does.
type Type struct {
	Node TypeNode
	key  string
}

// typeHandle satisfies ident.TypeHandle, so a *Type can occupy a
// TypeScope. Nothing in this front end constructs a TypeScope (see
// ident.TypeScope's doc comment), but the method keeps the sum honest.
func (t *Type) typeHandle() {}

// TypeNode is the closed sum of type shapes. Exactly one field is set.
type TypeNode struct {
	Bottom   bool
	Unit     bool
	Int      bool
	Nat      bool
	Boolean  bool
	Name     *ident.Name
	Function *FunctionTypeNode
	Reference *Type
}

// FunctionTypeNode is a function type's argument list and result.
type FunctionTypeNode struct {
	Args   []*Type
	Result *Type
}

// Interner deduplicates Types by structural content so pointer equality
// doubles as value equality. One Interner is shared across a whole
// compilation.
type Interner struct {
	table map[string]*Type
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: map[string]*Type{}}
}

func (in *Interner) intern(key string, node TypeNode) *Type {
	if t, ok := in.table[key]; ok {
		return t
	}
	t := &Type{Node: node, key: key}
	in.table[key] = t
	return t
}

func (in *Interner) Bottom() *Type   { return in.intern("!", TypeNode{Bottom: true}) }
func (in *Interner) Unit() *Type    { return in.intern("()", TypeNode{Unit: true}) }
func (in *Interner) Int() *Type     { return in.intern("Int", TypeNode{Int: true}) }
func (in *Interner) Nat() *Type     { return in.intern("Nat", TypeNode{Nat: true}) }
func (in *Interner) Boolean() *Type { return in.intern("Boolean", TypeNode{Boolean: true}) }

// Name interns the type naming the class/variant/type-parameter n.
func (in *Interner) Name(n ident.Name) *Type {
	return in.intern("N:"+n.String(), TypeNode{Name: &n})
}

// Function interns a function type over args returning result.
func (in *Interner) Function(args []*Type, result *Type) *Type {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.key
	}
	key := "F:(" + strings.Join(parts, ",") + ")->" + result.key
	return in.intern(key, TypeNode{Function: &FunctionTypeNode{Args: args, Result: result}})
}

// Reference interns a reference-to-of type.
func (in *Interner) Reference(of *Type) *Type {
	return in.intern("R:"+of.key, TypeNode{Reference: of})
}

// String renders t the way the source's pretty_type does: primitives by
// keyword, a Name type by its short NamePart text (not its full scope
// path — pretty_type never walks Name.scope), a function as its
// parenthesized argument list followed by its result type, and a
// reference with a trailing "&".
func (t *Type) String() string {
	switch {
	case t.Node.Bottom:
		return "!"
	case t.Node.Unit:
		return "Unit"
	case t.Node.Int:
		return "Int"
	case t.Node.Nat:
		return "Nat"
	case t.Node.Boolean:
		return "Boolean"
	case t.Node.Name != nil:
		return t.Node.Name.Part.String()
	case t.Node.Function != nil:
		parts := make([]string, len(t.Node.Function.Args))
		for i, a := range t.Node.Function.Args {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, ", ") + ") " + t.Node.Function.Result.String()
	case t.Node.Reference != nil:
		return t.Node.Reference.String() + "&"
	default:
		return "<invalid>"
	}
}
