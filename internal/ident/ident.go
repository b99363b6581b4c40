// Package ident implements the compiler's name identity: NameParts (short
// identifier fragments), and Names (fully qualified symbols built from a
// scope prefix plus a NamePart).
//
// Unlike the Type lattice in internal/types, names here need no dedicated
// intern table: NamePart and Name are built as plain comparable Go values
// (structs and a comparable interface for the recursive NamePrefix), so
// Go's own structural equality gives us the interning invariant for free
// — two constructions with equal content compare `==` and hash identically
// as map keys. That is what the resolver relies on to recognize duplicate
// declarations and shadowed locals.
package ident

import (
	"fmt"

	"github.com/rry-lang/rryc/internal/source"
)

// PartKind classifies a NamePart fragment.
type PartKind int

const (
	// Type is an UpperCamel identifier fragment (a class, variant, or type name).
	Type PartKind = iota
	// Value is a lowerCamel identifier fragment (a variable or function name).
	Value
	// Invalid is the recovery placeholder used when the parser could not read a name.
	Invalid
)

func (k PartKind) String() string {
	switch k {
	case Type:
		return "Type"
	case Value:
		return "Value"
	default:
		return "Invalid"
	}
}

// NamePart is an interned identifier fragment. Equal strings of the same
// kind compare equal; distinct NameParts are never mistaken for each
// other.
type NamePart struct {
	Kind PartKind
	Text string
}

// NewTypePart builds a Type-kind NamePart for the given identifier text.
func NewTypePart(text string) NamePart { return NamePart{Kind: Type, Text: text} }

// NewValuePart builds a Value-kind NamePart for the given identifier text.
func NewValuePart(text string) NamePart { return NamePart{Kind: Value, Text: text} }

// InvalidPart is the single recovery placeholder NamePart.
var InvalidPart = NamePart{Kind: Invalid}

func (p NamePart) IsInvalid() bool { return p.Kind == Invalid }

func (p NamePart) String() string {
	if p.Kind == Invalid {
		return "<invalid>"
	}
	return p.Text
}

// NamePrefix is the scope half of a fully qualified Name. It is a closed
// sum of four cases, each a comparable value type:
//
//   - SourcePrefix: a file-global name.
//   - ItemPrefix: nested directly inside another item.
//   - LocalPrefix: a variable in a block at some nesting depth inside its
//     enclosing item — depth disambiguates shadowed locals declared at
//     different block nesting levels within the same item.
//   - TypeScope: a name attached to a type, for method prefixes on
//     quoted/overridden functions. Quoted declaration names are parsed
//     (see internal/ast) but never resolved — operator-overload dispatch
//     is out of scope — so nothing in this implementation ever
//     constructs a TypeScope value; it exists so the sum is complete.
type NamePrefix interface {
	isNamePrefix()
	String() string
}

// SourcePrefix scopes a Name directly to a file.
type SourcePrefix struct {
	Source *source.Source
}

func (SourcePrefix) isNamePrefix() {}
func (p SourcePrefix) String() string {
	return fmt.Sprintf("%s", p.Source.Name())
}

// ItemPrefix scopes a Name to live directly inside another named item.
type ItemPrefix struct {
	Of Name
}

func (ItemPrefix) isNamePrefix() {}
func (p ItemPrefix) String() string { return p.Of.String() }

// LocalPrefix scopes a Name to a local variable declared at a given block
// nesting depth inside its enclosing item.
type LocalPrefix struct {
	Of    NamePrefix
	Depth int
}

func (LocalPrefix) isNamePrefix() {}
func (p LocalPrefix) String() string {
	return fmt.Sprintf("%s#%d", p.Of, p.Depth)
}

// TypeScope scopes a Name to a type. TypeHandle is an opaque identifier
// supplied by internal/types (kept opaque here to avoid an import cycle,
// since internal/types itself names Names).
type TypeScope struct {
	Of TypeHandle
}

func (TypeScope) isNamePrefix() {}
func (p TypeScope) String() string { return fmt.Sprintf("%v", p.Of) }

// TypeHandle is a stable, comparable identifier for an interned Type,
// opaque to this package. internal/types.Type implements it.
type TypeHandle interface {
	typeHandle()
}

// Name is a fully qualified, interned symbol: a scope plus a short
// NamePart. Two Names built from equal (scope, part) pairs are the same
// Go value and compare equal.
type Name struct {
	Scope NamePrefix
	Part  NamePart
}

// NewSourceName builds a file-global Name.
func NewSourceName(src *source.Source, part NamePart) Name {
	return Name{Scope: SourcePrefix{Source: src}, Part: part}
}

// NewItemName builds a Name nested directly inside another item.
func NewItemName(of Name, part NamePart) Name {
	return Name{Scope: ItemPrefix{Of: of}, Part: part}
}

// NewLocalName builds a Name for a local variable at the given scope and
// block-nesting depth.
func NewLocalName(of NamePrefix, depth int, part NamePart) Name {
	return Name{Scope: LocalPrefix{Of: of, Depth: depth}, Part: part}
}

func (n Name) IsInvalid() bool { return n.Part.IsInvalid() }

func (n Name) String() string {
	if n.Scope == nil {
		return n.Part.String()
	}
	return fmt.Sprintf("%s.%s", n.Scope, n.Part)
}
