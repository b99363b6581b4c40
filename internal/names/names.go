// Package names implements the discovery pass (NamesWithin): walking the
// AST once to record every name declared directly inside every other
// name, before any use of a name is resolved against that map.
package names

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

// nameComparator orders ident.Name values by their string form, giving
// treeset a total order over a type it knows nothing about. Every set in
// this package holds ident.Name elements compared this way.
func nameComparator(a, b interface{}) int {
	as, bs := a.(ident.Name).String(), b.(ident.Name).String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func newNameSet(items ...ident.Name) *treeset.Set {
	elems := make([]interface{}, len(items))
	for i, n := range items {
		elems[i] = n
	}
	return treeset.NewWith(nameComparator, elems...)
}

// Within is the discovery pass's result for one source file: the set of
// direct children of every declared name, the span each name was
// declared at, and which names were declared public (before `private`
// inside their enclosing class/variant).
type Within struct {
	// Names maps a declared name to the set of names declared directly
	// inside it (nested classes, variants, functions, variables — not
	// locals, which are a resolver concern).
	Names map[ident.Name]*treeset.Set
	Spans map[ident.Name]source.Span
	// Public holds every name declared before `private` in its
	// enclosing class/variant. Top-level names are never public or
	// private; they simply aren't present in this set.
	Public *treeset.Set
}

func newWithin() *Within {
	return &Within{
		Names:  make(map[ident.Name]*treeset.Set),
		Spans:  make(map[ident.Name]source.Span),
		Public: newNameSet(),
	}
}

// AllNamesWithin walks decls, declaring every name found and recording
// their nesting structure and declaration spans in the returned Within.
// A name that collides with one already declared in the same scope is
// reported into acc as ER00.
func AllNamesWithin(src *source.Source, decls ast.Declarations, acc *diag.Accumulator) *Within {
	d := &declarer{src: src, within: newWithin(), acc: acc}
	for _, item := range decls.Items {
		d.declare(item)
	}
	return d.within
}

type declarer struct {
	src    *source.Source
	scopes []ident.Name
	within *Within
	acc    *diag.Accumulator
}

func (d *declarer) prefix() ident.NamePrefix {
	if len(d.scopes) > 0 {
		return ident.ItemPrefix{Of: d.scopes[len(d.scopes)-1]}
	}
	return ident.SourcePrefix{Source: d.src}
}

func (d *declarer) inScope(name ident.Name, f func()) {
	d.scopes = append(d.scopes, name)
	f()
	d.scopes = d.scopes[:len(d.scopes)-1]
}

// declarationName computes the Name a declaration occupies in its
// enclosing scope. A Class.method-prefixed declaration name is reduced
// to its bare (unprefixed) identifier here — the prefix itself is never
// consulted by this pass, mirroring the source's own NamesWithin, which
// matches only on DeclarationNameNode and never reads DeclarationName's
// prefix field. See SPEC_FULL.md / spec.md §9: whether a prefixed method
// is meant to be found by ordinary name lookup at all is an open
// question left as-is rather than invented here.
func (d *declarer) declarationName(name ast.DeclarationName) ident.Name {
	var part ident.NamePart
	switch {
	case name.Node.Identifier != nil:
		part = *name.Node.Identifier
	case name.Node.Quoted != nil:
		// Quoted (operator-overload) declaration names are parsed but
		// never resolved; see internal/ident's TypeScope doc comment.
		part = ident.InvalidPart
	default:
		part = ident.InvalidPart
	}
	return ident.Name{Scope: d.prefix(), Part: part}
}

// declare registers item's declared name (and, for classes/variants,
// recurses into its public/private members) and returns the Name it was
// registered under.
func (d *declarer) declare(item ast.Declaration) ident.Name {
	declName := declarationNameOf(item)
	span := item.Span()
	name := d.declarationName(declName)

	if firstSpan, ok := d.within.Spans[name]; ok {
		d.at(span).DuplicateDefinitions(firstSpan)
	}

	d.within.Spans[name] = span
	d.within.Names[name] = newNameSet()

	public, private := childrenOf(item)
	if public != nil || private != nil {
		d.inScope(name, func() {
			for _, child := range public {
				childName := d.declare(child)
				d.within.Public.Add(childName)
				d.addChild(name, childName)
			}
			for _, child := range private {
				childName := d.declare(child)
				d.addChild(name, childName)
			}
		})
	}

	return name
}

func (d *declarer) addChild(parent, child ident.Name) {
	d.within.Names[parent].Add(child)
}

func (d *declarer) at(span source.Span) diag.MessageMaker {
	return diag.At(d.acc, span)
}

func declarationNameOf(item ast.Declaration) ast.DeclarationName {
	switch {
	case item.Node.Class != nil:
		return item.Node.Class.Name
	case item.Node.Variant != nil:
		return item.Node.Variant.Name
	case item.Node.Function != nil:
		return item.Node.Function.Name
	case item.Node.Variable != nil:
		return item.Node.Variable.Name
	default:
		return ast.DeclarationName{}
	}
}

func childrenOf(item ast.Declaration) (public, private []ast.Declaration) {
	switch {
	case item.Node.Class != nil:
		return item.Node.Class.Public, item.Node.Class.Private
	case item.Node.Variant != nil:
		return item.Node.Variant.Public, item.Node.Variant.Private
	default:
		return nil, nil
	}
}
