// Package resolve implements the second compiler pass: turning an AST
// plus its NamesWithin discovery result into a fully name-resolved RST.
// Every NamePart use is either rewritten to its resolved ident.Name or
// replaced with Invalid alongside an ER01 diagnostic.
//
// Grounded on spec.md §4.4 and original_source/src/resolution/{mod,resolve,resolve/traverse}.rs.
package resolve

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/rst"
	"github.com/rry-lang/rryc/internal/source"
)

// Result is resolve_names' contract output: the resolved tree plus the
// set of Names declared mutable (every `var` local; `let` locals are
// never added).
type Result struct {
	Tree    rst.Items
	Mutable map[ident.Name]bool
}

// Resolve runs the resolution pass over decls, given within (the prior
// NamesWithin discovery result for the same file). Diagnostics
// (unresolved names) are pushed into acc.
func Resolve(src *source.Source, decls ast.Declarations, within *names.Within, acc *diag.Accumulator) Result {
	r := &resolver{src: src, within: within, acc: acc, mutable: map[ident.Name]bool{}}
	return Result{Tree: r.resolveItems(decls.Items), Mutable: r.mutable}
}

// localEntry is one name bound in an open local_scope frame.
type localEntry struct {
	Part ident.NamePart
	Name ident.Name
}

type resolver struct {
	src    *source.Source
	within *names.Within
	acc    *diag.Accumulator

	scopes  []ident.Name
	locals  [][]localEntry
	mutable map[ident.Name]bool
}

func (r *resolver) at(span source.Span) diag.MessageMaker {
	return diag.At(r.acc, span)
}

// itemPrefix is the NamePrefix a name declared directly in the
// innermost currently-open item scope occupies — matching
// internal/names' declarer.prefix exactly, since this is the same
// identity NamesWithin registered children under.
func (r *resolver) itemPrefix() ident.NamePrefix {
	if len(r.scopes) > 0 {
		return ident.ItemPrefix{Of: r.scopes[len(r.scopes)-1]}
	}
	return ident.SourcePrefix{Source: r.src}
}

func (r *resolver) pushLocalFrame() { r.locals = append(r.locals, nil) }
func (r *resolver) popLocalFrame()  { r.locals = r.locals[:len(r.locals)-1] }

// declareLocal binds part as a fresh local in the innermost open
// frame, at a depth counting how many frames are currently open (§4.2:
// `Local(parent_scope, depth)`), and returns its resolved Name.
// declareLocal does not check for a shadowing redeclaration within the
// same frame: duplicate-local detection is a named open question
// (spec.md §9) with no diagnostic defined, so the later declaration
// simply wins on lookup, same as NamesWithin's duplicate-definition
// overwrite but without the ER00 it emits at item scope.
func (r *resolver) declareLocal(part ident.NamePart) ident.Name {
	depth := len(r.locals)
	name := ident.NewLocalName(r.itemPrefix(), depth, part)
	top := len(r.locals) - 1
	r.locals[top] = append(r.locals[top], localEntry{Part: part, Name: name})
	return name
}

// lookup implements spec.md §4.4's lookup algorithm: local frames
// innermost-out latest-wins, then item scopes innermost-out via
// NamesWithin, then file-global.
func (r *resolver) lookup(part ident.NamePart) (ident.Name, bool) {
	for i := len(r.locals) - 1; i >= 0; i-- {
		frame := r.locals[i]
		for j := len(frame) - 1; j >= 0; j-- {
			if frame[j].Part == part {
				return frame[j].Name, true
			}
		}
	}

	for i := len(r.scopes) - 1; i >= 0; i-- {
		candidate := ident.Name{Scope: ident.ItemPrefix{Of: r.scopes[i]}, Part: part}
		if children, ok := r.within.Names[r.scopes[i]]; ok && children.Contains(candidate) {
			return candidate, true
		}
	}

	candidate := ident.NewSourceName(r.src, part)
	if _, ok := r.within.Names[candidate]; ok {
		return candidate, true
	}

	return ident.Name{}, false
}

// resolveUse looks up part as used at span, emitting ER01 and
// reporting failure via its bool result. Callers must substitute
// Invalid for the RST node they were building, per spec.md §4.4 step
// 4, rather than wrapping the zero Name this returns on failure.
func (r *resolver) resolveUse(part ident.NamePart, span source.Span) (ident.Name, bool) {
	if n, ok := r.lookup(part); ok {
		return n, true
	}
	r.at(span).UnresolvedName()
	return ident.Name{}, false
}

func declarationPart(name ast.DeclarationName) ident.NamePart {
	if name.Node.Identifier != nil {
		return *name.Node.Identifier
	}
	// Quoted (operator-overload) and genuinely invalid names never
	// occupy a resolvable identity; see internal/ident's TypeScope doc.
	return ident.InvalidPart
}

// declarationIdentity is the Name a declaration occupies in its
// enclosing item scope — always computed from the bare part, ignoring
// DeclarationName.Prefix, exactly mirroring internal/names'
// declarationName so the two passes agree on what NamesWithin
// registered.
func (r *resolver) declarationIdentity(name ast.DeclarationName) ident.Name {
	return ident.Name{Scope: r.itemPrefix(), Part: declarationPart(name)}
}

// declarationName computes the RST DeclarationName for a declaration
// site: Name(identity) normally, or Field(resolvedPrefix, part) when
// the source wrote `Prefix.part` — the prefix is resolved with the
// same general lookup used for any other name use (spec.md §4.4). If
// the name was unparseable (quoted/invalid) or its prefix fails to
// resolve, the whole DeclarationName becomes Invalid; the declaration's
// body is still resolved for its own diagnostics either way.
func (r *resolver) declarationName(name ast.DeclarationName) rst.DeclarationName {
	if name.Node.Quoted != nil || name.Node.Invalid {
		return rst.DeclarationName{Invalid: true, At: name.At}
	}

	part := declarationPart(name)

	if name.Prefix != nil {
		scopeName, ok := r.lookup(*name.Prefix)
		if !ok {
			r.at(name.At).UnresolvedName()
			return rst.DeclarationName{Invalid: true, At: name.At}
		}
		return rst.DeclarationName{Field: &rst.FieldName{Of: scopeName, Part: part}, At: name.At}
	}

	n := ident.Name{Scope: r.itemPrefix(), Part: part}
	return rst.DeclarationName{Name: &n, At: name.At}
}

func (r *resolver) resolveItems(decls []ast.Declaration) rst.Items {
	var items rst.Items
	for _, d := range decls {
		switch {
		case d.Node.Class != nil:
			c := d.Node.Class
			items.Classes = append(items.Classes, r.classLike(d, c.Name, c.Public, c.Private, c.Inherits, rst.ClassKindClass))
		case d.Node.Variant != nil:
			v := d.Node.Variant
			items.Classes = append(items.Classes, r.classLike(d, v.Name, v.Public, v.Private, v.Inherits, rst.ClassKindVariant))
		case d.Node.Function != nil:
			items.Values = append(items.Values, r.functionDecl(d, d.Node.Function))
		case d.Node.Variable != nil:
			items.Values = append(items.Values, r.variableDecl(d, d.Node.Variable))
		}
	}
	return items
}

func (r *resolver) classLike(d ast.Declaration, astName ast.DeclarationName, public, private []ast.Declaration, inherits []ast.Type, kind rst.ClassKind) rst.Class {
	declName := r.declarationName(astName)
	identity := r.declarationIdentity(astName)

	inheritsTypes := make([]rst.Type, 0, len(inherits))
	for _, t := range inherits {
		inheritsTypes = append(inheritsTypes, r.resolveType(t))
	}

	r.scopes = append(r.scopes, identity)
	members := make([]ast.Declaration, 0, len(public)+len(private))
	members = append(members, public...)
	members = append(members, private...)
	items := r.resolveItems(members)
	r.scopes = r.scopes[:len(r.scopes)-1]

	return rst.Class{Name: declName, Kind: kind, Items: items, Inherits: inheritsTypes, At: d.At}
}

func (r *resolver) functionDecl(d ast.Declaration, fn *ast.FunctionDeclaration) rst.Value {
	declName := r.declarationName(fn.Name)

	r.pushLocalFrame()
	args := make([]rst.Parameter, 0, len(fn.Args))
	for _, p := range fn.Args {
		pt := r.resolveType(p.Type)
		pn := r.declareLocal(p.Name)
		args = append(args, rst.Parameter{Name: pn, Type: pt})
	}
	returnType := r.resolveType(fn.ReturnType)

	var body *rst.Block
	if fn.Body != nil {
		b := r.block(*fn.Body)
		body = &b
	}
	r.popLocalFrame()

	return rst.Value{
		Name: declName,
		Node: rst.ValueNode{Function: &rst.FunctionValue{
			This:       fn.This,
			Args:       args,
			ReturnType: returnType,
			Body:       body,
		}},
		At: d.At,
	}
}

func (r *resolver) variableDecl(d ast.Declaration, v *ast.VariableDeclaration) rst.Value {
	declName := r.declarationName(v.Name)
	anno := r.resolveType(v.Anno)

	var body rst.Expression
	if v.HasBody {
		body = r.resolveExpr(v.Body)
	}

	return rst.Value{
		Name: declName,
		Node: rst.ValueNode{Variable: &rst.VariableValue{Anno: anno, Body: body, HasBody: v.HasBody}},
		At:   d.At,
	}
}
