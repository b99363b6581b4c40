package types

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/resolve"
	"github.com/rry-lang/rryc/internal/source"
)

func buildFor(t *testing.T, text string) (*Info, *diag.Accumulator) {
	t.Helper()
	src := source.New(text, "test.rry")
	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	within := names.AllNamesWithin(src, decls, acc)
	res := resolve.Resolve(src, decls, within, acc)
	return Build(NewInterner(), res.Tree, acc), acc
}

func typeNamed(info *Info, short string) *Type {
	for _, t := range info.Interner.table {
		if t.Node.Name != nil && t.Node.Name.Part.Text == short {
			return t
		}
	}
	return nil
}

func TestSubtypeReflexivity(t *testing.T) {
	info, acc := buildFor(t, "class A end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	a := typeNamed(info, "A")
	if a == nil {
		t.Fatal("expected a Type named A")
	}
	if !info.Subtypes.IsSubtype(a, a) {
		t.Error("expected A to be its own subtype")
	}
}

func TestSubtypeDirectSubtype(t *testing.T) {
	info, acc := buildFor(t, "class A end\nclass B is A end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	a, b := typeNamed(info, "A"), typeNamed(info, "B")
	if !info.Subtypes.IsSubtype(b, a) {
		t.Error("expected B to be a subtype of A")
	}
	if info.Subtypes.IsSubtype(a, b) {
		t.Error("did not expect A to be a subtype of B")
	}
}

func TestSubtypeTransitivity(t *testing.T) {
	info, acc := buildFor(t, "class A end\nclass B is A end\nclass C is B end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	a, c := typeNamed(info, "A"), typeNamed(info, "C")
	if !info.Subtypes.IsSubtype(c, a) {
		t.Error("expected C to be a transitive subtype of A")
	}
}

func TestSubtypeLattice(t *testing.T) {
	info, acc := buildFor(t,
		"class A end\nclass B is A end\nclass C is A end\nclass D is B, C end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	a, b, c, d := typeNamed(info, "A"), typeNamed(info, "B"), typeNamed(info, "C"), typeNamed(info, "D")
	for _, pair := range [][2]*Type{{d, b}, {d, c}, {d, a}, {b, a}, {c, a}} {
		if !info.Subtypes.IsSubtype(pair[0], pair[1]) {
			t.Errorf("expected %s to be a subtype of %s", pair[0], pair[1])
		}
	}
	seen := map[*Type]int{}
	for _, s := range info.Subtypes.Supertypes(d) {
		seen[s]++
	}
	if seen[a] < 1 {
		t.Errorf("expected A to be reachable as a supertype of D through both paths, got %+v", seen)
	}
}

func TestSubtypeCycleRejected(t *testing.T) {
	info, acc := buildFor(t, "class A is B end\nclass B is A end")
	found := false
	for _, m := range acc.Messages() {
		if m.Code == diag.CodeSubtypeCycle {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ET00 diagnostic, got %+v", acc.Messages())
	}
	a, b := typeNamed(info, "A"), typeNamed(info, "B")
	if info.Subtypes.IsSubtype(a, b) && info.Subtypes.IsSubtype(b, a) {
		t.Error("lattice must stay acyclic: A and B cannot both be subtypes of each other")
	}
}

func TestFieldProjectionResolvesNestedClass(t *testing.T) {
	info, acc := buildFor(t,
		"variant V\n  class Case1 end\nend\nclass Other is V.Case1 end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	other, case1 := typeNamed(info, "Other"), typeNamed(info, "Case1")
	if other == nil || case1 == nil {
		t.Fatalf("expected Types for Other and Case1, got %+v %+v", other, case1)
	}
	if !info.Subtypes.IsSubtype(other, case1) {
		t.Error("expected Other to be a subtype of V.Case1")
	}
}

func TestFieldProjectionMissingMemberEmitsER01(t *testing.T) {
	_, acc := buildFor(t,
		"variant V\n  class Case1 end\nend\nclass Other is V.Missing end")
	found := false
	for _, m := range acc.Messages() {
		if m.Code == diag.CodeUnresolvedName {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ER01 diagnostic for V.Missing, got %+v", acc.Messages())
	}
}

func TestOpenSetOnlyMarksClassKind(t *testing.T) {
	info, acc := buildFor(t, "class A end\nvariant V end")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %+v", acc.Messages())
	}
	a, v := typeNamed(info, "A"), typeNamed(info, "V")
	if !info.Open[a] {
		t.Error("expected class A to be open for subclassing")
	}
	if info.Open[v] {
		t.Error("did not expect variant V to be marked open")
	}
}

func TestFunctionAndReferenceTypesIntern(t *testing.T) {
	in := NewInterner()
	f1 := in.Function([]*Type{in.Int()}, in.Boolean())
	f2 := in.Function([]*Type{in.Int()}, in.Boolean())
	if f1 != f2 {
		t.Error("expected structurally equal function types to intern to the same pointer")
	}
	r1, r2 := in.Reference(in.Int()), in.Reference(in.Int())
	if r1 != r2 {
		t.Error("expected structurally equal reference types to intern to the same pointer")
	}
	if f1.String() != "(Int) Boolean" {
		t.Errorf("got %q", f1.String())
	}
	if r1.String() != "Int&" {
		t.Errorf("got %q", r1.String())
	}
}
