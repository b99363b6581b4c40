package inherit

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/resolve"
	"github.com/rry-lang/rryc/internal/source"
)

func mentionsFor(t *testing.T, text string) Mentions {
	t.Helper()
	src := source.New(text, "test.rry")
	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	within := names.AllNamesWithin(src, decls, acc)
	res := resolve.Resolve(src, decls, within, acc)
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", acc.Len(), acc.Messages())
	}
	return AllMentions(res.Tree)
}

func byShortName(m Mentions, short string) (ident.Name, bool) {
	for name := range m {
		if name.Part.Text == short {
			return name, true
		}
	}
	return ident.Name{}, false
}

func TestIndependentClassesHaveEmptyMentions(t *testing.T) {
	m := mentionsFor(t, "class A end\nclass B end")
	if len(m) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(m))
	}
	for name, set := range m {
		if set.Size() != 0 {
			t.Errorf("%s: expected no mentions, got %d", name, set.Size())
		}
	}
}

func TestClassMentionsItsSupertype(t *testing.T) {
	m := mentionsFor(t, "class A end\nclass B is A end")
	a, ok := byShortName(m, "A")
	if !ok {
		t.Fatal("expected a class named A")
	}
	b, ok := byShortName(m, "B")
	if !ok {
		t.Fatal("expected a class named B")
	}
	if !m[b].Contains(a) {
		t.Errorf("expected B to mention A")
	}
	if m[a].Size() != 0 {
		t.Errorf("expected A to mention nothing, got %d", m[a].Size())
	}
}

func TestVariantImplicitlyMentionedByNestedClass(t *testing.T) {
	m := mentionsFor(t, "variant V\n  class Case1 end\nend")
	v, ok := byShortName(m, "V")
	if !ok {
		t.Fatal("expected a variant named V")
	}
	c1, ok := byShortName(m, "Case1")
	if !ok {
		t.Fatal("expected a class named Case1")
	}
	if !m[c1].Contains(v) {
		t.Errorf("expected Case1 to implicitly mention V")
	}
}

func TestComponentsOrderDependenciesFirst(t *testing.T) {
	m := mentionsFor(t, "class A end\nclass B is A end\nclass C is B end")
	components := Components(m)
	if len(components) != 3 {
		t.Fatalf("expected 3 singleton components, got %d", len(components))
	}

	order := map[string]int{}
	for i, c := range components {
		c.Each(func(_ int, v interface{}) {
			order[v.(ident.Name).String()] = i
		})
	}
	if !(order["test.rry.A"] < order["test.rry.B"] && order["test.rry.B"] < order["test.rry.C"]) {
		t.Errorf("expected A before B before C, got %+v", order)
	}
}

func TestComponentsGroupsCycleTogether(t *testing.T) {
	m := mentionsFor(t, "class A is B end\nclass B is A end")
	components := Components(m)
	found := false
	for _, c := range components {
		if c.Size() == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected A and B's mutual mention to form one 2-element component, got %+v", components)
	}
}

func TestVariantCaseComponentAfterVariant(t *testing.T) {
	m := mentionsFor(t, "variant V\n  class Case1 end\nend")
	v, _ := byShortName(m, "V")
	c1, _ := byShortName(m, "Case1")

	order := map[ident.Name]int{}
	for i, c := range Components(m) {
		c.Each(func(_ int, raw interface{}) { order[raw.(ident.Name)] = i })
	}
	if order[v] >= order[c1] {
		t.Errorf("expected V's component before Case1's, got V=%d Case1=%d", order[v], order[c1])
	}
}
