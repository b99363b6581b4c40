package names

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/source"
)

func within(t *testing.T, text string) (*Within, *diag.Accumulator) {
	t.Helper()
	src := source.New(text, "test.rry")
	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	return AllNamesWithin(src, decls, acc), acc
}

func TestMinimalClassHasNoChildrenOrDiagnostics(t *testing.T) {
	w, acc := within(t, "class A end")
	if len(w.Spans) != 1 {
		t.Fatalf("expected exactly one declared name, got %d", len(w.Spans))
	}
	for name, children := range w.Names {
		if children.Size() != 0 {
			t.Errorf("%s: expected no children, got %d", name, children.Size())
		}
	}
	if acc.Len() != 0 {
		t.Errorf("expected no diagnostics, got %d", acc.Len())
	}
}

func TestDuplicateDefinitionEmitsER00(t *testing.T) {
	_, acc := within(t, "class A end\nclass A end")

	var found []diag.Message
	for _, m := range acc.Messages() {
		if m.Code == diag.CodeDuplicateDefinitions {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected exactly one ER00, got %d", len(found))
	}
}

func TestNestedClassMembersAreChildren(t *testing.T) {
	w, acc := within(t, "class A\n  var x Int\nprivate\n  var y Int\nend")
	if acc.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", acc.Len(), acc.Messages())
	}

	var classChildren int
	for name, children := range w.Names {
		if name.String() == "test.rry.A" {
			classChildren = children.Size()
		}
	}
	if classChildren != 2 {
		t.Errorf("expected A to have 2 children (x public, y private), got %d", classChildren)
	}
	if w.Public.Size() != 1 {
		t.Errorf("expected exactly 1 public member, got %d", w.Public.Size())
	}
}
