package parser

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/source"
)

func parse(t *testing.T, text string) (ast0 []string, acc *diag.Accumulator) {
	t.Helper()
	src := source.New(text, "test.rry")
	acc = diag.NewAccumulator()
	decls := Parse(src, acc)
	for _, d := range decls.Items {
		switch {
		case d.Node.Class != nil:
			ast0 = append(ast0, "class")
		case d.Node.Variant != nil:
			ast0 = append(ast0, "variant")
		case d.Node.Function != nil:
			ast0 = append(ast0, "function")
		case d.Node.Variable != nil:
			ast0 = append(ast0, "variable")
		}
	}
	return ast0, acc
}

func TestMinimalClass(t *testing.T) {
	kinds, acc := parse(t, "class A end")
	if len(kinds) != 1 || kinds[0] != "class" {
		t.Fatalf("got %v", kinds)
	}
	if acc.Len() != 0 {
		t.Errorf("expected no diagnostics, got %d", acc.Len())
	}
}

func TestParserConsumesEntireInput(t *testing.T) {
	src := source.New("class A end class B end function f() end", "test.rry")
	acc := diag.NewAccumulator()
	decls := Parse(src, acc)
	if len(decls.Items) != 3 {
		t.Fatalf("expected 3 top-level declarations, got %d", len(decls.Items))
	}
}

func TestMissingEndEmitsEP20(t *testing.T) {
	_, acc := parse(t, "class A")
	found := false
	for _, m := range acc.Messages() {
		if m.Code == diag.CodeMissingEnd {
			found = true
		}
	}
	if !found {
		t.Error("expected a missing-end diagnostic")
	}
}

func TestMissingParenEmitsEP21(t *testing.T) {
	_, acc := parse(t, "function f(a Int return end")
	found := false
	for _, m := range acc.Messages() {
		if m.Code == diag.CodeMissingParen {
			found = true
		}
	}
	if !found {
		t.Error("expected a missing-paren diagnostic")
	}
}

func TestUnrecognizedTopLevelTokenRecovers(t *testing.T) {
	src := source.New("???\nclass A end", "test.rry")
	acc := diag.NewAccumulator()
	decls := Parse(src, acc)
	if len(decls.Items) != 1 || decls.Items[0].Node.Class == nil {
		t.Fatalf("expected recovery to still parse the class, got %+v", decls.Items)
	}
	if acc.Len() == 0 {
		t.Error("expected a diagnostic for the unrecognized token")
	}
}

func TestParameterTypeSharing(t *testing.T) {
	src := source.New("function f(a, b, c Int, d Boolean) return end", "test.rry")
	acc := diag.NewAccumulator()
	decls := Parse(src, acc)
	if len(decls.Items) != 1 || decls.Items[0].Node.Function == nil {
		t.Fatalf("expected one function declaration, got %+v", decls.Items)
	}

	fn := decls.Items[0].Node.Function
	if len(fn.Args) != 4 {
		t.Fatalf("expected 4 parameters, got %d", len(fn.Args))
	}

	wantNames := []string{"a", "b", "c", "d"}
	wantInt := []bool{true, true, true, false}
	for i := range fn.Args {
		if fn.Args[i].Name.Text != wantNames[i] {
			t.Errorf("param %d: got name %q, want %q", i, fn.Args[i].Name.Text, wantNames[i])
		}
		if fn.Args[i].Type.Node.Int != wantInt[i] {
			t.Errorf("param %d: got Int=%v, want %v", i, fn.Args[i].Type.Node.Int, wantInt[i])
		}
	}
	if !fn.Args[3].Type.Node.Boolean {
		t.Errorf("param 3: expected Boolean annotation, got %+v", fn.Args[3].Type.Node)
	}
	if acc.Len() != 0 {
		t.Errorf("expected no diagnostics, got %d: %+v", acc.Len(), acc.Messages())
	}
}

func TestPrefixReferenceExpression(t *testing.T) {
	src := source.New("function f() return &x end", "test.rry")
	acc := diag.NewAccumulator()
	decls := Parse(src, acc)
	fn := decls.Items[0].Node.Function
	ret := fn.Body.Statements[0].Node.Return
	if ret.Node.Reference == nil {
		t.Fatalf("expected a Reference expression, got %+v", ret.Node)
	}
	if ret.Node.Reference.Node.Name == nil || ret.Node.Reference.Node.Name.Text != "x" {
		t.Errorf("expected reference to wrap name 'x', got %+v", ret.Node.Reference.Node)
	}
}

func TestDeclarationNameWithPrefix(t *testing.T) {
	src := source.New("function Super.method() end", "test.rry")
	acc := diag.NewAccumulator()
	decls := Parse(src, acc)
	fn := decls.Items[0].Node.Function
	if fn.Name.Prefix == nil || fn.Name.Prefix.Text != "Super" {
		t.Fatalf("expected prefix 'Super', got %+v", fn.Name.Prefix)
	}
	if fn.Name.Node.Identifier == nil || fn.Name.Node.Identifier.Text != "method" {
		t.Errorf("expected name 'method', got %+v", fn.Name.Node)
	}
}
