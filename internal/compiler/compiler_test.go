package compiler

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/source"
)

func TestCompileRunsFullPipeline(t *testing.T) {
	c := New()
	src := source.New("class A end\nclass B is A end", "test.rry")
	res := c.Compile(src)

	if len(res.Tree.Classes) != 2 {
		t.Fatalf("expected 2 resolved classes, got %d", len(res.Tree.Classes))
	}

	foundNotImplemented := false
	for _, m := range res.Diagnostics.Messages() {
		if m.Code == diag.CodeNotImplemented {
			foundNotImplemented = true
		}
		if m.Code == diag.CodeUnresolvedName || m.Code == diag.CodeSubtypeCycle {
			t.Errorf("unexpected diagnostic from a well-formed program: %+v", m)
		}
	}
	if !foundNotImplemented {
		t.Error("expected the default annotate/HIR stub to emit EH00")
	}
}

func TestCompileIsMemoizedAcrossCalls(t *testing.T) {
	c := New()
	src := source.New("class A end", "test.rry")
	first := c.Compile(src)
	firstCount := len(first.Diagnostics.Messages())

	second := c.Compile(src)
	if len(second.Diagnostics.Messages()) != firstCount {
		t.Errorf("expected a memoized recompile not to append duplicate diagnostics, got %d then %d",
			firstCount, len(second.Diagnostics.Messages()))
	}
}

func TestCompileAllRunsEverySource(t *testing.T) {
	c := New()
	srcs := []*source.Source{
		source.New("class A end", "a.rry"),
		source.New("class B end", "b.rry"),
	}
	results := c.CompileAll(srcs)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Source != srcs[i] {
			t.Errorf("result %d: expected source %v, got %v", i, srcs[i], r.Source)
		}
	}
}

func TestCompileRejectsSubtypeCycle(t *testing.T) {
	c := New()
	src := source.New("class A is B end\nclass B is A end", "test.rry")
	res := c.Compile(src)

	found := false
	for _, m := range res.Diagnostics.Messages() {
		if m.Code == diag.CodeSubtypeCycle {
			found = true
		}
	}
	if !found {
		t.Error("expected an ET00 diagnostic for the cyclic inheritance")
	}
}
