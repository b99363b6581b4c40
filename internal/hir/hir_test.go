package hir

import (
	"testing"

	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/resolve"
	"github.com/rry-lang/rryc/internal/source"
	"github.com/rry-lang/rryc/internal/types"
)

func TestStubEmitsNotImplemented(t *testing.T) {
	src := source.New("class A end", "test.rry")
	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)
	within := names.AllNamesWithin(src, decls, acc)
	res := resolve.Resolve(src, decls, within, acc)
	info := types.Build(types.NewInterner(), res.Tree, acc)

	before := acc.Len()
	Stub{}.Annotate(src, res.Tree, info, acc)

	found := false
	for _, m := range acc.Messages()[before:] {
		if m.Code == diag.CodeNotImplemented {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an EH00 diagnostic, got %+v", acc.Messages()[before:])
	}
}
