// Package hir names the real type-checker — "annotate" in the
// original's own vocabulary, producing a scope-aware HIR annotated
// against the subtyping lattice — as an out-of-scope collaborator this
// front end gives only an interface contract to.
//
// Grounded on spec.md §6's instruction to name annotate/HIR "as a
// collaborator and give it only an interface contract."
package hir

import (
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/rst"
	"github.com/rry-lang/rryc/internal/source"
	"github.com/rry-lang/rryc/internal/types"
)

// Annotator consumes a resolved tree and its subtyping lattice and
// produces a fully type-checked result. rryc ships no real
// implementation of the annotation pass itself — see Stub.
type Annotator interface {
	Annotate(src *source.Source, items rst.Items, info *types.Info, acc *diag.Accumulator)
}

// Stub is the placeholder Annotator wired into internal/compiler by
// default. It performs no type checking and reports that fact as a
// single EH00 diagnostic, so a pipeline consumer still gets a
// well-formed result shape instead of silently skipping the stage.
type Stub struct{}

func (Stub) Annotate(src *source.Source, items rst.Items, info *types.Info, acc *diag.Accumulator) {
	whole := source.NewSpan(src, 0, len(src.Text()))
	diag.At(acc, whole).NotImplemented("annotate/HIR type checking")
}

var _ Annotator = Stub{}
