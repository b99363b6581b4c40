package ast

import (
	"testing"

	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/source"
)

func TestDeclarationSpan(t *testing.T) {
	src := source.New("class A end", "test.rry")
	span := source.NewSpan(src, 0, 11)
	name := ident.NewTypePart("A")

	decl := Declaration{
		At: span,
		Node: DeclarationNode{
			Class: &ClassDeclaration{
				Name: DeclarationName{
					At:   source.NewSpan(src, 6, 7),
					Node: DeclarationNameNode{Identifier: &name},
				},
			},
		},
	}

	if decl.Span() != span {
		t.Errorf("Span() = %v, want %v", decl.Span(), span)
	}
	if decl.Node.Class == nil {
		t.Fatal("expected Class to be set")
	}
	if decl.Node.Variant != nil || decl.Node.Function != nil || decl.Node.Variable != nil {
		t.Error("expected only Class to be set")
	}
}

func TestInvalidNodesCarryNoPayload(t *testing.T) {
	src := source.New("???", "test.rry")
	span := source.NewSpan(src, 0, 3)

	expr := Expression{At: span, Node: ExpressionNode{Invalid: true}}
	if !expr.Node.Invalid {
		t.Error("expected Invalid expression node")
	}
	if expr.Node.Name != nil || expr.Node.Call != nil {
		t.Error("invalid expression should carry no other payload")
	}

	ty := Type{At: span, Node: TypeNode{Invalid: true}}
	if !ty.Node.Invalid {
		t.Error("expected Invalid type node")
	}

	dn := DeclarationName{At: span, Node: DeclarationNameNode{Invalid: true}}
	if !dn.Node.Invalid {
		t.Error("expected Invalid declaration name node")
	}
}

func TestParameterTypeSharing(t *testing.T) {
	// `a, b, c Int` shares the Int annotation across a, b, and c.
	src := source.New("a, b, c Int", "test.rry")
	intTy := Type{At: source.NewSpan(src, 8, 11), Node: TypeNode{Int: true}}

	params := []Parameter{
		{Name: ident.NewValuePart("a"), Type: intTy},
		{Name: ident.NewValuePart("b"), Type: intTy},
		{Name: ident.NewValuePart("c"), Type: intTy},
	}

	for _, p := range params {
		if !p.Type.Node.Int {
			t.Errorf("parameter %s did not receive the shared Int annotation", p.Name)
		}
	}
}
