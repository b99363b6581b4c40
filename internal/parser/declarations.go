package parser

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/lexer"
	"github.com/rry-lang/rryc/internal/source"
)

func (p *parser) topLevel() []ast.Declaration {
	var decls []ast.Declaration
	for !p.isDone() {
		if d, ok := p.declaration(); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// parseDeclarations reads a public declaration* block followed by an
// optional `private` declaration* block, used inside class and variant
// bodies.
func (p *parser) parseDeclarations() (public, private []ast.Declaration) {
	for {
		if _, ok := p.matches(declarationStart...); !ok {
			break
		}
		if d, ok := p.declaration(); ok {
			public = append(public, d)
		}
	}

	if _, ok := p.consume(lexer.Private); ok {
		for {
			if _, ok := p.matches(declarationStart...); !ok {
				break
			}
			if d, ok := p.declaration(); ok {
				private = append(private, d)
			}
		}
	}

	return public, private
}

func (p *parser) declaration() (ast.Declaration, bool) {
	tok, ok := p.thisOne()
	if !ok {
		return ast.Declaration{}, false
	}

	switch tok.Type {
	case lexer.Class:
		opener := tok.Span
		p.advance()
		name := p.declarationName()

		var inherits []ast.Type
		if _, ok := p.consume(lexer.Is); ok {
			inherits = p.inherits()
		}

		public, private := p.parseDeclarations()

		end, ok := p.consume(lexer.End)
		if !ok {
			p.at(opener).MissingEnd()
			end = p.closestSpan()
		}

		return ast.Declaration{
			At: opener.Cover(end),
			Node: ast.DeclarationNode{Class: &ast.ClassDeclaration{
				Name: name, Public: public, Private: private, Inherits: inherits,
			}},
		}, true

	case lexer.Variant:
		opener := tok.Span
		p.advance()
		name := p.declarationName()

		var inherits []ast.Type
		if _, ok := p.consume(lexer.Is); ok {
			inherits = p.inherits()
		}

		public, private := p.parseDeclarations()

		end, ok := p.consume(lexer.End)
		if !ok {
			p.at(opener).MissingEnd()
			end = p.closestSpan()
		}

		return ast.Declaration{
			At: opener.Cover(end),
			Node: ast.DeclarationNode{Variant: &ast.VariantDeclaration{
				Name: name, Public: public, Private: private, Inherits: inherits,
			}},
		}, true

	case lexer.Function:
		opener := tok.Span
		p.advance()
		name := p.declarationName()

		var this *int
		var args []ast.Parameter
		if parenOpener, ok := p.consume(lexer.LParen); ok {
			this, args = p.parameters()
			if _, ok := p.consume(lexer.RParen); !ok {
				p.at(parenOpener).MissingParen()
			}
		}

		var returnType ast.Type
		if _, ok := p.matches(typeStart...); ok {
			returnType = p.parseType()
		} else {
			returnType = ast.Type{At: p.closestSpan(), Node: ast.TypeNode{Unit: true}}
		}

		var body *ast.Block
		if _, ok := p.matches(statementStart...); ok {
			b := p.parseBlock()
			body = &b
		}

		end := p.closestSpan()
		if body != nil {
			e, ok := p.consume(lexer.End)
			if !ok {
				p.at(opener).MissingEnd()
				e = p.closestSpan()
			}
			end = e
		}

		return ast.Declaration{
			At: opener.Cover(end),
			Node: ast.DeclarationNode{Function: &ast.FunctionDeclaration{
				Name: name, This: this, Args: args, ReturnType: returnType, Body: body,
			}},
		}, true

	case lexer.Var:
		opener := tok.Span
		p.advance()
		name := p.declarationName()
		anno := p.parseType()

		var body ast.Expression
		hasBody := false
		if _, ok := p.consume(lexer.ColonEqual); ok {
			body = p.parseExpression()
			hasBody = true
		}

		end := p.closestSpan()

		return ast.Declaration{
			At: opener.Cover(end),
			Node: ast.DeclarationNode{Variable: &ast.VariableDeclaration{
				Name: name, Anno: anno, Body: body, HasBody: hasBody,
			}},
		}, true

	default:
		p.advance()
		p.at(tok.Span).ExpectedDeclaration()
		return ast.Declaration{}, false
	}
}

// declarationName parses `simple-name ["." simple-name]`, the second
// form naming a method declared against an inherited class.
func (p *parser) declarationName() ast.DeclarationName {
	node, span := p.simpleName()

	if node.Identifier != nil {
		if _, ok := p.consume(lexer.Dot); ok {
			inner, endSpan := p.simpleName()
			return ast.DeclarationName{
				Node:   inner,
				Prefix: node.Identifier,
				At:     span.Cover(endSpan),
			}
		}
	}

	return ast.DeclarationName{Node: node, At: span}
}

func (p *parser) simpleName() (ast.DeclarationNameNode, source.Span) {
	tok, ok := p.thisOne()
	if !ok {
		span := p.closestSpan()
		p.at(span).ExpectedTypeName("")
		return ast.DeclarationNameNode{Invalid: true}, span
	}

	switch tok.Type {
	case lexer.TypeName:
		p.advance()
		part := ident.NewTypePart(tok.Text)
		return ast.DeclarationNameNode{Identifier: &part}, tok.Span

	case lexer.ValueName:
		p.advance()
		part := ident.NewValuePart(tok.Text)
		return ast.DeclarationNameNode{Identifier: &part}, tok.Span

	case lexer.String:
		p.advance()
		text := tok.Text
		return ast.DeclarationNameNode{Quoted: &text}, tok.Span

	default:
		p.at(tok.Span).ExpectedTypeName("")
		return ast.DeclarationNameNode{Invalid: true}, tok.Span
	}
}

func (p *parser) inherits() []ast.Type {
	var types []ast.Type
	for {
		if _, ok := p.matches(typeStart...); !ok {
			break
		}
		types = append(types, p.parseType())
		p.consume(lexer.Comma)
	}
	return types
}

// parameters implements:
//
//	parameters      = [this / [this ","] annotated-names *("," annotated-names) [","]]
//	annotated-names = (NAME *("," NAME)) type
//	this            = "this" / this "&"
//
// A type annotation applies to every contiguous run of preceding
// unannotated names; any trailing names with no following type are
// silently dropped.
func (p *parser) parameters() (this *int, args []ast.Parameter) {
	var names []ident.NamePart
	var types []ast.Type

	if _, ok := p.consume(lexer.This); ok {
		n := 0
		for {
			if _, ok := p.consume(lexer.Ampersand); !ok {
				break
			}
			n++
		}
		this = &n
		p.consume(lexer.Comma)
	}

	for {
		tok, ok := p.thisOne()
		if !ok || tok.Type != lexer.ValueName {
			break
		}
		p.advance()
		names = append(names, ident.NewValuePart(tok.Text))

		if _, ok := p.matches(typeStart...); ok {
			ty := p.parseType()
			for len(types) < len(names) {
				types = append(types, ty)
			}
		}

		p.consume(lexer.Comma)
	}

	n := len(names)
	if len(types) < n {
		n = len(types)
	}
	for i := 0; i < n; i++ {
		args = append(args, ast.Parameter{Name: names[i], Type: types[i]})
	}

	return this, args
}
