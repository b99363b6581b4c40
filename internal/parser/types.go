package parser

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/lexer"
)

// parseType = prefix-type
func (p *parser) parseType() ast.Type {
	return p.prefixType()
}

// prefix-type  = "&" prefix-type
// prefix-type =/ "(" type-list ")" prefix-type
// prefix-type =/ long-type
func (p *parser) prefixType() ast.Type {
	if opener, ok := p.consume(lexer.Ampersand); ok {
		inner := p.prefixType()
		return ast.Type{
			At:   opener.Cover(inner.At),
			Node: ast.TypeNode{Ref: &inner},
		}
	}

	if opener, ok := p.consume(lexer.LParen); ok {
		args := p.typeList()
		closer, ok := p.consume(lexer.RParen)
		if !ok {
			p.at(opener).MissingParen()
			closer = p.closestSpan()
		}

		result := p.prefixType()
		return ast.Type{
			At:   opener.Cover(closer).Cover(result.At),
			Node: ast.TypeNode{Func: &ast.FunctionType{Args: args, Result: &result}},
		}
	}

	return p.longType()
}

// long-type    = applied-type / field-type / simple-type
// applied-type = long-type "(" type-list ")"
// field-type   = long-type "." NAME
func (p *parser) longType() ast.Type {
	ty := p.simpleType()

	for {
		if opener, ok := p.consume(lexer.LParen); ok {
			args := p.typeList()
			closer, ok := p.consume(lexer.RParen)
			if !ok {
				p.at(opener).MissingParen()
				closer = p.closestSpan()
			}

			prev := ty
			ty = ast.Type{
				At:   ty.At.Cover(closer),
				Node: ast.TypeNode{Applied: &ast.AppliedType{Base: &prev, Args: args}},
			}
			continue
		}

		if _, ok := p.consume(lexer.Dot); ok {
			tok, has := p.thisOne()
			var part ident.NamePart
			span := p.closestSpan()
			switch {
			case has && tok.Type == lexer.TypeName:
				p.advance()
				part = ident.NewTypePart(tok.Text)
				span = tok.Span
			case has && tok.Type == lexer.ValueName:
				p.advance()
				p.at(tok.Span).ExpectedTypeName(tok.Text)
				part = ident.InvalidPart
				span = tok.Span
			default:
				p.at(span).ExpectedTypeName("")
				part = ident.InvalidPart
			}

			prev := ty
			ty = ast.Type{
				At:   ty.At.Cover(span),
				Node: ast.TypeNode{Field: &ast.FieldType{Base: &prev, Name: part}},
			}
			continue
		}

		break
	}

	return ty
}

// simple-type = NAME / "(" type ")"
func (p *parser) simpleType() ast.Type {
	tok, ok := p.thisOne()
	if !ok {
		span := p.closestSpan()
		p.at(span).ExpectedType()
		return ast.Type{At: span, Node: ast.TypeNode{Invalid: true}}
	}

	switch tok.Type {
	case lexer.TypeName:
		p.advance()
		if node, ok := primitiveTypeNode(tok.Text); ok {
			return ast.Type{At: tok.Span, Node: node}
		}
		part := ident.NewTypePart(tok.Text)
		return ast.Type{At: tok.Span, Node: ast.TypeNode{Name: &part}}

	case lexer.LParen:
		opener := tok.Span
		p.advance()
		inner := p.parseType()
		if _, ok := p.consume(lexer.RParen); !ok {
			p.at(opener).MissingParen()
		}
		return inner

	case lexer.ValueName:
		// Does not consume: the caller's recovery boundary gets a chance
		// to match this token against whatever it expects next.
		p.at(tok.Span).ExpectedTypeName(tok.Text)
		return ast.Type{At: tok.Span, Node: ast.TypeNode{Invalid: true}}

	default:
		p.at(tok.Span).ExpectedType()
		return ast.Type{At: tok.Span, Node: ast.TypeNode{Invalid: true}}
	}
}

// primitiveTypeNode recognizes the four built-in type names, which the
// AST represents as their own TypeNode cases rather than as a Name —
// resolution and inheritance analysis both treat them as leaves that
// contribute no mentions, so the distinction has to exist from the
// moment the type is parsed.
func primitiveTypeNode(text string) (ast.TypeNode, bool) {
	switch text {
	case "Int":
		return ast.TypeNode{Int: true}, true
	case "Nat":
		return ast.TypeNode{Nat: true}, true
	case "Boolean":
		return ast.TypeNode{Boolean: true}, true
	case "Unit":
		return ast.TypeNode{Unit: true}, true
	default:
		return ast.TypeNode{}, false
	}
}

// type-list = [type *("," type) [","]]
func (p *parser) typeList() []ast.Type {
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
