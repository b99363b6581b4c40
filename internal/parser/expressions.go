package parser

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/lexer"
)

// parseExpression = prefix-expr
func (p *parser) parseExpression() ast.Expression {
	return p.prefixExpr()
}

// prefix-expr = "&" prefix-expr / long-expr
//
// Prefix, not postfix: the source carries two conflicting revisions of
// this rule, and this implementation follows the later one, matching the
// prefix form already used for reference types.
func (p *parser) prefixExpr() ast.Expression {
	if opener, ok := p.consume(lexer.Ampersand); ok {
		inner := p.prefixExpr()
		return ast.Expression{
			At:   opener.Cover(inner.At),
			Node: ast.ExpressionNode{Reference: &inner},
		}
	}
	return p.longExpr()
}

// long-expr  = call-expr / field-expr / simple-expr
// call-expr  = long-expr "(" expr-list ")"
// field-expr = long-expr "." (VALUE_NAME / TYPE_NAME)
func (p *parser) longExpr() ast.Expression {
	expr := p.simpleExpr()

	for {
		if opener, ok := p.consume(lexer.LParen); ok {
			args := p.exprList()
			closer, ok := p.consume(lexer.RParen)
			if !ok {
				p.at(opener).MissingParen()
				if len(args) > 0 {
					closer = args[len(args)-1].At
				} else {
					closer = opener
				}
			}

			prev := expr
			expr = ast.Expression{
				At:   expr.At.Cover(closer),
				Node: ast.ExpressionNode{Call: &ast.CallExpression{Callee: &prev, Args: args}},
			}
			continue
		}

		if _, ok := p.consume(lexer.Dot); ok {
			tok, has := p.thisOne()
			name := ""
			span := p.closestSpan()
			if has && (tok.Type == lexer.ValueName || tok.Type == lexer.TypeName) {
				p.advance()
				name = tok.Text
				span = tok.Span
			} else {
				p.at(span).ExpectedExpression()
			}

			prev := expr
			expr = ast.Expression{
				At:   expr.At.Cover(span),
				Node: ast.ExpressionNode{Field: &ast.FieldExpression{Base: &prev, Name: name}},
			}
			continue
		}

		break
	}

	return expr
}

// simple-expr  = VALUE_NAME / TYPE_NAME / NUMBER / STRING
// simple-expr =/ "(" expr ")"
func (p *parser) simpleExpr() ast.Expression {
	tok, ok := p.thisOne()
	if !ok {
		span := p.closestSpan()
		p.at(span).ExpectedExpression()
		return ast.Expression{At: span, Node: ast.ExpressionNode{Invalid: true}}
	}

	switch tok.Type {
	case lexer.ValueName:
		p.advance()
		part := ident.NewValuePart(tok.Text)
		return ast.Expression{At: tok.Span, Node: ast.ExpressionNode{Name: &part}}

	case lexer.TypeName:
		p.advance()
		part := ident.NewTypePart(tok.Text)
		return ast.Expression{At: tok.Span, Node: ast.ExpressionNode{Name: &part}}

	case lexer.Number:
		p.advance()
		text := tok.Text
		return ast.Expression{At: tok.Span, Node: ast.ExpressionNode{Number: &text}}

	case lexer.String:
		p.advance()
		text := tok.Text
		return ast.Expression{At: tok.Span, Node: ast.ExpressionNode{String: &text}}

	case lexer.LParen:
		opener := tok.Span
		p.advance()
		inner := p.parseExpression()
		if _, ok := p.consume(lexer.RParen); !ok {
			p.at(opener).MissingParen()
		}
		return inner

	default:
		// Does not consume: leaves the token for the caller's recovery
		// boundary.
		p.at(tok.Span).ExpectedExpression()
		return ast.Expression{At: tok.Span, Node: ast.ExpressionNode{Invalid: true}}
	}
}

// expr-list = [expr *("," expr) [","]]
func (p *parser) exprList() []ast.Expression {
	var args []ast.Expression
	for {
		if _, ok := p.matches(exprStart...); !ok {
			break
		}
		args = append(args, p.parseExpression())
		p.consume(lexer.Comma)
	}
	return args
}
