package parser

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/lexer"
)

func (p *parser) parseBlock() ast.Block {
	var statements []ast.Statement
	for {
		if _, ok := p.matches(statementStart...); !ok {
			break
		}
		statements = append(statements, p.statement())
	}
	return ast.Block{Statements: statements}
}

func (p *parser) statement() ast.Statement {
	tok, ok := p.thisOne()
	if !ok {
		// Unreachable: callers only invoke statement() after matching
		// statementStart against the current token.
		span := p.closestSpan()
		return ast.Statement{At: span, Node: ast.StatementNode{Null: true}}
	}

	switch tok.Type {
	case lexer.Null:
		p.advance()
		return ast.Statement{At: tok.Span, Node: ast.StatementNode{Null: true}}

	case lexer.Return:
		opener := tok.Span
		p.advance()
		var expr ast.Expression
		if _, ok := p.matches(exprStart...); ok {
			expr = p.parseExpression()
		} else {
			expr = ast.Expression{At: opener, Node: ast.ExpressionNode{Unit: true}}
		}
		return ast.Statement{At: opener.Cover(expr.At), Node: ast.StatementNode{Return: &expr}}

	case lexer.Let:
		opener := tok.Span
		p.advance()
		name := p.localName()
		ty := p.parseType()
		if _, ok := p.consume(lexer.ColonEqual); !ok {
			span := p.closestSpan()
			p.at(span).ExpectedAssignment()
		}
		body := p.parseExpression()
		return ast.Statement{
			At:   opener.Cover(body.At),
			Node: ast.StatementNode{Constant: &ast.LocalBinding{Name: name, Type: ty, Body: body}},
		}

	case lexer.Var:
		opener := tok.Span
		p.advance()
		name := p.localName()
		ty := p.parseType()
		if _, ok := p.consume(lexer.ColonEqual); !ok {
			span := p.closestSpan()
			p.at(span).ExpectedAssignment()
		}
		body := p.parseExpression()
		return ast.Statement{
			At:   opener.Cover(body.At),
			Node: ast.StatementNode{Variable: &ast.LocalBinding{Name: name, Type: ty, Body: body}},
		}

	default:
		expr := p.parseExpression()
		return p.expressionOrAssignment(expr)
	}
}

// localName reads the value name bound by a `let`/`var` statement,
// reporting EP11 if a type name or nothing was found instead.
func (p *parser) localName() ident.NamePart {
	tok, ok := p.thisOne()
	if !ok {
		span := p.closestSpan()
		p.at(span).ExpectedValueName("")
		return ident.InvalidPart
	}

	switch tok.Type {
	case lexer.ValueName:
		p.advance()
		return ident.NewValuePart(tok.Text)
	case lexer.TypeName:
		p.advance()
		p.at(tok.Span).ExpectedValueName(tok.Text)
		return ident.InvalidPart
	default:
		p.at(tok.Span).ExpectedValueName("")
		return ident.InvalidPart
	}
}

func (p *parser) expressionOrAssignment(expr ast.Expression) ast.Statement {
	if expr.Node.Name != nil {
		if _, ok := p.consume(lexer.ColonEqual); ok {
			body := p.parseExpression()
			name := *expr.Node.Name
			return ast.Statement{
				At:   expr.At.Cover(body.At),
				Node: ast.StatementNode{Assignment: &ast.AssignmentStatement{Name: name, Body: body}},
			}
		}
	}

	return ast.Statement{At: expr.At, Node: ast.StatementNode{Expression: &expr}}
}
