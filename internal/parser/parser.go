// Package parser implements the recursive-descent parser for rry source
// files. It never aborts: any construct it cannot recognize becomes an
// Invalid AST node plus a diagnostic, and parsing resumes at the next
// recognizable boundary.
package parser

import (
	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/ident"
	"github.com/rry-lang/rryc/internal/lexer"
	"github.com/rry-lang/rryc/internal/source"
)

// Parse lexes src and parses the full token stream into a list of
// top-level declarations, recording every syntax error into acc. It
// always consumes the entire input.
func Parse(src *source.Source, acc *diag.Accumulator) ast.Declarations {
	tokens := lexer.Lex(src)
	p := &parser{tokens: tokens, src: src, acc: acc}
	return ast.Declarations{Items: p.topLevel()}
}

type parser struct {
	tokens   []lexer.Token
	pos      int
	lastSpan *source.Span
	src      *source.Source
	acc      *diag.Accumulator
}

func (p *parser) closestSpan() source.Span {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Span
	}
	if p.lastSpan != nil {
		return *p.lastSpan
	}
	return source.NewSpan(p.src, 0, 0)
}

func (p *parser) thisOne() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		span := p.tokens[p.pos].Span
		p.lastSpan = &span
		p.pos++
	}
}

func (p *parser) isDone() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Type == lexer.EOF
}

// matches reports whether the current token's type is in set, returning
// its span.
func (p *parser) matches(set ...lexer.Type) (source.Span, bool) {
	tok, ok := p.thisOne()
	if !ok {
		return source.Span{}, false
	}
	for _, ty := range set {
		if tok.Type == ty {
			return tok.Span, true
		}
	}
	return source.Span{}, false
}

// consume advances past the current token if it matches one of set.
func (p *parser) consume(set ...lexer.Type) (source.Span, bool) {
	span, ok := p.matches(set...)
	if ok {
		p.advance()
	}
	return span, ok
}

func (p *parser) at(span source.Span) diag.MessageMaker {
	return diag.At(p.acc, span)
}

// parseNamePart reads a single identifier token (value or type name),
// producing an ident.InvalidPart for anything else. It never advances
// past a token that does not look like a name-shaped token when none is
// present, mirroring the source's total parse_name helper.
func (p *parser) parseNamePart() (ident.NamePart, source.Span) {
	tok, ok := p.thisOne()
	if !ok {
		span := p.closestSpan()
		return ident.InvalidPart, span
	}

	switch tok.Type {
	case lexer.ValueName:
		p.advance()
		return ident.NewValuePart(tok.Text), tok.Span
	case lexer.TypeName:
		p.advance()
		return ident.NewTypePart(tok.Text), tok.Span
	default:
		return ident.InvalidPart, tok.Span
	}
}

var declarationStart = []lexer.Type{lexer.Class, lexer.Function, lexer.Var, lexer.Variant}

var statementStart = []lexer.Type{
	lexer.Null, lexer.Return, lexer.Let, lexer.Var,
	lexer.ValueName, lexer.Number, lexer.String, lexer.LParen,
}

var exprStart = []lexer.Type{lexer.Ampersand, lexer.ValueName, lexer.Number, lexer.String, lexer.LParen}

var typeStart = []lexer.Type{lexer.TypeName, lexer.Ampersand, lexer.LParen}
