// Package lexer turns rry source text into a flat token stream. It is the
// one external collaborator the front end names an interface contract for
// but also ships a real implementation of, since the parser cannot be
// exercised without one (see SPEC_FULL.md §4.2).
package lexer

import "github.com/rry-lang/rryc/internal/source"

// Type is the kind of a single token.
type Type int

const (
	Illegal Type = iota
	EOF

	Ident    // placeholder, never produced directly — see TypeName/ValueName
	Number   // 123, 123.45
	String   // "hello" (quotes stripped)
	TypeName // UpperCamel identifier
	ValueName

	// Keywords
	Case
	Class
	End
	Function
	Is
	Let
	Null
	Private
	Return
	This
	Var
	Variant

	// Punctuation
	LParen
	RParen
	LBracket
	RBracket
	Ampersand
	ColonEqual
	Comma
	Dot
	Less
	Equal
	Greater
	Plus
	Minus
	Star
	Slash
)

var names = map[Type]string{
	Illegal:    "illegal",
	EOF:        "end of input",
	Number:     "number",
	String:     "string",
	TypeName:   "type name",
	ValueName:  "value name",
	Case:       "'case'",
	Class:      "'class'",
	End:        "'end'",
	Function:   "'function'",
	Is:         "'is'",
	Let:        "'let'",
	Null:       "'null'",
	Private:    "'private'",
	Return:     "'return'",
	This:       "'this'",
	Var:        "'var'",
	Variant:    "'variant'",
	LParen:     "'('",
	RParen:     "')'",
	LBracket:   "'['",
	RBracket:   "']'",
	Ampersand:  "'&'",
	ColonEqual: "':='",
	Comma:      "','",
	Dot:        "'.'",
	Less:       "'<'",
	Equal:      "'='",
	Greater:    "'>'",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "unknown"
}

var keywords = map[string]Type{
	"case":     Case,
	"class":    Class,
	"end":      End,
	"function": Function,
	"is":       Is,
	"let":      Let,
	"null":     Null,
	"private":  Private,
	"return":   Return,
	"this":     This,
	"var":      Var,
	"variant":  Variant,
}

// Token is a single lexeme: its type, literal text (quotes already
// stripped for strings), and the span it occupies in its source.
type Token struct {
	Type Type
	Text string
	Span source.Span
}
