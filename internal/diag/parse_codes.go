package diag

import "fmt"

// Syntactic diagnostics (EP**). Recovered locally by substituting an
// Invalid node and continuing at the next recovery boundary.
const (
	CodeExpectedDeclaration = "EP00"
	CodeExpectedExpression  = "EP01"
	CodeExpectedType        = "EP02"
	CodeExpectedTypeName    = "EP10"
	CodeExpectedValueName   = "EP11"
	CodeExpectedAssignment  = "EP12"
	CodeMissingEnd          = "EP20"
	CodeMissingParen        = "EP21"
)

func (m MessageMaker) ExpectedDeclaration() {
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedDeclaration,
		Message: "expected a declaration",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

func (m MessageMaker) ExpectedExpression() {
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedExpression,
		Message: "expected an expression",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

func (m MessageMaker) ExpectedType() {
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedType,
		Message: "expected a type",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

// ExpectedValueName reports that a value name (lowerCamel) was required.
// If gotTypeName is non-empty, a help label suggests the lowercased spelling.
func (m MessageMaker) ExpectedValueName(gotTypeName string) {
	labels := []Label{PrimaryLabel(m.span)}
	if gotTypeName != "" {
		labels = append(labels, HelpLabel(m.span).WithMessage(
			fmt.Sprintf("value names must begin with a lowercase letter: '%s'", lowerFirst(gotTypeName))))
	}
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedValueName,
		Message: "expected a value name",
		Labels:  labels,
	})
}

// ExpectedTypeName reports that a type name (UpperCamel) was required.
// If gotValueName is non-empty, a help label suggests the uppercased spelling.
func (m MessageMaker) ExpectedTypeName(gotValueName string) {
	labels := []Label{PrimaryLabel(m.span)}
	if gotValueName != "" {
		labels = append(labels, HelpLabel(m.span).WithMessage(
			fmt.Sprintf("type names must begin with an uppercase letter: '%s'", upperFirst(gotValueName))))
	}
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedTypeName,
		Message: "expected a type name",
		Labels:  labels,
	})
}

func (m MessageMaker) ExpectedAssignment() {
	m.add(Message{
		Level:   Error,
		Code:    CodeExpectedAssignment,
		Message: "expected a value assignment",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

func (m MessageMaker) MissingEnd() {
	m.add(Message{
		Level:   Error,
		Code:    CodeMissingEnd,
		Message: "missing an 'end' keyword",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

func (m MessageMaker) MissingParen() {
	m.add(Message{
		Level:   Error,
		Code:    CodeMissingParen,
		Message: "unclosed opening parenthesis",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
