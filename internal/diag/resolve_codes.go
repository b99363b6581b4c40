package diag

import "github.com/rry-lang/rryc/internal/source"

// Semantic diagnostics (ER**). Recovered by substituting Invalid for the
// offending use so downstream phases still see a well-formed tree.
const (
	CodeDuplicateDefinitions = "ER00"
	CodeUnresolvedName       = "ER01"
)

// DuplicateDefinitions reports that the declaration at m's span reuses a
// name already defined at firstSpan.
func (m MessageMaker) DuplicateDefinitions(firstSpan source.Span) {
	m.add(Message{
		Level:   Error,
		Code:    CodeDuplicateDefinitions,
		Message: "duplicate definitions",
		Labels: []Label{
			PrimaryLabel(m.span).WithMessage("duplicate definition here"),
			NoteLabel(firstSpan).WithMessage("first defined here"),
		},
	})
}

func (m MessageMaker) UnresolvedName() {
	m.add(Message{
		Level:   Error,
		Code:    CodeUnresolvedName,
		Message: "unresolved name",
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}
