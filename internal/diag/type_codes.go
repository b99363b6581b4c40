package diag

import "strings"

// Type-relational diagnostics (ET**). Recovered by refusing to add the
// offending subtyping edge; the lattice stays acyclic.
const (
	CodeSubtypeCycle = "ET00"
)

// SubtypeCycle reports that adding a subtyping edge at m's span would
// create a cycle. involves, if non-empty, is the pretty-printed
// supertype path witnessing the would-be cycle (caller formats each
// Type with its own String()).
func (m MessageMaker) SubtypeCycle(involves []string) {
	msg := "this type ends up being its own subtype"
	if len(involves) > 0 {
		msg = "this type ends up being its own subtype through " + strings.Join(involves, ", ")
	}
	m.add(Message{
		Level:   Error,
		Code:    CodeSubtypeCycle,
		Message: "subtyping cycle",
		Labels:  []Label{PrimaryLabel(m.span).WithMessage(msg)},
	})
}
