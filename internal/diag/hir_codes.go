package diag

// CodeNotImplemented marks output from the placeholder type-checker
// (internal/hir), whose real work is unspecified in this front end.
const CodeNotImplemented = "EH00"

func (m MessageMaker) NotImplemented(what string) {
	m.add(Message{
		Level:   Warning,
		Code:    CodeNotImplemented,
		Message: "type checking is not implemented: " + what,
		Labels:  []Label{PrimaryLabel(m.span)},
	})
}
