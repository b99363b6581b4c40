// Package diag implements the compiler's diagnostic accumulator: a
// process-local, append-only log of structured messages produced as a
// side effect of any query. Each Message carries a stable short code
// and zero or more Labels pointing at source spans.
package diag

import "github.com/rry-lang/rryc/internal/source"

// Level classifies the severity of a Message.
type Level int

const (
	Error Level = iota
	Warning
)

func (l Level) String() string {
	if l == Warning {
		return "warning"
	}
	return "error"
}

// LabelKind classifies a Label within a Message.
type LabelKind int

const (
	Primary LabelKind = iota
	Note
	Help
)

// Label points at a span, optionally with its own message, within a
// larger diagnostic Message.
type Label struct {
	Kind    LabelKind
	At      source.Span
	Message string
}

func PrimaryLabel(at source.Span) Label { return Label{Kind: Primary, At: at} }
func NoteLabel(at source.Span) Label    { return Label{Kind: Note, At: at} }
func HelpLabel(at source.Span) Label    { return Label{Kind: Help, At: at} }

func (l Label) WithMessage(msg string) Label {
	l.Message = msg
	return l
}

// Message is one structured diagnostic: a level, a stable code, an
// optional top-level message, and the labels that point at the spans
// involved.
type Message struct {
	Level   Level
	Code    string
	Message string
	Labels  []Label
}

// Accumulator is the per-query-invocation sink diagnostics are pushed
// into. A fresh Accumulator is created for each top-level query call;
// callers drain it once the query returns.
type Accumulator struct {
	messages []Message
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Push appends a message to the accumulator.
func (a *Accumulator) Push(msg Message) {
	a.messages = append(a.messages, msg)
}

// Messages returns every message pushed so far, in push order.
func (a *Accumulator) Messages() []Message {
	return a.messages
}

// Len reports how many messages have been pushed.
func (a *Accumulator) Len() int {
	return len(a.messages)
}

// Merge appends another accumulator's messages onto this one, preserving
// the other's internal order. Used by the query fabric to combine
// diagnostics from independently-run queries.
func (a *Accumulator) Merge(other *Accumulator) {
	a.messages = append(a.messages, other.messages...)
}

// MessageMaker emits typed diagnostics at a fixed span into an
// Accumulator. Each phase constructs one per span it needs to report
// against, mirroring how the teacher's per-phase error helpers work.
type MessageMaker struct {
	acc  *Accumulator
	span source.Span
}

// At returns a MessageMaker that reports against span into acc.
func At(acc *Accumulator, span source.Span) MessageMaker {
	return MessageMaker{acc: acc, span: span}
}

func (m MessageMaker) add(msg Message) {
	m.acc.Push(msg)
}
