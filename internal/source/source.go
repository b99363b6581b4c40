// Package source holds the input units and byte-range spans every later
// phase of the front end annotates its output with.
package source

import "fmt"

// Source is a single input unit: some text plus a display name for
// diagnostics. Two sources constructed from identical text and name are
// still distinct — Source is identity-compared, never content-compared, so
// the compiler can tell apart two edits of a file that happen to produce
// the same bytes.
type Source struct {
	text string
	name string
}

// New creates a fresh Source. Every call returns a distinct identity, even
// if text and name match a previous call.
func New(text, name string) *Source {
	return &Source{text: text, name: name}
}

// Text returns the source's full contents.
func (s *Source) Text() string { return s.text }

// Name returns the source's display name (e.g. a file path).
func (s *Source) Name() string { return s.name }

func (s *Source) String() string { return s.name }

// Span is a half-open byte range [Start, End) within a Source.
type Span struct {
	Source *Source
	Start  int
	End    int
}

// NewSpan builds a span over a source. Panics if start > end.
func NewSpan(src *Source, start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("source: span start %d is after end %d", start, end))
	}
	return Span{Source: src, Start: start, End: end}
}

// Cover returns the smallest span covering both s and other. Both spans
// must belong to the same Source — combining spans across sources is a
// compiler bug, not a user error, so it panics rather than returning an
// error.
func (s Span) Cover(other Span) Span {
	if s.Source != other.Source {
		panic("source: cannot combine spans from different sources")
	}

	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Source: s.Source, Start: start, End: end}
}

// Text slices the covered source text out of the span's source.
func (s Span) Text() string {
	return s.Source.Text()[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Source.Name(), s.Start, s.End)
}
