// Package ast defines the parsed, unresolved syntax tree for rry source
// files. Every node carries the source.Span it was parsed from, and every
// sum type that can fail to parse has an Invalid case so that a single
// malformed declaration never aborts parsing the rest of the file.
package ast

import "github.com/rry-lang/rryc/internal/source"

// Node is the base interface every AST node satisfies.
type Node interface {
	Span() source.Span
}

// Declarations is the root of a parsed file: an ordered list of top-level
// declarations.
type Declarations struct {
	Items []Declaration
}
