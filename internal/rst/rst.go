// Package rst holds the resolved syntax tree: the output of
// internal/resolve's second pass. It mirrors internal/ast's shape
// closely — the same sum-of-optional-fields encoding for each node kind
// — but every name that could be looked up has been rewritten to an
// internal/ident.Name (or Invalid, if lookup failed), and field access
// keeps its raw internal/ident.NamePart since fields are never resolved
// independently of the value they're accessed on.
//
// Grounded on original_source/src/rst.rs's enum shapes.
package rst

// Items is one resolved source file: every class/variant found by the
// discovery pass, and every free function/variable declared at file
// scope.
type Items struct {
	Classes []Class
	Values  []Value
}
