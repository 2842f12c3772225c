package parser

import (
	"iter"

	"firrtl/ast"
)

// Modules parses text and yields its modules one at a time to the
// consumer, matching the library's streaming per-module surface used
// by tools (like moddep) that only need ReferencedModules() and have
// no use for the whole Circuit. Parsing itself is not incremental —
// `inst ... of ...` resolution needs every module's signature up
// front regardless — but the consumer still only sees one module at a
// time and can stop early via range-over-func's break.
func Modules(text string) iter.Seq2[*ast.Module, error] {
	return func(yield func(*ast.Module, error) bool) {
		circuit, err := ParseCircuit(text)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, m := range circuit.Modules() {
			if !yield(m, nil) {
				return
			}
		}
	}
}
