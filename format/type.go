// Package format renders FIRRTL AST nodes back to canonical surface
// syntax. types.Type and its GroundType leaves already implement
// fmt.Stringer directly (they are concrete types this module owns),
// but Expression/Statement/Module/Circuit are generic or carry no
// natural receiver to hang a String() method on — Expression is
// parameterized over a Reference type, and a Statement's rendering
// needs an indent depth threaded through recursive calls, which
// Stringer's zero-argument signature can't carry. format gathers
// those renderers as plain functions instead.
package format

import "firrtl/types"

// Type renders t in canonical surface syntax; it is a thin wrapper
// over types.Type's own String(), kept here so callers can treat
// every AST rendering concern as living in one package.
func Type(t types.Type) string { return t.String() }
