package parser

import "firrtl/ast"

// Scope resolves identifiers to previously declared entities during
// statement parsing: a reference is looked up in the current
// statement sequence's declarations first, falling back to the
// enclosing scope (typically the module's ports).
type Scope struct {
	entities map[string]ast.Entity
	parent   *Scope
}

// NewScope creates a Scope, optionally chained to a parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{entities: map[string]ast.Entity{}, parent: parent}
}

// Declare adds e to the scope under its own name.
func (s *Scope) Declare(e ast.Entity) { s.entities[e.Name()] = e }

// Lookup resolves name against this scope, then its ancestors.
func (s *Scope) Lookup(name string) (ast.Entity, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.entities[name]; ok {
			return e, true
		}
	}
	return nil, false
}
