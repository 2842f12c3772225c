// Package ast implements FIRRTL's statement, entity, module and
// circuit model: the pieces that are mutually recursive in the
// original crate's module/stmt/stmt::entity split (an Entity can
// declare an Instance of a Module, a Module's body is a list of
// Statements, and a Statement can declare an Entity) are kept together
// here in one package to avoid a three-way Go import cycle.
package ast

import (
	"firrtl/expr"
	"firrtl/types"
)

// Expr is a FIRRTL expression whose leaves are shared Entity handles —
// the reference capability the parser uses once it is parsing inside
// a module scope, as opposed to the bare expr.NamedRef used for
// isolated expression parsing.
type Expr = expr.Expression[Entity]

// Entity is a named, referencable AST node: a port, wire, register,
// node, memory, simple memory, or module instance. It satisfies
// expr.Reference so it can sit at the leaves of an Expr.
type Entity interface {
	expr.Reference
	isEntity()
}

// Direction is a module port's signal direction.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Port is a module boundary signal. Ports are not declarable via a
// Statement; they only arise from a Module's port list.
type Port struct {
	NameValue string
	TypeValue types.Type
	Direction Direction
}

func (Port) isEntity() {}

func (p Port) Name() string     { return p.NameValue }
func (p Port) Type() types.Type { return p.TypeValue }

// Flow is Sink for an Output port and Source for an Input port,
// matching how the port is used from inside the module body: an
// Output is written by the body, an Input is read by it.
func (p Port) Flow() expr.Flow {
	if p.Direction == Output {
		return expr.Sink
	}
	return expr.Source
}

// Wire is a combinational, bidirectionally-driveable declared signal.
type Wire struct {
	NameValue string
	TypeValue types.Type
	Info      *string
}

func (Wire) isEntity() {}

func (w Wire) Name() string     { return w.NameValue }
func (w Wire) Type() types.Type { return w.TypeValue }
func (w Wire) Flow() expr.Flow  { return expr.Duplex }

// Node binds a name to the value of an expression. Its type is the
// type of that expression, resolved once at construction.
type Node struct {
	NameValue string
	Value     Expr
	TypeValue types.Type
	Info      *string
}

// NewNode constructs a Node, deriving its type from value.
func NewNode(name string, value Expr, info *string) (Node, error) {
	t, err := expr.TypeOf[Entity](value)
	if err != nil {
		return Node{}, err
	}
	return Node{NameValue: name, Value: value, TypeValue: t, Info: info}, nil
}

func (Node) isEntity() {}

func (n Node) Name() string     { return n.NameValue }
func (n Node) Type() types.Type { return n.TypeValue }
func (n Node) Flow() expr.Flow  { return expr.Source }

// IsDeclarable reports whether an Entity variant may appear as a
// Statement's Declaration payload. Ports are the sole exception: they
// only arise from a Module's port list.
func IsDeclarable(e Entity) bool {
	_, isPort := e.(Port)
	return !isPort
}
