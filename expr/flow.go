// Package expr implements FIRRTL's expression algebra: a recursive
// tree generic over a Reference capability, with typing and flow
// derivation.
package expr

import "firrtl/types"

// Flow classifies whether an expression may be read (Source), written
// (Sink), or both (Duplex).
type Flow int

const (
	Source Flow = iota
	Sink
	Duplex
)

func (f Flow) String() string {
	switch f {
	case Sink:
		return "sink"
	case Duplex:
		return "duplex"
	default:
		return "source"
	}
}

// Add applies an Orientation to a Flow: Normal is the identity;
// Flipped swaps Source and Sink and leaves Duplex fixed.
func (f Flow) Add(o types.Orientation) Flow {
	if o == types.Normal {
		return f
	}
	switch f {
	case Source:
		return Sink
	case Sink:
		return Source
	default:
		return Duplex
	}
}

// Reference is the capability an expression tree is generic over: a
// leaf that can name itself, report its own flow, and report its own
// declared type. Entities (ports, wires, registers, ...) implement
// this; the parser may also use a lightweight raw-name reference for
// isolated expression parsing.
type Reference interface {
	Name() string
	Flow() Flow
	Type() types.Type
}
