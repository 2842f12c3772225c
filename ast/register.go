package ast

import (
	"firrtl/expr"
	"firrtl/types"
)

// RegisterReset pairs a reset signal expression with the value driven
// when that signal is asserted.
type RegisterReset struct {
	Signal Expr
	Value  Expr
}

// Register is a clocked, optionally-reset storage entity. Its flow is
// always Duplex: it may be both read and assigned.
type Register struct {
	NameValue string
	TypeValue types.Type
	Clock     Expr
	Reset     *RegisterReset
	Info      *string
}

// NewRegister constructs a Register with no reset.
func NewRegister(name string, t types.Type, clock Expr, info *string) Register {
	return Register{NameValue: name, TypeValue: t, Clock: clock, Info: info}
}

// WithReset returns a copy of r with the given reset signal/value
// pair attached, replacing any existing reset.
func (r Register) WithReset(signal, value Expr) Register {
	r.Reset = &RegisterReset{Signal: signal, Value: value}
	return r
}

// WithoutReset returns a copy of r with any reset removed.
func (r Register) WithoutReset() Register {
	r.Reset = nil
	return r
}

func (Register) isEntity() {}

func (r Register) Name() string     { return r.NameValue }
func (r Register) Type() types.Type { return r.TypeValue }
func (r Register) Flow() expr.Flow  { return expr.Duplex }
