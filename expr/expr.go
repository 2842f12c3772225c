package expr

import "math/big"

// Expression is a FIRRTL expression tree, generic over the Reference
// capability R used at its leaves. Child expressions are shared
// immutable pointers: many parents may hold the same subtree, so the
// tree is really a DAG, never mutated after construction.
type Expression[R Reference] interface {
	isExpression()
}

// UIntLiteral is an unsigned literal of a known width.
type UIntLiteral struct {
	Value *big.Int
	Width uint16
}

// SIntLiteral is a two's-complement signed literal of a known width.
type SIntLiteral struct {
	Value *big.Int
	Width uint16
}

// Ref wraps a Reference as a leaf expression.
type Ref[R Reference] struct{ Ref R }

// SubField projects a named field out of a bundle-typed base.
type SubField[R Reference] struct {
	Base  Expression[R]
	Field string
}

// SubIndex projects a constant index out of a vector-typed base.
type SubIndex[R Reference] struct {
	Base  Expression[R]
	Index uint16
}

// SubAccess projects a dynamically-indexed element out of a
// vector-typed base.
type SubAccess[R Reference] struct {
	Base  Expression[R]
	Index Expression[R]
}

// Mux selects between two branches based on a one-bit selector,
// yielding the width-combined type of both branches.
type Mux[R Reference] struct {
	Sel, A, B Expression[R]
}

// ValidIf yields Value when Sel holds, and is otherwise don't-care;
// its type is always Value's type.
type ValidIf[R Reference] struct {
	Sel, Value Expression[R]
}

// PrimitiveOp wraps one of the 37 primitive operations as an
// expression.
type PrimitiveOp[R Reference] struct{ Op Operation[R] }

func (UIntLiteral) isExpression()     {}
func (SIntLiteral) isExpression()     {}
func (Ref[R]) isExpression()          {}
func (SubField[R]) isExpression()     {}
func (SubIndex[R]) isExpression()     {}
func (SubAccess[R]) isExpression()    {}
func (Mux[R]) isExpression()          {}
func (ValidIf[R]) isExpression()      {}
func (PrimitiveOp[R]) isExpression()  {}
