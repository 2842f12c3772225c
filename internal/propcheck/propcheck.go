// Package propcheck supplies Arbitrary-style random generators for
// types, ground types, NamedRef references and UInt-typed
// expressions, the Go analogue of the original crate's
// quickcheck::Arbitrary impls used throughout
// original_source/src/tests.rs. There are no Statement, Module or
// Circuit generators. Generators are plain functions taking
// a *rand.Rand and a size/depth bound rather than testing/quick's
// Generator interface, matching _examples/vsrinivas-fuchsia's
// reflect.Value-returning Generate methods in shape but not in
// mechanism, since callers here want the concrete value directly
// instead of going through reflection.
package propcheck

import (
	"math/big"
	"math/rand"

	"firrtl/expr"
	"firrtl/types"
)

// Type returns a random Type of bounded nesting depth.
func Type(rnd *rand.Rand, depth int) types.Type {
	if depth <= 0 || rnd.Intn(3) == 0 {
		return types.Ground{Type: Ground(rnd)}
	}
	if rnd.Intn(2) == 0 {
		return types.Vector{Base: Type(rnd, depth-1), Size: uint16(rnd.Intn(4) + 1)}
	}
	n := rnd.Intn(3) + 1
	fields := make([]types.BundleField, n)
	for i := range fields {
		o := types.Normal
		if rnd.Intn(2) == 1 {
			o = types.Flipped
		}
		fields[i] = types.BundleField{Name: fieldName(i), Type: Type(rnd, depth-1), Orientation: o}
	}
	return types.Bundle{Fields: fields}
}

// Ground returns a random ground leaf type.
func Ground(rnd *rand.Rand) types.GroundType {
	width := types.KnownWidth(uint16(rnd.Intn(30) + 1))
	switch rnd.Intn(5) {
	case 0:
		return types.UInt{Width: width}
	case 1:
		return types.SInt{Width: width}
	case 2:
		return types.ClockType{}
	case 3:
		return types.Analog{Width: width}
	default:
		return types.ResetType{Kind: types.AsyncReset}
	}
}

func fieldName(i int) string { return string(rune('a' + i%26)) }

// Reference returns a random leaf NamedRef of ground type t, usable as
// an Expression's Ref variant.
func Reference(rnd *rand.Rand, name string, t types.Type) expr.NamedRef {
	flows := []expr.Flow{expr.Source, expr.Sink, expr.Duplex}
	return expr.NamedRef{NameValue: name, FlowValue: flows[rnd.Intn(len(flows))], TypeValue: t}
}

// UIntExpression returns a random UInt-typed expression, parameterised
// over NamedRef but with literal leaves only (it never emits a Ref),
// built from and/xor and mux, up to depth levels deep. It never
// generates bundle/vector-shaped subexpressions, keeping every node a
// ground UInt of the given width.
func UIntExpression(rnd *rand.Rand, depth int, width uint16) expr.Expression[expr.NamedRef] {
	if depth <= 0 || rnd.Intn(3) == 0 {
		return expr.UIntLiteral{Value: randomUint(rnd, width), Width: width}
	}
	switch rnd.Intn(3) {
	case 0:
		return expr.PrimitiveOp[expr.NamedRef]{Op: expr.And[expr.NamedRef]{
			A: UIntExpression(rnd, depth-1, width),
			B: UIntExpression(rnd, depth-1, width),
		}}
	case 1:
		return expr.PrimitiveOp[expr.NamedRef]{Op: expr.Xor[expr.NamedRef]{
			A: UIntExpression(rnd, depth-1, width),
			B: UIntExpression(rnd, depth-1, width),
		}}
	default:
		return expr.Mux[expr.NamedRef]{
			Sel: expr.UIntLiteral{Value: randomUint(rnd, 1), Width: 1},
			A:   UIntExpression(rnd, depth-1, width),
			B:   UIntExpression(rnd, depth-1, width),
		}
	}
}

func randomUint(rnd *rand.Rand, width uint16) *big.Int {
	max := uint64(1) << width
	if width >= 63 {
		max = 1 << 62
	}
	return big.NewInt(int64(rnd.Uint64() % max))
}
