package expr

import "firrtl/types"

// TypeError reports that TypeOf could not derive a type, identifying
// the offending sub-expression rather than panicking — FIRRTL's
// typing failures are values, never exceptions.
type TypeError[R Reference] struct {
	Expr   Expression[R]
	Reason string
}

func (e *TypeError[R]) Error() string { return "cannot derive type: " + e.Reason }

func typeErr[R Reference](e Expression[R], reason string) error {
	return &TypeError[R]{Expr: e, Reason: reason}
}

// TypeOf derives the FIRRTL type of e, recursively from its children.
// On failure it returns a *TypeError[R] identifying the sub-expression
// that could not be typed.
func TypeOf[R Reference](e Expression[R]) (types.Type, error) {
	switch v := e.(type) {
	case UIntLiteral:
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(v.Width)}}, nil
	case SIntLiteral:
		return types.Ground{Type: types.SInt{Width: types.KnownWidth(v.Width)}}, nil
	case Ref[R]:
		return v.Ref.Type(), nil
	case SubField[R]:
		bt, err := TypeOf[R](v.Base)
		if err != nil {
			return nil, err
		}
		f, ok := types.Field(bt, v.Field)
		if !ok {
			return nil, typeErr[R](e, "sub-field of a non-bundle, or unknown field \""+v.Field+"\"")
		}
		return f.Type, nil
	case SubIndex[R]:
		bt, err := TypeOf[R](v.Base)
		if err != nil {
			return nil, err
		}
		base, ok := types.VectorBase(bt)
		if !ok {
			return nil, typeErr[R](e, "sub-index of a non-vector")
		}
		return base, nil
	case SubAccess[R]:
		bt, err := TypeOf[R](v.Base)
		if err != nil {
			return nil, err
		}
		base, ok := types.VectorBase(bt)
		if !ok {
			return nil, typeErr[R](e, "sub-access of a non-vector")
		}
		return base, nil
	case Mux[R]:
		return typeOfMux[R](e, v)
	case ValidIf[R]:
		return TypeOf[R](v.Value)
	case PrimitiveOp[R]:
		return typeOfOp[R](e, v.Op)
	default:
		return nil, typeErr[R](e, "unrecognised expression kind")
	}
}

func typeOfMux[R Reference](e Expression[R], v Mux[R]) (types.Type, error) {
	at, err := TypeOf[R](v.A)
	if err != nil {
		return nil, err
	}
	bt, err := TypeOf[R](v.B)
	if err != nil {
		return nil, err
	}
	ag, aok := types.GroundTypeOf(at)
	bg, bok := types.GroundTypeOf(bt)
	if aok && bok {
		g, ok := types.MaxWidth.Combine(ag, bg)
		if !ok {
			return nil, typeErr[R](e, "mux branches have incompatible ground types")
		}
		return types.Ground{Type: g}, nil
	}
	if !types.Eq(at, bt) {
		return nil, typeErr[R](e, "mux branches have incompatible types")
	}
	return at, nil
}

func groundOperand[R Reference](e Expression[R], sub Expression[R]) (types.GroundType, error) {
	t, err := TypeOf[R](sub)
	if err != nil {
		return nil, err
	}
	g, ok := types.GroundTypeOf(t)
	if !ok {
		return nil, typeErr[R](e, "primitive operand must be ground-typed")
	}
	return g, nil
}

func knownOrUnknown(known bool, w uint16) types.BitWidth {
	if !known {
		return types.UnknownWidth()
	}
	return types.KnownWidth(w)
}

func typeOfOp[R Reference](e Expression[R], op Operation[R]) (types.Type, error) {
	switch v := op.(type) {
	case Add[R]:
		return arithType[R](e, v.A, v.B, func(a, b uint16) uint16 { return maxU16(a, b) + 1 })
	case Sub[R]:
		return arithType[R](e, v.A, v.B, func(a, b uint16) uint16 { return maxU16(a, b) + 1 })
	case Mul[R]:
		return arithType[R](e, v.A, v.B, func(a, b uint16) uint16 { return a + b })
	case Div[R]:
		ag, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		if _, ok := ag.(types.SInt); ok {
			return arithType[R](e, v.A, v.B, func(a, b uint16) uint16 { return a + 1 })
		}
		return arithType[R](e, v.A, v.B, func(a, b uint16) uint16 { return a })
	case Rem[R]:
		return arithType[R](e, v.A, v.B, minU16)
	case Lt[R]:
		return compareType[R](e, v.A, v.B)
	case Leq[R]:
		return compareType[R](e, v.A, v.B)
	case Gt[R]:
		return compareType[R](e, v.A, v.B)
	case Geq[R]:
		return compareType[R](e, v.A, v.B)
	case Eq[R]:
		return compareType[R](e, v.A, v.B)
	case Neq[R]:
		return compareType[R](e, v.A, v.B)
	case Pad[R]:
		return padType[R](e, v)
	case AsUInt[R]:
		w, known := operandWidth[R](e, v.A)
		return types.Ground{Type: types.UInt{Width: knownOrUnknown(known, w)}}, nil
	case AsSInt[R]:
		w, known := operandWidth[R](e, v.A)
		return types.Ground{Type: types.SInt{Width: knownOrUnknown(known, w)}}, nil
	case AsClock[R]:
		return types.Ground{Type: types.ClockType{}}, nil
	case AsAsyncReset[R]:
		return types.Ground{Type: types.ResetType{Kind: types.AsyncReset}}, nil
	case AsFixed[R]:
		w, known := operandWidth[R](e, v.A)
		p := v.Point
		return types.Ground{Type: types.Fixed{Width: knownOrUnknown(known, w), Point: &p}}, nil
	case Shl[R]:
		w, known := operandWidth[R](e, v.A)
		g, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		return withWidth(g, knownOrUnknown(known, w+v.Amount)), nil
	case Shr[R]:
		w, known := operandWidth[R](e, v.A)
		g, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		var nw uint16 = 1
		if known {
			nw = w - v.Amount
			if nw == 0 || v.Amount > w {
				nw = 1
			}
		}
		return withWidth(g, knownOrUnknown(known, nw)), nil
	case Dshl[R]:
		g, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		return withWidth(g, types.UnknownWidth()), nil
	case Dshr[R]:
		g, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		return types.Ground{Type: g}, nil
	case Cvt[R]:
		ag, err := groundOperand[R](e, v.A)
		if err != nil {
			return nil, err
		}
		switch gv := ag.(type) {
		case types.UInt:
			w, known := gv.Width.Value()
			return types.Ground{Type: types.SInt{Width: knownOrUnknown(known, w+1)}}, nil
		case types.SInt:
			return types.Ground{Type: gv}, nil
		default:
			return nil, typeErr[R](e, "cvt requires a UInt or SInt operand")
		}
	case Neg[R]:
		w, known := operandWidth[R](e, v.A)
		return types.Ground{Type: types.SInt{Width: knownOrUnknown(known, w+1)}}, nil
	case Not[R]:
		w, known := operandWidth[R](e, v.A)
		return types.Ground{Type: types.UInt{Width: knownOrUnknown(known, w)}}, nil
	case And[R]:
		return bitwiseType[R](e, v.A, v.B)
	case Or[R]:
		return bitwiseType[R](e, v.A, v.B)
	case Xor[R]:
		return bitwiseType[R](e, v.A, v.B)
	case Andr[R]:
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, nil
	case Orr[R]:
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, nil
	case Xorr[R]:
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, nil
	case Cat[R]:
		aw, aknown := operandWidth[R](e, v.A)
		bw, bknown := operandWidth[R](e, v.B)
		return types.Ground{Type: types.UInt{Width: knownOrUnknown(aknown && bknown, aw+bw)}}, nil
	case Bits[R]:
		if v.Hi < v.Lo {
			return nil, typeErr[R](e, "bits: high index below low index")
		}
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(v.Hi - v.Lo + 1)}}, nil
	case Head[R]:
		if v.N == 0 {
			return nil, typeErr[R](e, "head: zero-width result")
		}
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(v.N)}}, nil
	case Tail[R]:
		w, known := operandWidth[R](e, v.A)
		if known && v.N >= w {
			return nil, typeErr[R](e, "tail: removes at least as many bits as the operand has")
		}
		return types.Ground{Type: types.UInt{Width: knownOrUnknown(known, w-v.N)}}, nil
	case Incp[R]:
		return precisionType[R](e, v.A, v.N, true)
	case Decp[R]:
		return precisionType[R](e, v.A, v.N, false)
	case Setp[R]:
		return setPrecisionType[R](e, v.A, v.N)
	default:
		return nil, typeErr[R](e, "unrecognised primitive operation")
	}
}

func operandWidth[R Reference](e Expression[R], sub Expression[R]) (uint16, bool) {
	g, err := groundOperand[R](e, sub)
	if err != nil {
		return 0, false
	}
	switch v := g.(type) {
	case types.UInt:
		return v.Width.Value()
	case types.SInt:
		return v.Width.Value()
	case types.Analog:
		return v.Width.Value()
	case types.Fixed:
		return v.Width.Value()
	default:
		return 0, false
	}
}

func withWidth(g types.GroundType, w types.BitWidth) types.Type {
	switch g.(type) {
	case types.SInt:
		return types.Ground{Type: types.SInt{Width: w}}
	default:
		return types.Ground{Type: types.UInt{Width: w}}
	}
}

func arithType[R Reference](e Expression[R], a, b Expression[R], combine func(a, b uint16) uint16) (types.Type, error) {
	ag, err := groundOperand[R](e, a)
	if err != nil {
		return nil, err
	}
	bg, err := groundOperand[R](e, b)
	if err != nil {
		return nil, err
	}
	if !types.SameVariant(ag, bg) {
		return nil, typeErr[R](e, "arithmetic operands must share a ground variant")
	}
	aw, aok := operandWidth[R](e, a)
	bw, bok := operandWidth[R](e, b)
	return withWidth(ag, knownOrUnknown(aok && bok, combine(aw, bw))), nil
}

func compareType[R Reference](e Expression[R], a, b Expression[R]) (types.Type, error) {
	ag, err := groundOperand[R](e, a)
	if err != nil {
		return nil, err
	}
	bg, err := groundOperand[R](e, b)
	if err != nil {
		return nil, err
	}
	if !types.SameVariant(ag, bg) {
		return nil, typeErr[R](e, "comparison operands must share a ground variant")
	}
	return types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, nil
}

func bitwiseType[R Reference](e Expression[R], a, b Expression[R]) (types.Type, error) {
	aw, aknown := operandWidth[R](e, a)
	bw, bknown := operandWidth[R](e, b)
	if _, err := groundOperand[R](e, a); err != nil {
		return nil, err
	}
	if _, err := groundOperand[R](e, b); err != nil {
		return nil, err
	}
	return types.Ground{Type: types.UInt{Width: knownOrUnknown(aknown && bknown, maxU16(aw, bw))}}, nil
}

func padType[R Reference](e Expression[R], v Pad[R]) (types.Type, error) {
	g, err := groundOperand[R](e, v.A)
	if err != nil {
		return nil, err
	}
	w, known := operandWidth[R](e, v.A)
	if f, ok := g.(types.Fixed); ok {
		if known {
			w = maxU16(w, v.Width)
		} else {
			w = v.Width
		}
		return types.Ground{Type: types.Fixed{Width: types.KnownWidth(w), Point: f.Point}}, nil
	}
	if !known {
		return withWidth(g, types.KnownWidth(v.Width)), nil
	}
	return withWidth(g, types.KnownWidth(maxU16(w, v.Width))), nil
}

func fixedOperand[R Reference](e Expression[R], sub Expression[R]) (types.Fixed, error) {
	g, err := groundOperand[R](e, sub)
	if err != nil {
		return types.Fixed{}, err
	}
	f, ok := g.(types.Fixed)
	if !ok {
		return types.Fixed{}, typeErr[R](e, "operand must be Fixed")
	}
	return f, nil
}

func precisionType[R Reference](e Expression[R], a Expression[R], n uint16, increase bool) (types.Type, error) {
	f, err := fixedOperand[R](e, a)
	if err != nil {
		return nil, err
	}
	w, known := f.Width.Value()
	if f.Point == nil || !known {
		return types.Ground{Type: types.Fixed{Width: types.UnknownWidth()}}, nil
	}
	p := *f.Point
	if increase {
		p += int16(n)
		w += n
	} else {
		p -= int16(n)
		w -= n
	}
	return types.Ground{Type: types.Fixed{Width: types.KnownWidth(w), Point: &p}}, nil
}

func setPrecisionType[R Reference](e Expression[R], a Expression[R], n uint16) (types.Type, error) {
	f, err := fixedOperand[R](e, a)
	if err != nil {
		return nil, err
	}
	w, known := f.Width.Value()
	if f.Point == nil || !known {
		p := int16(n)
		return types.Ground{Type: types.Fixed{Width: types.UnknownWidth(), Point: &p}}, nil
	}
	old := *f.Point
	delta := int16(n) - old
	newW := int16(w) + delta
	if newW < 1 {
		newW = 1
	}
	p := int16(n)
	return types.Ground{Type: types.Fixed{Width: types.KnownWidth(uint16(newW)), Point: &p}}, nil
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}

func minU16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}
