package expr

// References returns every leaf Reference reachable from e via a
// depth-first traversal. Ordering is deterministic for a given
// expression (left-to-right over each node's children) but is not
// otherwise specified by the FIRRTL model.
func References[R Reference](e Expression[R]) []R {
	var out []R
	collectReferences(e, &out)
	return out
}

func collectReferences[R Reference](e Expression[R], out *[]R) {
	switch v := e.(type) {
	case Ref[R]:
		*out = append(*out, v.Ref)
	case SubField[R]:
		collectReferences(v.Base, out)
	case SubIndex[R]:
		collectReferences(v.Base, out)
	case SubAccess[R]:
		collectReferences(v.Base, out)
		collectReferences(v.Index, out)
	case Mux[R]:
		collectReferences(v.Sel, out)
		collectReferences(v.A, out)
		collectReferences(v.B, out)
	case ValidIf[R]:
		collectReferences(v.Sel, out)
		collectReferences(v.Value, out)
	case PrimitiveOp[R]:
		collectOperationReferences(v.Op, out)
	}
}

func collectOperationReferences[R Reference](op Operation[R], out *[]R) {
	for _, sub := range operationOperands[R](op) {
		collectReferences(sub, out)
	}
}

// operationOperands returns an operation's child expressions in
// surface-syntax argument order.
func operationOperands[R Reference](op Operation[R]) []Expression[R] {
	switch v := op.(type) {
	case Add[R]:
		return []Expression[R]{v.A, v.B}
	case Sub[R]:
		return []Expression[R]{v.A, v.B}
	case Mul[R]:
		return []Expression[R]{v.A, v.B}
	case Div[R]:
		return []Expression[R]{v.A, v.B}
	case Rem[R]:
		return []Expression[R]{v.A, v.B}
	case Lt[R]:
		return []Expression[R]{v.A, v.B}
	case Leq[R]:
		return []Expression[R]{v.A, v.B}
	case Gt[R]:
		return []Expression[R]{v.A, v.B}
	case Geq[R]:
		return []Expression[R]{v.A, v.B}
	case Eq[R]:
		return []Expression[R]{v.A, v.B}
	case Neq[R]:
		return []Expression[R]{v.A, v.B}
	case Pad[R]:
		return []Expression[R]{v.A}
	case AsUInt[R]:
		return []Expression[R]{v.A}
	case AsSInt[R]:
		return []Expression[R]{v.A}
	case AsClock[R]:
		return []Expression[R]{v.A}
	case AsAsyncReset[R]:
		return []Expression[R]{v.A}
	case AsFixed[R]:
		return []Expression[R]{v.A}
	case Shl[R]:
		return []Expression[R]{v.A}
	case Shr[R]:
		return []Expression[R]{v.A}
	case Dshl[R]:
		return []Expression[R]{v.A, v.B}
	case Dshr[R]:
		return []Expression[R]{v.A, v.B}
	case Cvt[R]:
		return []Expression[R]{v.A}
	case Neg[R]:
		return []Expression[R]{v.A}
	case Not[R]:
		return []Expression[R]{v.A}
	case And[R]:
		return []Expression[R]{v.A, v.B}
	case Or[R]:
		return []Expression[R]{v.A, v.B}
	case Xor[R]:
		return []Expression[R]{v.A, v.B}
	case Andr[R]:
		return []Expression[R]{v.A}
	case Orr[R]:
		return []Expression[R]{v.A}
	case Xorr[R]:
		return []Expression[R]{v.A}
	case Cat[R]:
		return []Expression[R]{v.A, v.B}
	case Bits[R]:
		return []Expression[R]{v.A}
	case Head[R]:
		return []Expression[R]{v.A}
	case Tail[R]:
		return []Expression[R]{v.A}
	case Incp[R]:
		return []Expression[R]{v.A}
	case Decp[R]:
		return []Expression[R]{v.A}
	case Setp[R]:
		return []Expression[R]{v.A}
	default:
		return nil
	}
}
