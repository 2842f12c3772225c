package format

import (
	"fmt"
	"strings"

	"firrtl/expr"
)

// Expression renders e in canonical surface syntax: literals print in
// decimal regardless of how they were originally written, since the
// round-trip law is about reconstructing the same value, not
// preserving the source radix.
func Expression[R expr.Reference](e expr.Expression[R]) string {
	switch v := e.(type) {
	case expr.UIntLiteral:
		return fmt.Sprintf("UInt<%d>(%s)", v.Width, v.Value.String())
	case expr.SIntLiteral:
		return fmt.Sprintf("SInt<%d>(%s)", v.Width, v.Value.String())
	case expr.Ref[R]:
		return v.Ref.Name()
	case expr.SubField[R]:
		return Expression[R](v.Base) + "." + v.Field
	case expr.SubIndex[R]:
		return fmt.Sprintf("%s[%d]", Expression[R](v.Base), v.Index)
	case expr.SubAccess[R]:
		return fmt.Sprintf("%s[%s]", Expression[R](v.Base), Expression[R](v.Index))
	case expr.Mux[R]:
		return fmt.Sprintf("mux(%s, %s, %s)", Expression[R](v.Sel), Expression[R](v.A), Expression[R](v.B))
	case expr.ValidIf[R]:
		return fmt.Sprintf("validif(%s, %s)", Expression[R](v.Sel), Expression[R](v.Value))
	case expr.PrimitiveOp[R]:
		return primitiveOp[R](v.Op)
	default:
		return fmt.Sprintf("<unrenderable expression %T>", e)
	}
}

func primitiveOp[R expr.Reference](op expr.Operation[R]) string {
	name := expr.OperationName[R](op)
	var args []string
	switch v := op.(type) {
	case expr.Add[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Sub[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Mul[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Div[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Rem[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Lt[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Leq[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Gt[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Geq[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Eq[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Neq[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Dshl[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Dshr[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.And[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Or[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Xor[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.Cat[R]:
		args = []string{Expression[R](v.A), Expression[R](v.B)}
	case expr.AsUInt[R]:
		args = []string{Expression[R](v.A)}
	case expr.AsSInt[R]:
		args = []string{Expression[R](v.A)}
	case expr.AsClock[R]:
		args = []string{Expression[R](v.A)}
	case expr.AsAsyncReset[R]:
		args = []string{Expression[R](v.A)}
	case expr.Cvt[R]:
		args = []string{Expression[R](v.A)}
	case expr.Neg[R]:
		args = []string{Expression[R](v.A)}
	case expr.Not[R]:
		args = []string{Expression[R](v.A)}
	case expr.Andr[R]:
		args = []string{Expression[R](v.A)}
	case expr.Orr[R]:
		args = []string{Expression[R](v.A)}
	case expr.Xorr[R]:
		args = []string{Expression[R](v.A)}
	case expr.Pad[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.Width)}
	case expr.Shl[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.Amount)}
	case expr.Shr[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.Amount)}
	case expr.Head[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.N)}
	case expr.Tail[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.N)}
	case expr.Incp[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.N)}
	case expr.Decp[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.N)}
	case expr.Setp[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.N)}
	case expr.AsFixed[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.Point)}
	case expr.Bits[R]:
		args = []string{Expression[R](v.A), fmt.Sprintf("%d", v.Hi), fmt.Sprintf("%d", v.Lo)}
	default:
		return fmt.Sprintf("<unrenderable op %T>", op)
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}
