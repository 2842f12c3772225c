package parser

import (
	"strconv"

	"firrtl/expr"
	"firrtl/internal/lexer"
)

// primitiveExpr parses `name(arg, arg, ...)` into the matching
// PrimitiveOp variant. The argument shapes vary by operator: plain
// binary/unary operand lists, or operand lists trailed by one or more
// uint/int literals (pad, shl, shr, bits, head, tail, incp, decp,
// setp, asFixed).
func primitiveExpr[R expr.Reference](p *Parser, resolve func(name string) (R, error)) (expr.Expression[R], error) {
	name := p.advance().Lexeme
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after "+name); err != nil {
		return nil, err
	}

	binary := func() (Expression2[R], error) {
		a, err := Expression[R](p, resolve)
		if err != nil {
			return Expression2[R]{}, err
		}
		if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
			return Expression2[R]{}, err
		}
		b, err := Expression[R](p, resolve)
		if err != nil {
			return Expression2[R]{}, err
		}
		return Expression2[R]{A: a, B: b}, nil
	}
	unary := func() (expr.Expression[R], error) {
		return Expression[R](p, resolve)
	}
	closeParen := func() error {
		_, err := p.expectToken(lexer.TokenRParen, "expected ')' closing "+name)
		return err
	}
	uintArg := func() (uint16, error) {
		if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
			return 0, err
		}
		t, err := p.expectToken(lexer.TokenDecimal, "expected an integer literal")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseUint(t.Lexeme, 10, 16)
		if convErr != nil {
			return 0, p.errf("integer argument out of range")
		}
		return uint16(n), nil
	}
	intArg := func() (int16, error) {
		if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
			return 0, err
		}
		t, err := p.expectToken(lexer.TokenDecimal, "expected an integer literal")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseInt(t.Lexeme, 10, 16)
		if convErr != nil {
			return 0, p.errf("integer argument out of range")
		}
		return int16(n), nil
	}

	var result expr.Expression[R]
	switch name {
	case "add":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Add[R]{A: ab.A, B: ab.B}}
	case "sub":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Sub[R]{A: ab.A, B: ab.B}}
	case "mul":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Mul[R]{A: ab.A, B: ab.B}}
	case "div":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Div[R]{A: ab.A, B: ab.B}}
	case "rem":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Rem[R]{A: ab.A, B: ab.B}}
	case "lt":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Lt[R]{A: ab.A, B: ab.B}}
	case "leq":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Leq[R]{A: ab.A, B: ab.B}}
	case "gt":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Gt[R]{A: ab.A, B: ab.B}}
	case "geq":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Geq[R]{A: ab.A, B: ab.B}}
	case "eq":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Eq[R]{A: ab.A, B: ab.B}}
	case "neq":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Neq[R]{A: ab.A, B: ab.B}}
	case "dshl":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Dshl[R]{A: ab.A, B: ab.B}}
	case "dshr":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Dshr[R]{A: ab.A, B: ab.B}}
	case "and":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.And[R]{A: ab.A, B: ab.B}}
	case "or":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Or[R]{A: ab.A, B: ab.B}}
	case "xor":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Xor[R]{A: ab.A, B: ab.B}}
	case "cat":
		ab, err := binary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Cat[R]{A: ab.A, B: ab.B}}
	case "asUInt":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.AsUInt[R]{A: a}}
	case "asSInt":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.AsSInt[R]{A: a}}
	case "asClock":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.AsClock[R]{A: a}}
	case "asAsyncReset":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.AsAsyncReset[R]{A: a}}
	case "cvt":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Cvt[R]{A: a}}
	case "neg":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Neg[R]{A: a}}
	case "not":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Not[R]{A: a}}
	case "andr":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Andr[R]{A: a}}
	case "orr":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Orr[R]{A: a}}
	case "xorr":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Xorr[R]{A: a}}
	case "pad":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		w, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Pad[R]{A: a, Width: w}}
	case "shl":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Shl[R]{A: a, Amount: n}}
	case "shr":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Shr[R]{A: a, Amount: n}}
	case "head":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Head[R]{A: a, N: n}}
	case "tail":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Tail[R]{A: a, N: n}}
	case "incp":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Incp[R]{A: a, N: n}}
	case "decp":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Decp[R]{A: a, N: n}}
	case "setp":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Setp[R]{A: a, N: n}}
	case "asFixed":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		n, err := intArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.AsFixed[R]{A: a, Point: n}}
	case "bits":
		a, err := unary()
		if err != nil {
			return nil, err
		}
		hi, err := uintArg()
		if err != nil {
			return nil, err
		}
		lo, err := uintArg()
		if err != nil {
			return nil, err
		}
		result = expr.PrimitiveOp[R]{Op: expr.Bits[R]{A: a, Hi: hi, Lo: lo}}
	default:
		return nil, p.errf("unknown primitive operation \"" + name + "\"")
	}
	if err := closeParen(); err != nil {
		return nil, err
	}
	return result, nil
}

// Expression2 bundles a parsed binary operand pair.
type Expression2[R expr.Reference] struct {
	A, B expr.Expression[R]
}
