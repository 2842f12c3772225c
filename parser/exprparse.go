package parser

import (
	"math/big"

	"firrtl/expr"
	"firrtl/internal/lexer"
)

// primitiveOpNames lists every primitive operation's surface-syntax
// keyword, used to recognise `name(` as the start of a PrimitiveOp.
var primitiveOpNames = map[string]bool{
	"add": true, "sub": true, "mul": true, "div": true, "rem": true,
	"lt": true, "leq": true, "gt": true, "geq": true, "eq": true, "neq": true,
	"pad": true,
	"asUInt": true, "asSInt": true, "asClock": true, "asAsyncReset": true, "asFixed": true,
	"shl": true, "shr": true, "dshl": true, "dshr": true,
	"cvt": true, "neg": true, "not": true,
	"and": true, "or": true, "xor": true,
	"andr": true, "orr": true, "xorr": true,
	"cat": true, "bits": true, "head": true, "tail": true,
	"incp": true, "decp": true, "setp": true,
}

// Expression parses a full expression (a primary alternative followed
// by a left-fold of `.field`, `[n]`, `[expr]` subscripts) against a
// reference resolver: resolve turns a bare identifier into the
// concrete Reference type R the caller is parsing with — shared
// ast.Entity handles inside a module scope, or a bare expr.NamedRef
// for isolated expression parsing.
func Expression[R expr.Reference](p *Parser, resolve func(name string) (R, error)) (expr.Expression[R], error) {
	base, err := primaryExpr[R](p, resolve)
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchType(lexer.TokenDot):
			name, err := p.identifier()
			if err != nil {
				return nil, err
			}
			base = expr.SubField[R]{Base: base, Field: name}
		case p.matchType(lexer.TokenLBracket):
			if p.check(lexer.TokenDecimal) {
				t := p.advance()
				n, convErr := parseUint16(t.Lexeme)
				if convErr != nil {
					return nil, p.errf("expected vector index")
				}
				if _, err := p.expectToken(lexer.TokenRBracket, "expected ']' closing index"); err != nil {
					return nil, err
				}
				base = expr.SubIndex[R]{Base: base, Index: n}
			} else {
				idx, err := Expression[R](p, resolve)
				if err != nil {
					return nil, err
				}
				if _, err := p.expectToken(lexer.TokenRBracket, "expected ']' closing dynamic index"); err != nil {
					return nil, err
				}
				base = expr.SubAccess[R]{Base: base, Index: idx}
			}
		default:
			return base, nil
		}
	}
}

func primaryExpr[R expr.Reference](p *Parser, resolve func(name string) (R, error)) (expr.Expression[R], error) {
	t := p.peek()
	switch {
	case t.Type == lexer.TokenIdent:
		p.advance()
		ref, err := resolve(t.Lexeme)
		if err != nil {
			return nil, err
		}
		return expr.Ref[R]{Ref: ref}, nil
	case t.Type == lexer.TokenKeyword && (t.Lexeme == "UInt" || t.Lexeme == "SInt"):
		return literalExpr[R](p)
	case t.Type == lexer.TokenKeyword && t.Lexeme == "mux":
		return muxExpr[R](p, resolve)
	case t.Type == lexer.TokenKeyword && t.Lexeme == "validif":
		return validIfExpr[R](p, resolve)
	case t.Type == lexer.TokenKeyword && primitiveOpNames[t.Lexeme]:
		return primitiveExpr[R](p, resolve)
	default:
		return nil, p.errf("expected an expression")
	}
}

func literalExpr[R expr.Reference](p *Parser) (expr.Expression[R], error) {
	signed := p.peek().Lexeme == "SInt"
	p.advance()
	width, err := p.parseWidth()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after literal type"); err != nil {
		return nil, err
	}
	t := p.peek()
	var value *big.Int
	switch t.Type {
	case lexer.TokenDecimal:
		p.advance()
		v, convErr := parseDecimalString(t.Lexeme)
		if convErr != nil {
			return nil, p.errf("malformed decimal literal")
		}
		value = v
	case lexer.TokenRadix:
		p.advance()
		v, convErr := parseRadixString(t.Lexeme)
		if convErr != nil {
			return nil, p.errf("malformed radix literal")
		}
		value = v
	default:
		return nil, p.errf("expected a numeric literal")
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing literal"); err != nil {
		return nil, err
	}
	var w uint16
	known := width.IsKnown()
	if known {
		w, _ = width.Value()
	}
	if signed {
		if !known {
			return expr.NewSIntLiteral(value, nil), nil
		}
		return expr.SIntLiteral{Value: value, Width: w}, nil
	}
	if !known {
		return expr.NewUIntLiteral(value, nil), nil
	}
	return expr.UIntLiteral{Value: value, Width: w}, nil
}

func muxExpr[R expr.Reference](p *Parser, resolve func(name string) (R, error)) (expr.Expression[R], error) {
	p.advance()
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after mux"); err != nil {
		return nil, err
	}
	sel, err := Expression[R](p, resolve)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	a, err := Expression[R](p, resolve)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	b, err := Expression[R](p, resolve)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing mux"); err != nil {
		return nil, err
	}
	return expr.Mux[R]{Sel: sel, A: a, B: b}, nil
}

func validIfExpr[R expr.Reference](p *Parser, resolve func(name string) (R, error)) (expr.Expression[R], error) {
	p.advance()
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after validif"); err != nil {
		return nil, err
	}
	sel, err := Expression[R](p, resolve)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	value, err := Expression[R](p, resolve)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing validif"); err != nil {
		return nil, err
	}
	return expr.ValidIf[R]{Sel: sel, Value: value}, nil
}

func parseUint16(s string) (uint16, error) {
	n, err := parseDecimalString(s)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() || n.Uint64() > 0xFFFF {
		return 0, errBadNumeral
	}
	return uint16(n.Uint64()), nil
}
