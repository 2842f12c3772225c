package parser

import (
	"strconv"

	"firrtl/internal/lexer"
	"firrtl/types"
)

// parseWidth parses an optional `<n>` bit-width suffix.
func (p *Parser) parseWidth() (types.BitWidth, error) {
	if !p.matchType(lexer.TokenLAngle) {
		return types.UnknownWidth(), nil
	}
	t, err := p.expectToken(lexer.TokenDecimal, "expected decimal bit width")
	if err != nil {
		return types.BitWidth{}, err
	}
	n, convErr := strconv.ParseUint(t.Lexeme, 10, 64)
	if convErr != nil || n == 0 || n > types.MaxBitWidth {
		return types.BitWidth{}, p.errf("bit width must be a positive integer at most 2^16-1")
	}
	if _, err := p.expectToken(lexer.TokenRAngle, "expected '>' closing bit width"); err != nil {
		return types.BitWidth{}, err
	}
	return types.KnownWidth(uint16(n)), nil
}

// parsePoint parses an optional `<<offset>>` Fixed binary-point suffix.
func (p *Parser) parsePoint() (*int16, error) {
	if !p.matchType(lexer.TokenShl) {
		return nil, nil
	}
	t, err := p.expectToken(lexer.TokenDecimal, "expected decimal binary point offset")
	if err != nil {
		return nil, err
	}
	n, convErr := strconv.ParseInt(t.Lexeme, 10, 16)
	if convErr != nil {
		return nil, p.errf("binary point offset out of range")
	}
	if _, err := p.expectToken(lexer.TokenShr, "expected '>>' closing binary point"); err != nil {
		return nil, err
	}
	v := int16(n)
	return &v, nil
}

// GroundType parses one of UInt/SInt/Fixed/Clock/Reset/AsyncReset/Analog.
func (p *Parser) GroundType() (types.GroundType, error) {
	t := p.peek()
	if t.Type != lexer.TokenKeyword {
		return nil, p.errf("expected a ground type keyword")
	}
	switch t.Lexeme {
	case "UInt":
		p.advance()
		w, err := p.parseWidth()
		if err != nil {
			return nil, err
		}
		return types.UInt{Width: w}, nil
	case "SInt":
		p.advance()
		w, err := p.parseWidth()
		if err != nil {
			return nil, err
		}
		return types.SInt{Width: w}, nil
	case "Fixed":
		p.advance()
		w, err := p.parseWidth()
		if err != nil {
			return nil, err
		}
		pt, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		return types.Fixed{Width: w, Point: pt}, nil
	case "Clock":
		p.advance()
		return types.ClockType{}, nil
	case "Reset":
		p.advance()
		return types.ResetType{Kind: types.RegularReset}, nil
	case "AsyncReset":
		p.advance()
		return types.ResetType{Kind: types.AsyncReset}, nil
	case "Analog":
		p.advance()
		w, err := p.parseWidth()
		if err != nil {
			return nil, err
		}
		return types.Analog{Width: w}, nil
	default:
		return nil, p.errf("expected a ground type keyword")
	}
}
