package parser

import (
	"strconv"

	"firrtl/internal/lexer"
	"firrtl/types"
)

// Type parses a ground type or bundle, followed by zero or more
// trailing `[n]` vector subscripts.
func (p *Parser) Type() (types.Type, error) {
	var base types.Type
	if p.check(lexer.TokenLBrace) {
		b, err := p.bundleType()
		if err != nil {
			return nil, err
		}
		base = b
	} else {
		g, err := p.GroundType()
		if err != nil {
			return nil, err
		}
		base = types.Ground{Type: g}
	}
	for p.matchType(lexer.TokenLBracket) {
		t, err := p.expectToken(lexer.TokenDecimal, "expected vector size")
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.ParseUint(t.Lexeme, 10, 32)
		if convErr != nil || n >= 1<<16 {
			return nil, p.errf("vector size must be in [0, 2^16)")
		}
		if _, err := p.expectToken(lexer.TokenRBracket, "expected ']' closing vector subscript"); err != nil {
			return nil, err
		}
		base = types.Vector{Base: base, Size: uint16(n)}
	}
	return base, nil
}

func (p *Parser) bundleType() (types.Bundle, error) {
	if _, err := p.expectToken(lexer.TokenLBrace, "expected '{' opening a bundle"); err != nil {
		return types.Bundle{}, err
	}
	var fields []types.BundleField
	seen := map[string]bool{}
	if !p.check(lexer.TokenRBrace) {
		for {
			o := types.Normal
			if p.matchKeyword("flip") {
				o = types.Flipped
			}
			name, err := p.identifier()
			if err != nil {
				return types.Bundle{}, err
			}
			if seen[name] {
				return types.Bundle{}, p.errf("duplicate bundle field name \"" + name + "\"")
			}
			seen[name] = true
			if _, err := p.expectToken(lexer.TokenColon, "expected ':' after bundle field name"); err != nil {
				return types.Bundle{}, err
			}
			ft, err := p.Type()
			if err != nil {
				return types.Bundle{}, err
			}
			fields = append(fields, types.BundleField{Name: name, Type: ft, Orientation: o})
			if !p.matchType(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.expectToken(lexer.TokenRBrace, "expected '}' closing a bundle"); err != nil {
		return types.Bundle{}, err
	}
	return types.Bundle{Fields: fields}, nil
}
