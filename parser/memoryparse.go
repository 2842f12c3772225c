package parser

import (
	"strconv"

	"firrtl/ast"
	"firrtl/internal/lexer"
	"firrtl/types"
)

// memStmt parses a `mem name: NL` block followed by an indented list
// of `field => value` lines. Order is irrelevant; data-type and depth
// are required, everything else defaults.
func memStmt(p *Parser, scope *Scope, locked Locked) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after mem name"); err != nil {
		return nil, err
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	var dataType types.Type
	var haveDataType bool
	var depth uint64
	var haveDepth bool
	var ports []ast.MemoryPort
	var readLatency, writeLatency uint16
	ruw := ast.Undefined

	_, ok, err := p.parseBlock(locked.Sub(), func(_ Locked) error {
		field := p.peek()
		if field.Type != lexer.TokenKeyword {
			return p.errf("expected a mem field name")
		}
		switch field.Lexeme {
		case "data-type":
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			t, err := p.Type()
			if err != nil {
				return err
			}
			dataType, haveDataType = t, true
		case "depth":
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			t, err := p.expectToken(lexer.TokenDecimal, "expected a decimal depth")
			if err != nil {
				return err
			}
			n, convErr := strconv.ParseUint(t.Lexeme, 10, 64)
			if convErr != nil {
				return p.errf("malformed depth")
			}
			depth, haveDepth = n, true
		case "reader", "writer", "readwriter":
			dir := ast.Read
			if field.Lexeme == "writer" {
				dir = ast.Write
			} else if field.Lexeme == "readwriter" {
				dir = ast.ReadWrite
			}
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			portName, err := p.identifier()
			if err != nil {
				return err
			}
			ports = append(ports, ast.MemoryPort{Name: portName, Direction: dir})
		case "read-latency":
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			t, err := p.expectToken(lexer.TokenDecimal, "expected a decimal latency")
			if err != nil {
				return err
			}
			n, convErr := strconv.ParseUint(t.Lexeme, 10, 16)
			if convErr != nil {
				return p.errf("malformed read-latency")
			}
			readLatency = uint16(n)
		case "write-latency":
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			t, err := p.expectToken(lexer.TokenDecimal, "expected a decimal latency")
			if err != nil {
				return err
			}
			n, convErr := strconv.ParseUint(t.Lexeme, 10, 16)
			if convErr != nil {
				return p.errf("malformed write-latency")
			}
			writeLatency = uint16(n)
		case "read-under-write":
			p.advance()
			if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>'"); err != nil {
				return err
			}
			w := p.peek()
			if w.Type != lexer.TokenKeyword {
				return p.errf("expected old/new/undefined")
			}
			switch w.Lexeme {
			case "old":
				ruw = ast.Old
			case "new":
				ruw = ast.New
			case "undefined":
				ruw = ast.Undefined
			default:
				return p.errf("expected old/new/undefined")
			}
			p.advance()
		default:
			return p.errf("unknown mem field \"" + field.Lexeme + "\"")
		}
		return p.expectLineEnd()
	})
	if err != nil {
		return nil, err
	}
	_ = ok
	if !haveDataType {
		return nil, p.errf("mem \"" + name + "\" is missing required field data-type")
	}
	if !haveDepth {
		return nil, p.errf("mem \"" + name + "\" is missing required field depth")
	}
	return ast.Declaration{Entity: ast.Memory{
		NameValue:      name,
		DataType:       dataType,
		Depth:          depth,
		Ports:          ports,
		ReadLatency:    readLatency,
		WriteLatency:   writeLatency,
		ReadUnderWrite: ruw,
		Info:           info,
	}}, nil
}

// simpleMemStmt parses `cmem name: T[depth]` or
// `smem name: T[depth] (old|new|undefined)?`. The trailing `[depth]`
// is parsed as an ordinary vector-type subscript and then reinterpreted:
// the vector's base is the memory's element type, its size the depth.
func simpleMemStmt(p *Parser, scope *Scope, kind ast.SimpleMemoryKind) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after mem name"); err != nil {
		return nil, err
	}
	t, err := p.Type()
	if err != nil {
		return nil, err
	}
	vec, ok := t.(types.Vector)
	if !ok {
		return nil, p.errf("expected a sized vector type (element[depth]) for a simple memory")
	}
	mem := ast.SimpleMemory{NameValue: name, DataType: vec.Base, Depth: uint64(vec.Size), Kind: kind}
	if kind == ast.Sequential && p.matchType(lexer.TokenLParen) {
		w := p.peek()
		if w.Type != lexer.TokenKeyword {
			return nil, p.errf("expected old/new/undefined")
		}
		var ruw ast.ReadUnderWrite
		switch w.Lexeme {
		case "old":
			ruw = ast.Old
		case "new":
			ruw = ast.New
		case "undefined":
			ruw = ast.Undefined
		default:
			return nil, p.errf("expected old/new/undefined")
		}
		p.advance()
		if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing read-under-write annotation"); err != nil {
			return nil, err
		}
		mem = mem.WithReadUnderWrite(ruw)
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	mem.Info = info
	return ast.Declaration{Entity: mem}, nil
}
