package parser

import (
	"strconv"
	"strings"

	"firrtl/ast"
	"firrtl/internal/lexer"
)

// resolverFor adapts a Scope's (Entity, bool) lookup into the (R,
// error) shape Expression wants, so an undefined reference surfaces as
// a positioned parse error instead of a bare boolean.
func resolverFor(p *Parser, scope *Scope) func(string) (ast.Entity, error) {
	return func(name string) (ast.Entity, error) {
		if e, ok := scope.Lookup(name); ok {
			return e, nil
		}
		return nil, p.errf("undefined reference \"" + name + "\"")
	}
}

func parseExpr(p *Parser, scope *Scope) (ast.Expr, error) {
	return Expression[ast.Entity](p, resolverFor(p, scope))
}

// Statements parses a statement sequence at ind, declaring entities
// into a child of parent as they are seen. Returns ok=false (with the
// cursor untouched) when no line satisfies ind at all.
func Statements(p *Parser, parent *Scope, modules map[string]*ast.Module, ind Indentation) ([]ast.Statement, bool, error) {
	scope := NewScope(parent)
	var stmts []ast.Statement
	_, ok, err := p.parseBlock(ind, func(locked Locked) error {
		s, err := parseStatement(p, scope, modules, locked)
		if err != nil {
			return err
		}
		if e, isDecl := ast.DeclaredEntity(s); isDecl {
			scope.Declare(e)
		}
		stmts = append(stmts, s)
		return nil
	})
	return stmts, ok, err
}

func parseStatement(p *Parser, scope *Scope, modules map[string]*ast.Module, locked Locked) (ast.Statement, error) {
	t := p.peek()
	if t.Type == lexer.TokenKeyword {
		switch t.Lexeme {
		case "skip":
			p.advance()
			return ast.EmptyStatement{}, p.expectLineEnd()
		case "wire":
			return wireStmt(p, scope)
		case "reg":
			return regStmt(p, scope)
		case "node":
			return nodeStmt(p, scope)
		case "inst":
			return instStmt(p, scope, modules)
		case "mem":
			return memStmt(p, scope, locked)
		case "cmem":
			return simpleMemStmt(p, scope, ast.Combinatory)
		case "smem":
			return simpleMemStmt(p, scope, ast.Sequential)
		case "attach":
			return attachStmt(p, scope)
		case "when":
			p.advance()
			return parseWhen(p, scope, modules, locked)
		case "stop":
			return stopStmt(p, scope)
		case "printf":
			return printfStmt(p, scope)
		}
	}
	return exprLedStmt(p, scope)
}

func wireStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after wire name"); err != nil {
		return nil, err
	}
	t, err := p.Type()
	if err != nil {
		return nil, err
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	return ast.Declaration{Entity: ast.Wire{NameValue: name, TypeValue: t, Info: info}}, nil
}

func regStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after register name"); err != nil {
		return nil, err
	}
	t, err := p.Type()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ',' before register clock"); err != nil {
		return nil, err
	}
	clock, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	reg := ast.NewRegister(name, t, clock, nil)
	if p.matchKeyword("with") {
		if _, err := p.expectToken(lexer.TokenColon, "expected ':' after 'with'"); err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after 'with:'"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("reset"); err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenFatArrow, "expected '=>' after 'reset'"); err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenLParen, "expected '(' opening reset pair"); err != nil {
			return nil, err
		}
		sig, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenComma, "expected ',' in reset pair"); err != nil {
			return nil, err
		}
		val, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing reset pair"); err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing 'with' clause"); err != nil {
			return nil, err
		}
		reg = reg.WithReset(sig, val)
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	reg.Info = info
	return ast.Declaration{Entity: reg}, nil
}

func nodeStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenEquals, "expected '=' after node name"); err != nil {
		return nil, err
	}
	value, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	node, err := ast.NewNode(name, value, info)
	if err != nil {
		return nil, p.errf("node \"" + name + "\" initializer: " + err.Error())
	}
	return ast.Declaration{Entity: node}, nil
}

func instStmt(p *Parser, scope *Scope, modules map[string]*ast.Module) (ast.Statement, error) {
	p.advance()
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("of"); err != nil {
		return nil, err
	}
	target, err := p.identifier()
	if err != nil {
		return nil, err
	}
	mod, ok := modules[target]
	if !ok {
		return nil, p.errf("unknown module \"" + target + "\" in instance")
	}
	info := p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	return ast.Declaration{Entity: ast.Instance{NameValue: name, Target: mod, Info: info}}, nil
}

func attachStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after 'attach'"); err != nil {
		return nil, err
	}
	var exprs []ast.Expr
	for {
		e, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.matchType(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing 'attach'"); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	return ast.Attach{Exprs: exprs}, nil
}

func parseWhen(p *Parser, scope *Scope, modules map[string]*ast.Module, locked Locked) (ast.Statement, error) {
	cond, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after when condition"); err != nil {
		return nil, err
	}
	p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	thenStmts, _, err := Statements(p, scope, modules, locked.Sub())
	if err != nil {
		return nil, err
	}
	var elseStmts []ast.Statement
	if p.checkKeyword("else") && p.peek().Column == locked.N+1 {
		p.advance()
		if p.matchKeyword("when") {
			nested, err := parseWhen(p, scope, modules, locked)
			if err != nil {
				return nil, err
			}
			elseStmts = []ast.Statement{nested}
		} else {
			if _, err := p.expectToken(lexer.TokenColon, "expected ':' after 'else'"); err != nil {
				return nil, err
			}
			p.maybeInfo()
			if err := p.expectLineEnd(); err != nil {
				return nil, err
			}
			elseStmts, _, err = Statements(p, scope, modules, locked.Sub())
			if err != nil {
				return nil, err
			}
		}
	}
	return ast.Conditional{Cond: cond, When: thenStmts, Else: elseStmts}, nil
}

func stopStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after 'stop'"); err != nil {
		return nil, err
	}
	clock, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	cond, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	codeTok, err := p.expectToken(lexer.TokenDecimal, "expected an exit code")
	if err != nil {
		return nil, err
	}
	code, convErr := strconv.Atoi(codeTok.Lexeme)
	if convErr != nil {
		return nil, p.errf("malformed exit code")
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing 'stop'"); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	return ast.Stop{Clock: clock, Cond: cond, Code: code}, nil
}

func printfStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	p.advance()
	if _, err := p.expectToken(lexer.TokenLParen, "expected '(' after 'printf'"); err != nil {
		return nil, err
	}
	clock, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	cond, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenComma, "expected ','"); err != nil {
		return nil, err
	}
	fmtTok, err := p.expectToken(lexer.TokenRadix, "expected a quoted format string")
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.matchType(lexer.TokenComma) {
		a, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if _, err := p.expectToken(lexer.TokenRParen, "expected ')' closing 'printf'"); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	message, err := parseFormatString(p, fmtTok.Lexeme, args)
	if err != nil {
		return nil, err
	}
	return ast.Print{Clock: clock, Cond: cond, Message: message}, nil
}

// parseFormatString decodes a printf format string's escapes and %
// slots, pairing each slot with the next positional argument.
func parseFormatString(p *Parser, raw string, args []ast.Expr) ([]ast.PrintElement, error) {
	var elements []ast.PrintElement
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			elements = append(elements, ast.Literal{Text: text.String()})
			text.Reset()
		}
	}
	argIdx := 0
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i++
			switch runes[i] {
			case 'n':
				text.WriteByte('\n')
			case 't':
				text.WriteByte('\t')
			case '\\':
				text.WriteByte('\\')
			case '"':
				text.WriteByte('"')
			case '\'':
				text.WriteByte('\'')
			default:
				text.WriteRune(runes[i])
			}
			continue
		}
		if c == '%' && i+1 < len(runes) {
			var format ast.Format
			switch runes[i+1] {
			case 'b':
				format = ast.Binary
			case 'd':
				format = ast.Decimal
			case 'x':
				format = ast.Hexadecimal
			case 'c':
				format = ast.Character
			case '%':
				text.WriteByte('%')
				i++
				continue
			default:
				text.WriteRune(c)
				continue
			}
			i++
			if argIdx >= len(args) {
				return nil, p.errf("printf format string has more slots than arguments")
			}
			flush()
			elements = append(elements, ast.Slot{Value: args[argIdx], Format: format})
			argIdx++
			continue
		}
		text.WriteRune(c)
	}
	flush()
	return elements, nil
}

func exprLedStmt(p *Parser, scope *Scope) (ast.Statement, error) {
	to, err := parseExpr(p, scope)
	if err != nil {
		return nil, err
	}
	switch {
	case p.matchType(lexer.TokenLE):
		from, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
		return ast.Connection{To: to, From: from}, nil
	case p.matchType(lexer.TokenPartial):
		from, err := parseExpr(p, scope)
		if err != nil {
			return nil, err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
		return ast.PartialConnection{To: to, From: from}, nil
	case p.matchKeyword("is"):
		if err := p.expectKeyword("invalid"); err != nil {
			return nil, err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
		return ast.Invalidate{Target: to}, nil
	default:
		return nil, p.errf("expected '<=', '<-', or 'is invalid' after expression")
	}
}
