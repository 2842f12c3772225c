package parser

import (
	"firrtl/ast"
	"firrtl/internal/lexer"
)

// topLevelChild is the indentation of a circuit's module list and of
// a module's own ports/statements: both sit one level under a parent
// that is always anchored at column 1 (the "circuit" keyword, or a
// module keyword that is itself a topLevelChild of the circuit), so
// both share the same MoreThan(0) lower bound; parseBlock pins it to
// whatever column its first line actually uses.
var topLevelChild = Indentation{Kind: MoreThan, N: 0}

type pendingModule struct {
	module      *ast.Module
	bodyMark    int
	headerCol   int
}

// ParseCircuit parses a complete `circuit name: NL` document: an
// indented list of modules, with the circuit's own name resolved
// against them to select top. Module bodies may instantiate modules
// declared anywhere else in the circuit (forward or backward), so
// parsing happens in two passes: a first pass reads every module's
// signature (name + ports) — giving each a stable *ast.Module an
// Instance can point to — and skips its body without interpreting it;
// a second pass then re-parses every body with the complete module
// table available for `inst ... of ...` resolution.
func ParseCircuit(text string) (*ast.Circuit, error) {
	p := New(text)
	p.skipBlankLines()
	if err := p.expectKeyword("circuit"); err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.TokenColon, "expected ':' after circuit name"); err != nil {
		return nil, err
	}
	p.maybeInfo()
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	modules := map[string]*ast.Module{}
	var order []string
	var pending []pendingModule

	_, ok, err := p.parseBlock(topLevelChild, func(_ Locked) error {
		headerTok := p.peek()
		kind := ast.Regular
		switch {
		case p.matchKeyword("module"):
		case p.matchKeyword("extmodule"):
			kind = ast.External
		default:
			return p.errf("expected 'module' or 'extmodule'")
		}
		modName, err := p.identifier()
		if err != nil {
			return err
		}
		if _, err := p.expectToken(lexer.TokenColon, "expected ':' after module name"); err != nil {
			return err
		}
		info := p.maybeInfo()
		if err := p.expectLineEnd(); err != nil {
			return err
		}
		bodyMark := p.mark()
		ports, err := parsePorts(p)
		if err != nil {
			return err
		}
		if kind == ast.Regular {
			skipIndentedRegion(p, headerTok.Column)
		}
		m, err := ast.NewModule(modName, kind, ports, nil, info)
		if err != nil {
			return p.errf(err.Error())
		}
		if _, dup := modules[modName]; dup {
			return p.errf("duplicate module name \"" + modName + "\"")
		}
		modules[modName] = m
		order = append(order, modName)
		pending = append(pending, pendingModule{module: m, bodyMark: bodyMark, headerCol: headerTok.Column})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.errf("expected an indented list of modules")
	}

	for _, pm := range pending {
		if pm.module.Kind == ast.External {
			continue
		}
		p.reset(pm.bodyMark)
		scope := NewScope(nil)
		for _, port := range pm.module.Ports() {
			scope.Declare(port)
		}
		if _, err := parsePorts(p); err != nil {
			return nil, err
		}
		stmts, _, err := Statements(p, scope, modules, topLevelChild)
		if err != nil {
			return nil, err
		}
		pm.module.Statements = stmts
	}

	var modList []*ast.Module
	for _, n := range order {
		modList = append(modList, modules[n])
	}
	circuit, err := ast.NewCircuit(name, modList, name)
	if err != nil {
		return nil, p.errf(err.Error())
	}
	return circuit, nil
}

// skipIndentedRegion advances the cursor past every line more indented
// than headerCol (ports, statements, and arbitrarily nested when/else
// bodies alike), stopping at the next line at or above headerCol or at
// EOF. It does not interpret the skipped tokens; pass one uses it to
// jump straight to the next module header.
func skipIndentedRegion(p *Parser, headerCol int) {
	for {
		p.skipBlankLines()
		if p.atEnd() || p.peek().Column <= headerCol {
			return
		}
		for !p.atEnd() && p.peek().Type != lexer.TokenNewline {
			p.advance()
		}
		p.matchType(lexer.TokenNewline)
	}
}

// parsePorts parses a module's leading `input|output name: T` lines.
// It stops (without consuming or erroring) at the first line that
// isn't a port, which is either the first statement or the end of the
// module.
func parsePorts(p *Parser) ([]ast.Port, error) {
	var ports []ast.Port
	_, _, err := p.parseBlock(topLevelChild, func(_ Locked) error {
		t := p.peek()
		if t.Type != lexer.TokenKeyword || (t.Lexeme != "input" && t.Lexeme != "output") {
			return errNotAPort
		}
		dir := ast.Input
		if t.Lexeme == "output" {
			dir = ast.Output
		}
		p.advance()
		name, err := p.identifier()
		if err != nil {
			return err
		}
		if _, err := p.expectToken(lexer.TokenColon, "expected ':' after port name"); err != nil {
			return err
		}
		pt, err := p.Type()
		if err != nil {
			return err
		}
		p.maybeInfo()
		if err := p.expectLineEnd(); err != nil {
			return err
		}
		ports = append(ports, ast.Port{NameValue: name, TypeValue: pt, Direction: dir})
		return nil
	})
	if err == errNotAPort {
		return ports, nil
	}
	return ports, err
}

// errNotAPort is a sentinel returned by parsePorts' item callback to
// stop at the first non-port line without treating it as a syntax
// error; it is never returned to a caller outside this file.
var errNotAPort = &portSentinel{}

type portSentinel struct{}

func (*portSentinel) Error() string { return "not a port" }
