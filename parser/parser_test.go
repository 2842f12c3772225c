package parser

import (
	"testing"

	"firrtl/ast"
	"firrtl/types"
)

func TestParseCircuitConnectExample(t *testing.T) {
	src := "circuit Top:\n  module Top:\n    input a: UInt<1>\n    output b: UInt<1>\n    b <= a\n"
	c, err := ParseCircuit(src)
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	if c.Name() != "Top" {
		t.Fatalf("circuit name = %q, want Top", c.Name())
	}
	top, ok := c.ModuleByName("Top")
	if !ok || top != c.Top {
		t.Fatalf("top module not resolved correctly")
	}
	a, ok := top.PortByName("a")
	if !ok || a.Direction != ast.Input {
		t.Fatalf("port a missing or wrong direction")
	}
	b, ok := top.PortByName("b")
	if !ok || b.Direction != ast.Output {
		t.Fatalf("port b missing or wrong direction")
	}
	if len(top.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(top.Statements))
	}
	conn, ok := top.Statements[0].(ast.Connection)
	if !ok {
		t.Fatalf("expected a Connection statement, got %T", top.Statements[0])
	}
	if conn.To == nil || conn.From == nil {
		t.Fatalf("connection endpoints missing")
	}
}

func TestParseMemExample(t *testing.T) {
	src := "circuit C:\n  module C:\n    mem m:\n      data-type => UInt<8>\n      depth => 16\n      reader => r\n      read-latency => 1\n      write-latency => 1\n      read-under-write => undefined\n"
	c, err := ParseCircuit(src)
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	mod, _ := c.ModuleByName("C")
	if len(mod.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Statements))
	}
	decl, ok := mod.Statements[0].(ast.Declaration)
	if !ok {
		t.Fatalf("expected a Declaration, got %T", mod.Statements[0])
	}
	mem, ok := decl.Entity.(ast.Memory)
	if !ok {
		t.Fatalf("expected a Memory entity, got %T", decl.Entity)
	}
	if mem.Depth != 16 || len(mem.Ports) != 1 || mem.Ports[0].Name != "r" {
		t.Fatalf("unexpected memory shape: %+v", mem)
	}
	bundle, ok := mem.Type().(types.Bundle)
	if !ok || len(bundle.Fields) != 1 {
		t.Fatalf("expected a single-field bundle type")
	}
	portType, ok := bundle.Fields[0].Type.(types.Bundle)
	if !ok {
		t.Fatalf("expected port type to be a bundle")
	}
	addr, ok := types.Field(portType, "addr")
	if !ok {
		t.Fatalf("expected an addr field")
	}
	g, ok := types.GroundTypeOf(addr.Type)
	if !ok {
		t.Fatalf("addr field is not ground")
	}
	u, ok := g.(types.UInt)
	if !ok {
		t.Fatalf("addr field is not UInt")
	}
	w, known := u.Width.Value()
	if !known || w != 4 {
		t.Fatalf("addr width = %v (known=%v), want 4", w, known)
	}
}

func TestParseWhenElseWhenExample(t *testing.T) {
	src := "circuit C:\n  module C:\n    input cond: UInt<1>\n    input other: UInt<1>\n    input b: UInt<1>\n    input c: UInt<1>\n    wire a: UInt<1>\n    when cond:\n      a <= b\n    else when other:\n      a <= c\n"
	mod, err := parseSingleModule(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var cond ast.Statement
	for _, s := range mod.Statements {
		if _, ok := s.(ast.Conditional); ok {
			cond = s
		}
	}
	c, ok := cond.(ast.Conditional)
	if !ok {
		t.Fatalf("expected a top-level Conditional")
	}
	if len(c.Else) != 1 {
		t.Fatalf("expected a single nested else statement, got %d", len(c.Else))
	}
	if _, ok := c.Else[0].(ast.Conditional); !ok {
		t.Fatalf("expected nested else to be a Conditional, got %T", c.Else[0])
	}
}

func parseSingleModule(src string) (*ast.Module, error) {
	c, err := ParseCircuit(src)
	if err != nil {
		return nil, err
	}
	return c.Top, nil
}

func TestParseRadixNegativeHex(t *testing.T) {
	p := New("\"h-ff\"")
	v, err := parseRadixString(p.peek().Lexeme)
	if err != nil {
		t.Fatalf("parseRadixString: %v", err)
	}
	if v.Int64() != -255 {
		t.Fatalf("got %v, want -255", v.Int64())
	}
}

func TestParseInstance(t *testing.T) {
	src := "circuit C:\n  module Leaf:\n    input x: UInt<1>\n    output y: UInt<1>\n    y <= x\n  module C:\n    input x: UInt<1>\n    output y: UInt<1>\n    inst leaf of Leaf\n    leaf.x <= x\n    y <= leaf.y\n"
	c, err := ParseCircuit(src)
	if err != nil {
		t.Fatalf("ParseCircuit: %v", err)
	}
	top, _ := c.ModuleByName("C")
	refs := top.ReferencedModules()
	if len(refs) != 1 || refs[0].Name() != "Leaf" {
		t.Fatalf("expected Leaf to be referenced once, got %v", refs)
	}
}
