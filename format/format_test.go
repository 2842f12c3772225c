package format_test

import (
	"testing"

	"firrtl/format"
	"firrtl/parser"
)

func roundTrip(t *testing.T, src string) string {
	t.Helper()
	c, err := parser.ParseCircuit(src)
	if err != nil {
		t.Fatalf("ParseCircuit(%q): %v", src, err)
	}
	out := format.Circuit(c)
	c2, err := parser.ParseCircuit(out)
	if err != nil {
		t.Fatalf("ParseCircuit(display(x)) failed: %v\ndisplay:\n%s", err, out)
	}
	if c2.Name() != c.Name() || len(c2.Modules()) != len(c.Modules()) {
		t.Fatalf("round trip changed circuit shape:\n%s", out)
	}
	return out
}

func TestRoundTripConnect(t *testing.T) {
	src := "circuit Top:\n  module Top:\n    input a: UInt<1>\n    output b: UInt<1>\n    b <= a\n"
	roundTrip(t, src)
}

func TestRoundTripWhenElseWhen(t *testing.T) {
	src := "circuit C:\n  module C:\n    input cond: UInt<1>\n    input other: UInt<1>\n    input b: UInt<1>\n    input c: UInt<1>\n    wire a: UInt<1>\n    when cond:\n      a <= b\n    else when other:\n      a <= c\n"
	roundTrip(t, src)
}

func TestRoundTripInstance(t *testing.T) {
	src := "circuit C:\n  module Leaf:\n    input x: UInt<1>\n    output y: UInt<1>\n    y <= x\n  module C:\n    input x: UInt<1>\n    output y: UInt<1>\n    inst leaf of Leaf\n    leaf.x <= x\n    y <= leaf.y\n"
	out := roundTrip(t, src)
	c2, err := parser.ParseCircuit(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	top, _ := c2.ModuleByName("C")
	refs := top.ReferencedModules()
	if len(refs) != 1 || refs[0].Name() != "Leaf" {
		t.Fatalf("expected Leaf referenced once, got %v", refs)
	}
}

func TestRoundTripMem(t *testing.T) {
	src := "circuit C:\n  module C:\n    mem m:\n      data-type => UInt<8>\n      depth => 16\n      reader => r\n      read-latency => 1\n      write-latency => 1\n      read-under-write => undefined\n"
	roundTrip(t, src)
}

func TestRoundTripPrintf(t *testing.T) {
	src := "circuit C:\n  module C:\n    input clk: Clock\n    input en: UInt<1>\n    input v: UInt<8>\n    printf(clk, en, \"val = %d\\n\", v)\n"
	roundTrip(t, src)
}
