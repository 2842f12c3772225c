package ast

import (
	"testing"

	"firrtl/types"
)

func TestMemoryTypeProjection(t *testing.T) {
	m := Memory{
		NameValue:   "m",
		DataType:    types.Ground{Type: types.UInt{Width: types.KnownWidth(8)}},
		Depth:       16,
		Ports:       []MemoryPort{{Name: "r", Direction: Read}},
		ReadLatency: 1, WriteLatency: 1,
		ReadUnderWrite: Undefined,
	}
	ty := m.Type().(types.Bundle)
	if len(ty.Fields) != 1 || ty.Fields[0].Name != "r" || ty.Fields[0].Orientation != types.Flipped {
		t.Fatalf("unexpected memory type: %#v", ty)
	}
	port := ty.Fields[0].Type.(types.Bundle)
	addr, ok := types.Field(port, "addr")
	if !ok {
		t.Fatal("missing addr field")
	}
	g, _ := types.GroundTypeOf(addr.Type)
	w, _ := g.(types.UInt).Width.Value()
	if w != 4 {
		t.Fatalf("expected addr width 4 (ceil(log2(16))), got %d", w)
	}
	data, ok := types.Field(port, "data")
	if !ok || data.Orientation != types.Flipped {
		t.Fatal("reader data field should be flipped")
	}
}

func TestModulePortsSortedAndLookup(t *testing.T) {
	m, err := NewModule("Top", Regular, []Port{
		{NameValue: "b", TypeValue: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Direction: Output},
		{NameValue: "a", TypeValue: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Direction: Input},
	}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ports := m.Ports()
	if ports[0].NameValue != "a" || ports[1].NameValue != "b" {
		t.Fatalf("ports not sorted: %v", ports)
	}
	p, ok := m.PortByName("b")
	if !ok || p.Direction != Output {
		t.Fatal("PortByName lookup failed")
	}
}

func TestInstanceTypeMirrorsPortDirection(t *testing.T) {
	sub, err := NewModule("Sub", Regular, []Port{
		{NameValue: "in", TypeValue: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Direction: Input},
		{NameValue: "out", TypeValue: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Direction: Output},
	}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	inst := Instance{NameValue: "i", Target: sub}
	bundle := inst.Type().(types.Bundle)
	inField, _ := types.Field(bundle, "in")
	outField, _ := types.Field(bundle, "out")
	if inField.Orientation != types.Normal {
		t.Fatalf("instance input port should be Normal, got %v", inField.Orientation)
	}
	if outField.Orientation != types.Flipped {
		t.Fatalf("instance output port should be Flipped, got %v", outField.Orientation)
	}
}

func TestCircuitResolvesTop(t *testing.T) {
	top, _ := NewModule("Top", Regular, nil, nil, nil)
	other, _ := NewModule("Other", Regular, nil, nil, nil)
	c, err := NewCircuit("Top", []*Module{top, other}, "Top")
	if err != nil {
		t.Fatal(err)
	}
	if c.Top != top {
		t.Fatal("expected Top to resolve to the named module")
	}
	if _, err := NewCircuit("Top", []*Module{top, other}, "Missing"); err == nil {
		t.Fatal("expected error for unresolved top")
	}
}

func TestRequiredAddressWidthDepthOne(t *testing.T) {
	m := Memory{NameValue: "m", DataType: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Depth: 1, Ports: []MemoryPort{{Name: "r", Direction: Read}}}
	port := m.Type().(types.Bundle).Fields[0].Type.(types.Bundle)
	addr, _ := types.Field(port, "addr")
	g, _ := types.GroundTypeOf(addr.Type)
	w, _ := g.(types.UInt).Width.Value()
	if w != 1 {
		t.Fatalf("expected minimum addr width 1 for depth 1, got %d", w)
	}
}
