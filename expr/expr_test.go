package expr

import (
	"math/big"
	"testing"

	"firrtl/types"
)

func u(w uint16) types.Type { return types.Ground{Type: types.UInt{Width: types.KnownWidth(w)}} }

func TestAddWidensByOne(t *testing.T) {
	a := NewUIntLiteral(big.NewInt(1), widthPtr(4))
	b := NewUIntLiteral(big.NewInt(2), widthPtr(4))
	add := PrimitiveOp[NamedRef]{Op: Add[NamedRef]{A: a, B: b}}
	ty, err := TypeOf[NamedRef](add)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Eq(ty, u(5)) {
		t.Fatalf("got %v, want UInt<5>", ty)
	}
	g, _ := types.GroundTypeOf(ty)
	if w, ok := g.(types.UInt); !ok || w.Width != types.KnownWidth(5) {
		t.Fatalf("expected exact width 5, got %v", ty)
	}
}

func TestSubFieldFlowAddsOrientation(t *testing.T) {
	bundleType := types.Bundle{Fields: []types.BundleField{
		{Name: "a", Type: u(1), Orientation: types.Flipped},
		{Name: "b", Type: u(1), Orientation: types.Normal},
	}}
	ref := NamedRef{NameValue: "io", FlowValue: Source, TypeValue: bundleType}
	subA := SubField[NamedRef]{Base: Ref[NamedRef]{Ref: ref}, Field: "a"}
	subB := SubField[NamedRef]{Base: Ref[NamedRef]{Ref: ref}, Field: "b"}

	fa, err := FlowOf[NamedRef](subA)
	if err != nil {
		t.Fatal(err)
	}
	if fa != Sink {
		t.Fatalf("flipped field should flow Sink from a Source base, got %v", fa)
	}
	fb, err := FlowOf[NamedRef](subB)
	if err != nil {
		t.Fatal(err)
	}
	if fb != Source {
		t.Fatalf("normal field should pass through flow, got %v", fb)
	}
}

func TestReferencesOrderedDepthFirst(t *testing.T) {
	r1 := NamedRef{NameValue: "x", FlowValue: Source, TypeValue: u(4)}
	r2 := NamedRef{NameValue: "y", FlowValue: Source, TypeValue: u(4)}
	mux := Mux[NamedRef]{
		Sel: Ref[NamedRef]{Ref: r1},
		A:   Ref[NamedRef]{Ref: r2},
		B:   NewUIntLiteral(big.NewInt(0), widthPtr(1)),
	}
	refs := References[NamedRef](mux)
	if len(refs) != 2 || refs[0].Name() != "x" || refs[1].Name() != "y" {
		t.Fatalf("unexpected reference order: %v", refs)
	}
}

func TestSubIndexOfNonVectorFails(t *testing.T) {
	ref := NamedRef{NameValue: "s", FlowValue: Source, TypeValue: u(4)}
	sub := SubIndex[NamedRef]{Base: Ref[NamedRef]{Ref: ref}, Index: 0}
	if _, err := TypeOf[NamedRef](sub); err == nil {
		t.Fatal("expected type error for sub-index of a ground type")
	}
}

func TestBitsExtraction(t *testing.T) {
	lit := NewUIntLiteral(big.NewInt(255), widthPtr(8))
	bits := PrimitiveOp[NamedRef]{Op: Bits[NamedRef]{A: lit, Hi: 7, Lo: 4}}
	ty, err := TypeOf[NamedRef](bits)
	if err != nil {
		t.Fatal(err)
	}
	if !types.Eq(ty, u(4)) {
		t.Fatalf("got %v, want UInt<4>", ty)
	}
}

func TestInferUIntWidth(t *testing.T) {
	cases := map[int64]uint16{0: 1, 1: 1, 2: 2, 42: 6, 255: 8}
	for v, want := range cases {
		got := inferUIntWidth(big.NewInt(v))
		if got != want {
			t.Errorf("inferUIntWidth(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestInferSIntWidth(t *testing.T) {
	cases := map[int64]uint16{0: 1, 1: 2, -1: 1, -255: 9, 127: 8}
	for v, want := range cases {
		got := inferSIntWidth(big.NewInt(v))
		if got != want {
			t.Errorf("inferSIntWidth(%d) = %d, want %d", v, got, want)
		}
	}
}

func widthPtr(w uint16) *uint16 { return &w }
