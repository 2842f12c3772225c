package types

import (
	"math/rand"
	"testing"
	"testing/quick"
)

func u(w uint16) BitWidth { return KnownWidth(w) }

func TestIsPassiveOrientNormal(t *testing.T) {
	gen := func(rnd *rand.Rand) Type { return randomType(rnd, 3) }
	prop := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		ty := gen(rnd)
		return IsPassive(ty) == IsPassive(Type(orientedToType(Orient(ty, Normal))))
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestOrientFlipCommutesWithFlip(t *testing.T) {
	prop := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		ty := randomType(rnd, 3)
		lhs := Orient(ty, Normal.Add(Flipped))
		rhs := Orient(Flip(ty), Normal)
		return orientedEq(lhs, rhs)
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestMaxWidthFixedCommutative(t *testing.T) {
	cases := []struct{ lw, lp, rw, rp int16 }{
		{8, 2, 8, 2},
		{10, 3, 6, 1},
		{4, -2, 4, 2},
	}
	for _, c := range cases {
		a := Fixed{Width: u(uint16(c.lw)), Point: &c.lp}
		b := Fixed{Width: u(uint16(c.rw)), Point: &c.rp}
		ab, _ := MaxWidth.Combine(a, b)
		ba, _ := MaxWidth.Combine(b, a)
		if !groundEq(ab, ba) {
			t.Errorf("MaxWidth not commutative for %v, %v: %v vs %v", a, b, ab, ba)
		}
	}
}

func TestEqIgnoresWidth(t *testing.T) {
	a := Ground{Type: UInt{Width: u(4)}}
	b := Ground{Type: UInt{Width: u(8)}}
	if !Eq(a, b) {
		t.Error("expected Eq to ignore width")
	}
}

func TestWeakEqNormalisesOrientation(t *testing.T) {
	bundle := Bundle{Fields: []BundleField{
		{Name: "a", Type: Ground{Type: UInt{Width: u(1)}}, Orientation: Flipped},
	}}
	normal := Bundle{Fields: []BundleField{
		{Name: "a", Type: Ground{Type: UInt{Width: u(1)}}, Orientation: Normal},
	}}
	if Eq(bundle, normal) {
		t.Error("Eq should distinguish orientation")
	}
	if !WeakEq(bundle, normal) {
		t.Error("WeakEq should ignore orientation")
	}
}

func TestRequiredAddressWidth(t *testing.T) {
	cases := map[uint64]uint16{1: 1, 2: 1, 3: 2, 16: 4, 17: 5, 256: 8}
	for depth, want := range cases {
		if got := RequiredAddressWidth(depth); got != want {
			t.Errorf("RequiredAddressWidth(%d) = %d, want %d", depth, got, want)
		}
	}
}

// --- generators and structural helpers for property tests ---

func randomType(rnd *rand.Rand, depth int) Type {
	if depth <= 0 || rnd.Intn(3) == 0 {
		return Ground{Type: randomGround(rnd)}
	}
	switch rnd.Intn(2) {
	case 0:
		return Vector{Base: randomType(rnd, depth-1), Size: uint16(rnd.Intn(4) + 1)}
	default:
		n := rnd.Intn(3) + 1
		fields := make([]BundleField, n)
		for i := range fields {
			o := Normal
			if rnd.Intn(2) == 1 {
				o = Flipped
			}
			fields[i] = BundleField{Name: letterName(i), Type: randomType(rnd, depth-1), Orientation: o}
		}
		return Bundle{Fields: fields}
	}
}

func letterName(i int) string { return string(rune('a' + i%26)) }

func randomGround(rnd *rand.Rand) GroundType {
	switch rnd.Intn(4) {
	case 0:
		return UInt{Width: u(uint16(rnd.Intn(30) + 1))}
	case 1:
		return SInt{Width: u(uint16(rnd.Intn(30) + 1))}
	case 2:
		return ClockType{}
	default:
		return Analog{Width: u(uint16(rnd.Intn(30) + 1))}
	}
}

func orientedToType(t OrientedType) Type {
	switch v := t.(type) {
	case OrientedGround:
		return Ground{Type: v.Type}
	case OrientedVector:
		return Vector{Base: orientedToType(v.Base), Size: v.Size}
	case OrientedBundle:
		fields := make([]BundleField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = BundleField{Name: f.Name, Type: orientedToType(f.Type), Orientation: Normal}
		}
		return Bundle{Fields: fields}
	default:
		panic("unreachable")
	}
}

func orientedEq(a, b OrientedType) bool {
	switch av := a.(type) {
	case OrientedGround:
		bv, ok := b.(OrientedGround)
		return ok && SameVariant(av.Type, bv.Type) && av.Orientation == bv.Orientation
	case OrientedVector:
		bv, ok := b.(OrientedVector)
		return ok && av.Size == bv.Size && orientedEq(av.Base, bv.Base)
	case OrientedBundle:
		bv, ok := b.(OrientedBundle)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i, f := range av.Fields {
			if f.Name != bv.Fields[i].Name || !orientedEq(f.Type, bv.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func groundEq(a, b GroundType) bool {
	if !SameVariant(a, b) {
		return false
	}
	af, aok := a.(Fixed)
	bf, bok := b.(Fixed)
	if aok && bok {
		aw, _ := af.Width.Value()
		bw, _ := bf.Width.Value()
		if af.Width.IsKnown() != bf.Width.IsKnown() || aw != bw {
			return false
		}
		if (af.Point == nil) != (bf.Point == nil) {
			return false
		}
		return af.Point == nil || *af.Point == *bf.Point
	}
	return true
}
