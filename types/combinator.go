package types

// Combinator attempts to combine two values of T into one, FIRRTL's
// abstraction for width- and type-combination rules used by mux and
// the primitive-op catalog.
type Combinator[T any] interface {
	Combine(a, b T) (T, bool)
}

// FnWidth lifts a plain width-combining function into a Combinator
// over BitWidth: unknown propagates, known widths combine via f.
// Width combination never fails.
type FnWidth func(a, b uint16) uint16

// Combine applies f to two known widths, or propagates Unknown if
// either side is unknown.
func (f FnWidth) Combine(a, b BitWidth) (BitWidth, bool) {
	aw, aok := a.Value()
	bw, bok := b.Value()
	if !aok || !bok {
		return UnknownWidth(), true
	}
	return KnownWidth(f(aw, bw)), true
}

func maxWidth(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}

// MaxWidthFn is the width combinator used by MaxWidth for non-Fixed
// ground types: the larger of the two known widths.
var MaxWidthFn FnWidth = maxWidth

// GroundCombinator lifts a BitWidth Combinator to GroundType: identical
// ground variants combine their widths; mismatched variants fail;
// Clock-Clock yields Clock; Fixed is delegated to a dedicated
// combinator since it also carries a binary-point offset.
type GroundCombinator struct {
	Width Combinator[BitWidth]
	Fixed Combinator[Fixed]
}

// Combine implements the lifted ground-type combination rule.
func (g GroundCombinator) Combine(a, b GroundType) (GroundType, bool) {
	if !SameVariant(a, b) {
		return nil, false
	}
	switch av := a.(type) {
	case UInt:
		bv := b.(UInt)
		w, ok := g.Width.Combine(av.Width, bv.Width)
		return UInt{Width: w}, ok
	case SInt:
		bv := b.(SInt)
		w, ok := g.Width.Combine(av.Width, bv.Width)
		return SInt{Width: w}, ok
	case Analog:
		bv := b.(Analog)
		w, ok := g.Width.Combine(av.Width, bv.Width)
		return Analog{Width: w}, ok
	case ClockType:
		return ClockType{}, true
	case ResetType:
		bv := b.(ResetType)
		if av.Kind != bv.Kind {
			return nil, false
		}
		return ResetType{Kind: av.Kind}, true
	case Fixed:
		bv := b.(Fixed)
		if g.Fixed != nil {
			return g.Fixed.Combine(av, bv)
		}
		return combineFixedGeneric(g.Width, av, bv)
	default:
		return nil, false
	}
}

func combineFixedGeneric(width Combinator[BitWidth], a, b Fixed) (GroundType, bool) {
	w, ok := width.Combine(a.Width, b.Width)
	if !ok {
		return nil, false
	}
	if a.Point == nil || b.Point == nil || *a.Point != *b.Point {
		return Fixed{Width: w}, true
	}
	p := *a.Point
	return Fixed{Width: w, Point: &p}, true
}

// maxWidthFixed is the Combinator[Fixed] used by MaxWidth: it computes
// max(lw-lp, rw-rp) + max(lp, rp) in widened arithmetic and clamps to
// the BitWidth range, falling back to Unknown on overflow or when
// either side's width or point is unknown.
type maxWidthFixed struct{}

func (maxWidthFixed) Combine(a, b Fixed) (Fixed, bool) {
	aw, aok := a.Width.Value()
	bw, bok := b.Width.Value()
	if !aok || !bok || a.Point == nil || b.Point == nil {
		return Fixed{Width: UnknownWidth()}, true
	}
	lp, rp := int64(*a.Point), int64(*b.Point)
	lw, rw := int64(aw), int64(bw)

	maxPoint := lp
	if rp > maxPoint {
		maxPoint = rp
	}
	diffMax := lw - lp
	if d := rw - rp; d > diffMax {
		diffMax = d
	}
	combined := diffMax + maxPoint
	if combined <= 0 || combined > MaxBitWidth {
		return Fixed{Width: UnknownWidth()}, true
	}
	p := int16(maxPoint)
	return Fixed{Width: KnownWidth(uint16(combined)), Point: &p}, true
}

// MaxWidth is the width-combination Combinator over GroundType used by
// mux and comparable primitive ops: the wider of two known widths for
// plain ground types, and the Fixed-aware formula above for Fixed.
var MaxWidth = GroundCombinator{Width: MaxWidthFn, Fixed: maxWidthFixed{}}
