// Package types implements FIRRTL's type system: ground types, the
// vector/bundle aggregate shapes, the orientation (flip) discipline,
// and structural equivalence.
package types

import "strings"

// Type is a FIRRTL type: a ground leaf, a homogeneous vector, or an
// ordered bundle of named, oriented fields.
type Type interface {
	isType()
	String() string
}

// Ground wraps a GroundType as a Type.
type Ground struct{ Type GroundType }

// Vector is a fixed-size homogeneous aggregate.
type Vector struct {
	Base Type
	Size uint16
}

// Bundle is an ordered collection of named, oriented fields. Field
// order is part of the bundle's structural identity.
type Bundle struct{ Fields []BundleField }

// BundleField is one member of a Bundle.
type BundleField struct {
	Name        string
	Type        Type
	Orientation Orientation
}

func (Ground) isType() {}
func (Vector) isType() {}
func (Bundle) isType() {}

func (t Ground) String() string { return t.Type.String() }

func (t Vector) String() string {
	return fieldTypeString(t.Base) + bracket(t.Size)
}

func (t Bundle) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.Orientation == Flipped {
			b.WriteString("flip ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}

func fieldTypeString(t Type) string { return t.String() }

func bracket(n uint16) string {
	return "[" + itoa(n) + "]"
}

func itoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// GroundTypeOf returns the GroundType of t when t is a Ground type.
func GroundTypeOf(t Type) (GroundType, bool) {
	g, ok := t.(Ground)
	if !ok {
		return nil, false
	}
	return g.Type, true
}

// VectorBase returns the element type of t when t is a Vector.
func VectorBase(t Type) (Type, bool) {
	v, ok := t.(Vector)
	if !ok {
		return nil, false
	}
	return v.Base, true
}

// Field returns the named field of t when t is a Bundle and has it.
func Field(t Type, name string) (BundleField, bool) {
	b, ok := t.(Bundle)
	if !ok {
		return BundleField{}, false
	}
	for _, f := range b.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return BundleField{}, false
}

// IsPassive reports whether t contains no Flipped bundle field at any
// depth.
func IsPassive(t Type) bool {
	switch v := t.(type) {
	case Ground:
		return true
	case Vector:
		return IsPassive(v.Base)
	case Bundle:
		for _, f := range v.Fields {
			if f.Orientation == Flipped {
				return false
			}
			if !IsPassive(f.Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Eq reports structural equivalence: same shape, same ground variant,
// matching field names and orientations. Widths and Fixed point
// offsets are ignored.
func Eq(a, b Type) bool {
	switch av := a.(type) {
	case Ground:
		bv, ok := b.(Ground)
		return ok && SameVariant(av.Type, bv.Type) && sameResetKind(av.Type, bv.Type)
	case Vector:
		bv, ok := b.(Vector)
		return ok && av.Size == bv.Size && Eq(av.Base, bv.Base)
	case Bundle:
		bv, ok := b.(Bundle)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i, f := range av.Fields {
			g := bv.Fields[i]
			if f.Name != g.Name || f.Orientation != g.Orientation || !Eq(f.Type, g.Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sameResetKind(a, b GroundType) bool {
	ar, aok := a.(ResetType)
	br, bok := b.(ResetType)
	if aok != bok {
		return false
	}
	if aok {
		return ar.Kind == br.Kind
	}
	return true
}

// flipAll returns a copy of t with every bundle field's orientation
// flipped, recursively.
func flipAll(t Type) Type {
	switch v := t.(type) {
	case Bundle:
		fields := make([]BundleField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = BundleField{Name: f.Name, Type: flipAll(f.Type), Orientation: f.Orientation.Add(Flipped)}
		}
		return Bundle{Fields: fields}
	case Vector:
		return Vector{Base: flipAll(v.Base), Size: v.Size}
	default:
		return t
	}
}

// Flip returns t with every bundle field orientation reversed.
func Flip(t Type) Type { return flipAll(t) }

// WeakEq reports structural equivalence after normalising both types'
// orientations to Normal.
func WeakEq(a, b Type) bool {
	return Eq(normalizeOrientation(a), normalizeOrientation(b))
}

func normalizeOrientation(t Type) Type {
	switch v := t.(type) {
	case Bundle:
		fields := make([]BundleField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = BundleField{Name: f.Name, Type: normalizeOrientation(f.Type), Orientation: Normal}
		}
		return Bundle{Fields: fields}
	case Vector:
		return Vector{Base: normalizeOrientation(v.Base), Size: v.Size}
	default:
		return t
	}
}
