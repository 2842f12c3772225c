package types

import "strings"

// OrientedType mirrors Type except orientation is attached to each
// ground leaf instead of to bundle fields. It is computed from a Type
// by propagating the sum of ancestor-field orientations downward.
type OrientedType interface {
	isOrientedType()
	String() string
}

// OrientedGround is a ground leaf carrying its accumulated orientation.
type OrientedGround struct {
	Type        GroundType
	Orientation Orientation
}

// OrientedVector is a homogeneous aggregate of oriented elements.
type OrientedVector struct {
	Base OrientedType
	Size uint16
}

// OrientedBundle is an ordered collection of oriented fields.
type OrientedBundle struct{ Fields []OrientedBundleField }

// OrientedBundleField is one member of an OrientedBundle; unlike
// BundleField its orientation already lives on its Type's leaves.
type OrientedBundleField struct {
	Name string
	Type OrientedType
}

func (OrientedGround) isOrientedType() {}
func (OrientedVector) isOrientedType() {}
func (OrientedBundle) isOrientedType() {}

func (t OrientedGround) String() string {
	if t.Orientation == Flipped {
		return "flip " + t.Type.String()
	}
	return t.Type.String()
}

func (t OrientedVector) String() string { return t.Base.String() + bracket(t.Size) }

func (t OrientedBundle) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Orient computes the OrientedType of t under an ambient orientation
// o (the sum of orientations contributed by enclosing bundle fields).
func Orient(t Type, o Orientation) OrientedType {
	switch v := t.(type) {
	case Ground:
		return OrientedGround{Type: v.Type, Orientation: o}
	case Vector:
		return OrientedVector{Base: Orient(v.Base, o), Size: v.Size}
	case Bundle:
		fields := make([]OrientedBundleField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = OrientedBundleField{Name: f.Name, Type: Orient(f.Type, o.Add(f.Orientation))}
		}
		return OrientedBundle{Fields: fields}
	default:
		panic("types: unknown Type variant")
	}
}
