package types

import "fmt"

// BitWidth is an optional non-negative bit width, at most 2^16-1.
// The zero value is "unknown" (to be inferred); a known width is
// never zero.
type BitWidth struct {
	value uint16
	known bool
}

// MaxBitWidth is the largest representable known width (2^16-1).
const MaxBitWidth = 1<<16 - 1

// UnknownWidth is the BitWidth meaning "to be inferred".
func UnknownWidth() BitWidth { return BitWidth{} }

// KnownWidth constructs a known BitWidth. It panics if w is zero;
// callers that need a fallible constructor should check w != 0
// themselves, since zero is never a valid known width by construction.
func KnownWidth(w uint16) BitWidth {
	if w == 0 {
		panic("types: known bit width must be non-zero")
	}
	return BitWidth{value: w, known: true}
}

// IsKnown reports whether w carries a concrete width.
func (w BitWidth) IsKnown() bool { return w.known }

// Value returns the concrete width and true, or (0, false) if unknown.
func (w BitWidth) Value() (uint16, bool) { return w.value, w.known }

func (w BitWidth) String() string {
	if !w.known {
		return ""
	}
	return fmt.Sprintf("<%d>", w.value)
}

// ResetKind distinguishes the two FIRRTL reset flavors.
type ResetKind int

const (
	RegularReset ResetKind = iota
	AsyncReset
)

func (k ResetKind) String() string {
	if k == AsyncReset {
		return "AsyncReset"
	}
	return "Reset"
}

// GroundType is a leaf FIRRTL type: UInt, SInt, Fixed, Clock, Reset,
// or Analog. Concrete variants are comparable structs; dispatch is by
// type switch rather than a visitor interface.
type GroundType interface {
	isGroundType()
	String() string
}

// UInt is an unsigned integer ground type of optional known width.
type UInt struct{ Width BitWidth }

// SInt is a two's-complement signed integer ground type.
type SInt struct{ Width BitWidth }

// Fixed is a fixed-point ground type; Point is the binary point's
// negative exponent (nil when not yet known).
type Fixed struct {
	Width BitWidth
	Point *int16
}

// ClockType is FIRRTL's clock signal ground type.
type ClockType struct{}

// ResetType is FIRRTL's reset ground type, regular or asynchronous.
type ResetType struct{ Kind ResetKind }

// Analog is a bidirectional analog ground type of optional known width.
type Analog struct{ Width BitWidth }

func (UInt) isGroundType()      {}
func (SInt) isGroundType()      {}
func (Fixed) isGroundType()     {}
func (ClockType) isGroundType() {}
func (ResetType) isGroundType() {}
func (Analog) isGroundType()    {}

func (t UInt) String() string  { return "UInt" + t.Width.String() }
func (t SInt) String() string  { return "SInt" + t.Width.String() }
func (t Fixed) String() string {
	s := "Fixed" + t.Width.String()
	if t.Point != nil {
		s += fmt.Sprintf("<<%d>>", *t.Point)
	}
	return s
}
func (ClockType) String() string  { return "Clock" }
func (t ResetType) String() string { return t.Kind.String() }
func (t Analog) String() string    { return "Analog" + t.Width.String() }

// SameVariant reports whether a and b are the same GroundType variant,
// ignoring widths, Fixed point offsets, and ResetKind.
func SameVariant(a, b GroundType) bool {
	switch a.(type) {
	case UInt:
		_, ok := b.(UInt)
		return ok
	case SInt:
		_, ok := b.(SInt)
		return ok
	case Fixed:
		_, ok := b.(Fixed)
		return ok
	case ClockType:
		_, ok := b.(ClockType)
		return ok
	case ResetType:
		_, ok := b.(ResetType)
		return ok
	case Analog:
		_, ok := b.(Analog)
		return ok
	default:
		return false
	}
}

// RequiredAddressWidth computes ceil(log2(depth)), the minimum address
// width able to index a memory of the given depth, but never less than
// 1: depths 0 and 1 yield 1, since a known BitWidth is never zero.
func RequiredAddressWidth(depth uint64) uint16 {
	if depth <= 1 {
		return 1
	}
	depth--
	var bits uint16
	for depth > 0 {
		bits++
		depth >>= 1
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}
