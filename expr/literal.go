package expr

import "math/big"

// NewUIntLiteral builds a UIntLiteral. If width is nil, the smallest
// width w such that value>>w == 0 is inferred.
func NewUIntLiteral(value *big.Int, width *uint16) UIntLiteral {
	if width != nil {
		return UIntLiteral{Value: new(big.Int).Set(value), Width: *width}
	}
	return UIntLiteral{Value: new(big.Int).Set(value), Width: inferUIntWidth(value)}
}

// NewSIntLiteral builds an SIntLiteral. If width is nil, the smallest
// two's-complement width is inferred.
func NewSIntLiteral(value *big.Int, width *uint16) SIntLiteral {
	if width != nil {
		return SIntLiteral{Value: new(big.Int).Set(value), Width: *width}
	}
	return SIntLiteral{Value: new(big.Int).Set(value), Width: inferSIntWidth(value)}
}

// inferUIntWidth finds the smallest w with value>>w == 0.
func inferUIntWidth(value *big.Int) uint16 {
	if value.Sign() == 0 {
		return 1
	}
	v := new(big.Int).Set(value)
	var w uint16
	for v.Sign() != 0 {
		v.Rsh(v, 1)
		w++
	}
	return w
}

// inferSIntWidth finds the smallest w such that value>>(w-1) == 0 or
// value>>w == -1, i.e. the minimal two's-complement width for value.
func inferSIntWidth(value *big.Int) uint16 {
	if value.Sign() == 0 {
		return 1
	}
	if value.Sign() > 0 {
		return inferUIntWidth(value) + 1
	}
	// value is negative: find smallest w with (value+1)'s magnitude
	// fitting in w-1 unsigned bits, i.e. -(value+1) >> (w-1) == 0.
	mag := new(big.Int).Neg(value)
	mag.Sub(mag, big.NewInt(1))
	if mag.Sign() == 0 {
		return 1
	}
	return inferUIntWidth(mag) + 1
}
