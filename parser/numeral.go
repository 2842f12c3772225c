package parser

import "math/big"

// parseRadixString parses a quoted radix numeral's content, e.g.
// "b1010", "h-ff", "o17" — a single radix letter (b/o/h) followed by
// an optional sign and digits in that base.
func parseRadixString(content string) (*big.Int, error) {
	if len(content) < 2 {
		return nil, errBadNumeral
	}
	var base int
	switch content[0] {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'h':
		base = 16
	default:
		return nil, errBadNumeral
	}
	rest := content[1:]
	neg := false
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	if rest == "" {
		return nil, errBadNumeral
	}
	v, ok := new(big.Int).SetString(rest, base)
	if !ok {
		return nil, errBadNumeral
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

func parseDecimalString(content string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(content, 10)
	if !ok {
		return nil, errBadNumeral
	}
	return v, nil
}

var errBadNumeral = &numeralError{}

type numeralError struct{}

func (*numeralError) Error() string { return "malformed numeral" }
