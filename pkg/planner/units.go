package planner

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseUnits parses a decimal string like "5.2" into the smallest unit of an asset with
// the given decimals. More fractional digits than decimals is an error.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > int(decimals) {
		return nil, fmt.Errorf("amount %s has more than %d decimals", s, decimals)
	}
	fracPart += strings.Repeat("0", int(decimals)-len(fracPart))

	v, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %s", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// FormatUnits renders v with exactly decimals fractional digits.
func FormatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "<nil>"
	}
	abs := new(big.Int).Abs(v).String()
	if decimals == 0 {
		if v.Sign() < 0 {
			return "-" + abs
		}
		return abs
	}

	d := int(decimals)
	if len(abs) <= d {
		abs = strings.Repeat("0", d-len(abs)+1) + abs
	}
	s := abs[:len(abs)-d] + "." + abs[len(abs)-d:]
	if v.Sign() < 0 {
		s = "-" + s
	}
	return s
}
