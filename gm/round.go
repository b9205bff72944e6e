package gm

import "math"

// RoundInt32 rounds x to the nearest int32, halfway cases away from zero.
// Values outside of the int32 range saturate, NaN becomes zero.
func RoundInt32(x float64) int32 {
	value, ok := TryRoundInt32(x)
	if ok {
		return value
	}

	switch {
	case math.IsNaN(x):
		return 0
	case x > 0:
		return math.MaxInt32
	default:
		return math.MinInt32
	}
}

// TryRoundInt32 rounds x to the nearest int32, halfway cases away from zero.
// It reports false if the rounded value is not representable.
func TryRoundInt32(x float64) (int32, bool) {
	rounded := math.Round(x)
	if math.IsNaN(rounded) || rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return 0, false
	}

	return int32(rounded), true
}
