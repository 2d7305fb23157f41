package layout

import "math"

// Interp returns a + pos*(b-a) rounded to the nearest integer.
// Equal endpoints are returned untouched so unchanging fields never drift.
func Interp(a, b int, pos float64) int {
	if a == b {
		return a
	}
	return a + int(math.Round(float64(b-a)*pos))
}

// InterpFloat is the floating point counterpart of [Interp].
func InterpFloat(a, b, pos float64) float64 {
	if a == b {
		return a
	}
	return a + (b-a)*pos
}

// ClampPos restricts pos to [0, 1].
func ClampPos(pos float64) float64 {
	switch {
	case math.IsNaN(pos):
		return 0
	case pos < 0:
		return 0
	case pos > 1:
		return 1
	}
	return pos
}

// Round converts an evaluated coordinate to a published pixel value.
// NaN and infinities collapse to zero so they never reach render objects.
func Round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
