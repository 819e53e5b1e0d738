package dihedral

import "math"

// Diff returns the minimum angular separation, in degrees, between
// two angles on a 360 degree circle. The result is always in
// [0, 180], no matter which representative range a and b use:
// Diff(170, -170) is 20, not 340.
func Diff(a, b float64) float64 {
	raw := math.Mod(math.Abs(a-b), 360)
	if raw > 180 {
		return 360 - raw
	}
	return raw
}

// NormalizeThreshold reduces a raw threshold in degrees to the
// equivalent minimum circular angle in [0, 180]. It applies the same
// modular reflection as Diff, so a threshold of 190 behaves exactly
// like a threshold of 170. Negative input is reduced to its
// non-negative congruent first.
func NormalizeThreshold(deg int) int {
	a := deg % 360
	if a < 0 {
		a += 360
	}
	if a > 180 {
		return 360 - a
	}
	return a
}
