package mathutil

import "math"

// ZeroNonFinite replaces every NaN or ±Inf sample in data with 0 and
// returns the number of samples that were replaced.
func ZeroNonFinite(data []float64) int {
	replaced := 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data[i] = 0
			replaced++
		}
	}
	return replaced
}

// Wrap maps i into [0, n) with modular arithmetic, so that negative
// offsets address the end of a periodic axis.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// RaisedCosine evaluates 0.5 * (1 + cos(π·pos)). It falls from 1 at pos=0
// to 0 at pos=1 and is the transition shape of the tapered windows.
func RaisedCosine(pos float64) float64 {
	return halfDivisor * (1.0 + math.Cos(pos*math.Pi))
}

// OddFloor returns n if it is odd, otherwise n-1 (for n > 0).
// Non-positive values are returned unchanged.
func OddFloor(n int) int {
	if n > 0 && n%2 == 0 {
		return n - 1
	}
	return n
}
