// Package testutil provides reusable test helpers for the resampler and kernel tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	RoundTripTolerance = 1e-9
	KernelTolerance    = 1e-12
	WindowTolerance    = 1e-12
)

// halfDivisor is used for finding center indices.
const halfDivisor = 2

// AssertPointSymmetric verifies that a width x height raster is unchanged by
// a 180° rotation about its center: s[y][x] == s[h-1-y][w-1-x].
func AssertPointSymmetric(t *testing.T, s []float64, width, height int, tolerance float64) bool {
	t.Helper()
	for y := range height {
		for x := range width {
			i := y*width + x
			j := (height-1-y)*width + (width - 1 - x)
			if !assert.InDelta(t, s[i], s[j], tolerance,
				"not point symmetric at (%d,%d): %g != %g", x, y, s[i], s[j]) {
				return false
			}
		}
	}
	return true
}

// AssertSymmetric verifies that a slice is mirror symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%g is outside range [%g, %g]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSum verifies that the elements add up to the expected value.
func AssertSum(t *testing.T, s []float64, expected, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, v := range s {
		sum += v
	}
	return assert.InDelta(t, expected, sum, tolerance, "sum = %g, want %g", sum, expected)
}

// AssertSlicesInDelta compares two slices element by element.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance, "mismatch at index %d", i) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// ImpulseImage returns a width x height raster that is zero except for
// amplitude at (x, y).
func ImpulseImage(width, height, x, y int, amplitude float64) []float64 {
	img := make([]float64, width*height)
	img[y*width+x] = amplitude
	return img
}

// CosineImage returns a band-limited test raster: a constant offset plus
// cosines at integer cycle counts (kx, ky) across the grid. Each entry of
// waves is {kx, ky, amplitude}.
func CosineImage(width, height int, offset float64, waves ...[3]float64) []float64 {
	img := make([]float64, width*height)
	for y := range height {
		for x := range width {
			v := offset
			for _, w := range waves {
				phase := 2 * math.Pi * (w[0]*float64(x)/float64(width) + w[1]*float64(y)/float64(height))
				v += w[2] * math.Cos(phase)
			}
			img[y*width+x] = v
		}
	}
	return img
}

// NaiveDFT2D computes the half-complex 2-D DFT of a row-major real raster
// directly from the definition. The result has width/2+1 columns.
func NaiveDFT2D(data []float64, width, height int) []complex128 {
	halfWidth := width/halfDivisor + 1
	out := make([]complex128, halfWidth*height)
	for v := range height {
		for u := range halfWidth {
			var sum complex128
			for y := range height {
				for x := range width {
					angle := -2 * math.Pi * (float64(u*x)/float64(width) + float64(v*y)/float64(height))
					sum += complex(data[y*width+x]*math.Cos(angle), data[y*width+x]*math.Sin(angle))
				}
			}
			out[v*halfWidth+u] = sum
		}
	}
	return out
}
