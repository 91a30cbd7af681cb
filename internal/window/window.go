// Package window provides the apodization profiles applied to images
// before a spectral resample.
//
// A profile is a 1-D array of per-sample weights along one image axis; the
// row and column profiles are combined by outer product into a 2-D window.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-fftresampler/internal/mathutil"
	dspwindow "gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Function selects the shape of an apodization profile.
type Function int

const (
	// Rectangular applies no tapering.
	Rectangular Function = iota

	// Tukey is a flat inset with raised-cosine transitions to both edges.
	Tukey

	// Hann is a full raised-cosine taper.
	Hann

	// Hamming is a raised cosine on a 0.08 pedestal.
	Hamming

	// BlackmanNuttall is a four-term cosine window with very low sidelobes.
	BlackmanNuttall

	// BlackmanHarris is a four-term cosine window, minimum 4-term sidelobe level.
	BlackmanHarris

	// Gaussian is a Gaussian taper with σ = 0.4 of the half width.
	Gaussian

	// Kaiser is a Kaiser-Bessel taper designed for 60 dB sidelobe attenuation.
	Kaiser
)

var functionNames = map[Function]string{
	Rectangular:     "rectangular",
	Tukey:           "tukey",
	Hann:            "hann",
	Hamming:         "hamming",
	BlackmanNuttall: "blackman-nuttall",
	BlackmanHarris:  "blackman-harris",
	Gaussian:        "gaussian",
	Kaiser:          "kaiser",
}

// String returns the lower-case name of the window function.
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

// Valid reports whether f names a known window function.
func (f Function) Valid() bool {
	_, ok := functionNames[f]
	return ok
}

// Parse returns the window function with the given name.
func Parse(name string) (Function, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range functionNames {
		if n == name {
			return f, nil
		}
	}
	return Rectangular, fmt.Errorf("unknown window function %q", name)
}

// Evaluate returns the weight of sample x of an n-sample window of shape f.
// Weights lie in [0, 1]. Tukey is evaluated without a flat inset; use
// Make or MakeTukey to control the inset. Unknown shapes evaluate as
// rectangular.
func Evaluate(f Function, n, x int) float64 {
	if n <= 1 {
		return 1.0
	}

	// Normalized position in [0, 1] across the window
	pos := float64(x) / float64(n-1)
	phase := 2 * math.Pi * pos

	switch f {
	case Tukey:
		return tukeyValue(n, x, 0)

	case Hann:
		return hannA0 - hannA0*math.Cos(phase)

	case Hamming:
		return hammingA0 - hammingA1*math.Cos(phase)

	case BlackmanNuttall:
		return nuttallA0 - nuttallA1*math.Cos(phase) + nuttallA2*math.Cos(2*phase) - nuttallA3*math.Cos(3*phase)

	case BlackmanHarris:
		return harrisA0 - harrisA1*math.Cos(phase) + harrisA2*math.Cos(2*phase) - harrisA3*math.Cos(3*phase)

	case Gaussian:
		// Position relative to center: [-1, 1]
		u := (pos*2 - 1) / gaussianSigma
		return math.Exp(-0.5 * u * u)

	case Kaiser:
		beta := mathutil.KaiserBeta(kaiserAttenuationDB)
		u := pos*2 - 1
		return mathutil.BesselI0(beta*math.Sqrt(1.0-u*u)) / mathutil.BesselI0(beta)

	default:
		return 1.0
	}
}

// Make builds the n-sample profile for shape f.
//
// Tukey profiles use the analytic three-region form with a flat inset of
// tukeyInset samples. All other shapes carry a small additive floor so that
// no weight is exactly zero and dividing by the window stays well defined.
// Make agrees with Evaluate plus that floor.
func Make(f Function, n int, tukeyInset float64) []float64 {
	if f == Tukey {
		return MakeTukey(n, tukeyInset)
	}

	profile := make([]float64, n)
	for x := range profile {
		profile[x] = 1.0
	}

	// The dsp/window transforms divide by n-1.
	if n > 1 {
		switch f {
		case Hann:
			dspwindow.Hann(profile)
		case Hamming:
			dspwindow.Hamming(profile)
		case BlackmanNuttall:
			dspwindow.BlackmanNuttall(profile)
		case BlackmanHarris:
			dspwindow.BlackmanHarris(profile)
		case Gaussian:
			dspwindow.Gaussian{Sigma: gaussianSigma}.Transform(profile)
		case Kaiser:
			copy(profile, KaiserWindow(n, mathutil.KaiserBeta(kaiserAttenuationDB)))
		}
	}

	floats.AddConst(floor, profile)
	return profile
}

// MakeTukey builds an n-sample Tukey profile. It consists of
//
//	left:  a raised cosine going from 0 to 1
//	mid:   all 1, over the central inset samples
//	right: a raised cosine going from 1 to 0
//
// With inset = 0 the profile is a pure half-cosine taper across the whole
// width; with inset ≥ n it is flat.
func MakeTukey(n int, inset float64) []float64 {
	profile := make([]float64, n)
	for x := range n {
		profile[x] = tukeyValue(n, x, inset)
	}
	return profile
}

// tukeyValue works on doubled sample coordinates (2x+1) so the transition
// bands are sampled at pixel centers and never hit an exact zero.
func tukeyValue(n, x int, inset float64) float64 {
	width := float64(n)
	xSh := (0.5 + float64(x)) * 2
	switch {
	case xSh < width-inset:
		pos := xSh / (width - inset)
		return mathutil.RaisedCosine(1 - pos)
	case xSh < width+inset:
		return 1.0
	default:
		pos := (xSh - (width + inset)) / (width - inset)
		return mathutil.RaisedCosine(pos)
	}
}

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// The window peaks at 1.0 in the center and is symmetric: w[i] = w[length-1-i].
// Typical β lies in 0-15; higher values taper more strongly.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1.0
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
	alpha := float64(length-1) / 2
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}

	return window
}

// Outer returns the row-major image w[y][x] = row[x] * col[y].
func Outer(row, col []float64) []float64 {
	img := make([]float64, len(row)*len(col))
	for y, cy := range col {
		line := img[y*len(row) : (y+1)*len(row)]
		for x, rx := range row {
			line[x] = rx * cy
		}
	}
	return img
}
