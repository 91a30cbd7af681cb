// Package multiscale synthesizes the scale-indexed shape kernels used by
// multiscale deconvolution and convolves images with them.
//
// A shape kernel is a small square, odd-sized, unit-sum weighting function
// describing extended emission at one spatial scale. Kernels are
// synthesized on demand from a scale size in pixels and a Shape.
package multiscale

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-fftresampler/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// Shape selects the kernel shape function.
type Shape int

const (
	// TaperedQuadraticShape is 1-(r/scale)² tapered by a Hann window.
	TaperedQuadraticShape Shape = iota

	// GaussianShape is a Gaussian with σ = scale * 3/16.
	GaussianShape
)

// String returns the command-line name of the shape.
func (s Shape) String() string {
	switch s {
	case TaperedQuadraticShape:
		return "tapered-quadratic"
	case GaussianShape:
		return "gaussian"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape returns the shape with the given name.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tapered-quadratic":
		return TaperedQuadraticShape, nil
	case "gaussian":
		return GaussianShape, nil
	default:
		return TaperedQuadraticShape, fmt.Errorf("unknown multiscale shape %q (want tapered-quadratic or gaussian)", name)
	}
}

// GaussianSigma returns the standard deviation in pixels of the Gaussian
// kernel for a scale size in pixels.
func GaussianSigma(scaleSizeInPixels float64) float64 {
	return scaleSizeInPixels * gaussianSigmaFactor
}

// MakeShapeFunction synthesizes the kernel for a scale size in pixels.
// It returns the n*n row-major kernel and its side length n, which is odd
// and at least 1. maxN bounds the Gaussian kernel size; the tapered
// quadratic kernel is sized from the scale alone.
//
// Shapes other than GaussianShape produce the tapered quadratic kernel.
func MakeShapeFunction(scaleSizeInPixels float64, maxN int, shape Shape) ([]float64, int) {
	switch shape {
	case GaussianShape:
		return makeGaussianFunction(scaleSizeInPixels, maxN)
	default:
		return makeTaperedQuadraticShapeFunction(scaleSizeInPixels)
	}
}

// KernelSize returns the side length of the kernel MakeShapeFunction
// would produce.
func KernelSize(scaleSizeInPixels float64, maxN int, shape Shape) int {
	switch shape {
	case GaussianShape:
		_, n := gaussianSize(scaleSizeInPixels, maxN)
		return n
	default:
		return taperedQuadraticKernelSize(scaleSizeInPixels)
	}
}

// KernelPeakValue returns the center coefficient of the normalized kernel.
func KernelPeakValue(scaleSizeInPixels float64, maxN int, shape Shape) float64 {
	kernel, n := MakeShapeFunction(scaleSizeInPixels, maxN, shape)
	return kernel[n/2+(n/2)*n]
}

// KernelIntegratedValue returns the sum of all kernel coefficients. Kernels
// are normalized, so this is 1 up to rounding.
func KernelIntegratedValue(scaleSizeInPixels float64, maxN int, shape Shape) float64 {
	kernel, _ := MakeShapeFunction(scaleSizeInPixels, maxN, shape)
	return f64.Sum(kernel)
}

// AddShapeComponent adds gain times the kernel for the given scale to a
// width x height image, centered on pixel (x, y). Parts of the kernel that
// fall outside the image are dropped.
func AddShapeComponent(image []float64, width, height int, scaleSizeInPixels float64, x, y int, gain float64, shape Shape) {
	kernel, n := MakeShapeFunction(scaleSizeInPixels, min(width, height), shape)
	half := n / 2

	left := max(x-half, 0)
	top := max(y-half, 0)
	right := min(x+(n+1)/2, width)
	bottom := min(y+(n+1)/2, height)

	for yi := top; yi < bottom; yi++ {
		imageRow := image[yi*width : (yi+1)*width]
		kernelRow := kernel[(yi+half-y)*n : (yi+half-y+1)*n]
		for xi := left; xi < right; xi++ {
			imageRow[xi] += kernelRow[xi+half-x] * gain
		}
	}
}

func taperedQuadraticKernelSize(scaleInPixels float64) int {
	return int(math.Ceil(scaleInPixels*0.5)*2.0) + 1
}

func makeTaperedQuadraticShapeFunction(scaleSizeInPixels float64) ([]float64, int) {
	n := taperedQuadraticKernelSize(scaleSizeInPixels)
	kernel := make([]float64, n*n)
	if scaleSizeInPixels == 0 {
		kernel[0] = 1.0
		return kernel, n
	}

	center := 0.5 * float64(n-1)
	for y := range n {
		dy := float64(y) - center
		for x := range n {
			dx := float64(x) - center
			r := math.Sqrt(dx*dx + dy*dy)
			kernel[y*n+x] = hannWindowFunction(r, n) * shapeFunction(r/scaleSizeInPixels)
		}
	}
	normalize(kernel)
	return kernel, n
}

// gaussianSize returns the effective σ and side length of a Gaussian
// kernel: a 12σ bounding box, clipped to an odd size no larger than maxN.
func gaussianSize(scaleSizeInPixels float64, maxN int) (float64, int) {
	sigma := GaussianSigma(scaleSizeInPixels)

	n := int(math.Ceil(sigma*gaussianBoxSigmas/2))*2 + 1
	if n > maxN {
		n = mathutil.OddFloor(maxN)
	}
	if n < 1 {
		n = 1
	}
	if sigma == 0 {
		sigma = 1
		n = 1
	}
	return sigma, n
}

func makeGaussianFunction(scaleSizeInPixels float64, maxN int) ([]float64, int) {
	sigma, n := gaussianSize(scaleSizeInPixels, maxN)

	// Separable: build the 1-D profile once and take the outer product.
	mu := float64(n / 2)
	twoSigmaSquared := 2.0 * sigma * sigma
	gaus := make([]float64, n)
	for i := range n {
		vI := float64(i) - mu
		gaus[i] = math.Exp(-vI * vI / twoSigmaSquared)
	}

	kernel := make([]float64, n*n)
	for y := range n {
		row := kernel[y*n : (y+1)*n]
		for x := range n {
			row[x] = gaus[x] * gaus[y]
		}
	}
	normalize(kernel)
	return kernel, n
}

// normalize scales kernel to unit sum.
func normalize(kernel []float64) {
	sum := f64.Sum(kernel)
	if sum != 0 {
		f64.Scale(kernel, kernel, 1.0/sum)
	}
}

// hannWindowFunction is a raised cosine in the radius that vanishes beyond
// half of n+1.
func hannWindowFunction(r float64, n int) float64 {
	if r*2 <= float64(n+1) {
		return mathutil.RaisedCosine(2.0 * r / float64(n+1))
	}
	return 0.0
}

func shapeFunction(x float64) float64 {
	if x < 1.0 {
		return 1.0 - x*x
	}
	return 0.0
}
