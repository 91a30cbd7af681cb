package fft

import (
	"fmt"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Convolver performs circular same-size convolution of images with a fixed
// kernel in the frequency domain.
//
// The kernel is given in the spatial domain with its center at pixel (0,0)
// and negative offsets wrapped to the far edges. It is transformed once and
// reused for every Convolve call. A Convolver is safe for concurrent use.
type Convolver struct {
	plan *Plan

	// Precomputed kernel in frequency domain
	kernelFFT []complex128
	scale     float64 // 1/(width*height) for inverse normalization (gonum doesn't normalize)
}

// NewConvolver transforms kernel, which must hold plan.Len() samples.
func NewConvolver(plan *Plan, kernel []float64) (*Convolver, error) {
	if len(kernel) != plan.Len() {
		return nil, fmt.Errorf("fft: kernel has %d samples, plan needs %d", len(kernel), plan.Len())
	}

	kernelFFT := make([]complex128, plan.SpectrumLen())
	plan.Forward(kernelFFT, kernel)

	return &Convolver{
		plan:      plan,
		kernelFFT: kernelFFT,
		scale:     1.0 / float64(plan.Len()),
	}, nil
}

// Convolve replaces image by its circular convolution with the kernel.
func (c *Convolver) Convolve(image []float64) {
	imageFFT := make([]complex128, c.plan.SpectrumLen())
	productFFT := make([]complex128, c.plan.SpectrumLen())

	c.plan.Forward(imageFFT, image)

	// Multiply in frequency domain using SIMD
	c128.Mul(productFFT, imageFFT, c.kernelFFT)

	c.plan.Inverse(image, productFFT)

	f64.Scale(image, image, c.scale)
}
