package fftresampler

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fftresampler/internal/mathutil"
)

// SingleFT computes the centered Fourier transform of an input-sized image
// on the calling goroutine. The image is shifted so that its center pixel
// becomes the origin, transformed with 1/sqrt(N) normalization and written
// as full real and imaginary planes with the zero frequency at the center
// pixel. Non-finite samples are treated as zero; input is not modified.
func (r *Resampler) SingleFT(input, realOutput, imaginaryOutput []float64) error {
	width, height := r.config.InputWidth, r.config.InputHeight
	n := width * height
	if len(input) != n || len(realOutput) != n || len(imaginaryOutput) != n {
		return fmt.Errorf("%w: SingleFT needs %d samples per buffer, got input=%d real=%d imaginary=%d",
			ErrBufferSize, n, len(input), len(realOutput), len(imaginaryOutput))
	}

	midX := width / halfDivisor
	midY := height / halfDivisor

	data := make([]float64, n)
	for y := range height {
		rowIn := input[((y+midY)%height)*width:]
		rowOut := data[y*width : (y+1)*width]
		for x := range width {
			rowOut[x] = rowIn[(x+midX)%width]
		}
	}
	mathutil.ZeroNonFinite(data)

	spectrum := make([]complex128, r.inToF.SpectrumLen())
	r.logger.Debug("fft real to complex", "width", width, "height", height)
	r.inToF.Forward(spectrum, data)

	clear(realOutput)
	clear(imaginaryOutput)

	factor := 1.0 / math.Sqrt(float64(n))
	halfWidth := midX + 1
	for y := range height {
		oldY := (y + midY) % height
		yTo := mathutil.Wrap(height-y, height)
		for x := range halfWidth {
			val := spectrum[oldY*halfWidth+x]
			re, im := real(val)*factor, imag(val)*factor

			i := midX - x + y*width
			realOutput[i] = re
			imaginaryOutput[i] = im

			// Conjugate symmetry fills the other half.
			if x != midX {
				j := midX + x + yTo*width
				realOutput[j] = re
				imaginaryOutput[j] = -im
			}
		}
	}
	return nil
}
