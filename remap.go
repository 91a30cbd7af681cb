package fftresampler

import (
	"github.com/tphakala/go-fftresampler/internal/mathutil"
)

// Resample resamples input into output on the calling goroutine, bypassing
// the worker pool. input must hold InputWidth*InputHeight samples and is
// modified in place; output must hold OutputWidth*OutputHeight samples and
// is overwritten.
func (r *Resampler) Resample(input, output []float64) error {
	if err := r.checkBuffers(input, output); err != nil {
		return err
	}
	r.runSingle(input, output, false)
	return nil
}

// runSingle performs one resample. skipWindow disables both windowing and
// window correction; it is set when resampling the window itself.
func (r *Resampler) runSingle(input, output []float64, skipWindow bool) {
	if n := mathutil.ZeroNonFinite(input); n > 0 {
		r.logger.Debug("replaced non-finite samples", "count", n)
	}

	windowed := r.config.Window != WindowRectangular && !skipWindow
	if windowed {
		r.applyWindow(input)
	}

	inWidth, inHeight := r.config.InputWidth, r.config.InputHeight
	outWidth, outHeight := r.config.OutputWidth, r.config.OutputHeight

	inSpectrum := make([]complex128, r.inToF.SpectrumLen())
	r.logger.Debug("fft real to complex", "width", inWidth, "height", inHeight)
	r.inToF.Forward(inSpectrum, input)

	outSpectrum := make([]complex128, r.fToOut.SpectrumLen())
	remapSpectrum(outSpectrum, inSpectrum, inWidth, inHeight, outWidth, outHeight)

	r.logger.Debug("fft complex to real", "width", outWidth, "height", outHeight)
	r.fToOut.Inverse(output, outSpectrum)

	if windowed && r.config.CorrectWindow {
		r.unapplyWindow(output)
	}
}

// remapSpectrum copies the low-frequency bins of an inWidth x inHeight
// half-spectrum into a zeroed outWidth x outHeight half-spectrum, scaled
// by 1/(minWidth*minHeight). Rows are addressed around the zero frequency
// with wraparound, so negative frequencies stay at the bottom of both
// grids. Columns below minWidth/2 are always copied; column minWidth/2 is
// carried only when the input is at least as wide as the output. When the
// input is the narrower, odd-width grid that column is an ordinary
// frequency and is still dropped, so a width-1 input copies nothing.
func remapSpectrum(dst, src []complex128, inWidth, inHeight, outWidth, outHeight int) {
	inHalf := inWidth/halfDivisor + 1
	outHalf := outWidth/halfDivisor + 1

	minWidth := min(inWidth, outWidth)
	minHeight := min(inHeight, outHeight)
	minMidX := minWidth / halfDivisor
	minMidY := minHeight / halfDivisor

	factor := complex(1.0/float64(minWidth*minHeight), 0)

	for y := range minHeight {
		oldY := mathutil.Wrap(y-minMidY, inHeight)
		newY := mathutil.Wrap(y-minMidY, outHeight)
		srcRow := src[oldY*inHalf : (oldY+1)*inHalf]
		dstRow := dst[newY*outHalf : (newY+1)*outHalf]

		for x := range minMidX {
			dstRow[x] = srcRow[x] * factor
		}
		if inWidth >= outWidth {
			dstRow[outWidth/halfDivisor] = srcRow[inWidth/halfDivisor] * factor
		}
	}
}
