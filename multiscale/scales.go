package multiscale

import "math"

// ScaleInfo describes one scale of a multiscale deconvolution.
type ScaleInfo struct {
	// Scale is the kernel scale size in pixels; 0 is the delta scale.
	Scale float64

	// KernelPeak is the center coefficient of the normalized kernel.
	KernelPeak float64

	// BiasFactor weighs peaks found at this scale against other scales.
	BiasFactor float64
}

// DefaultScales selects the delta scale followed by scales starting at four
// times the beam size and doubling until a scale reaches half the smallest
// image axis or maxScales scales have been selected. maxScales <= 0 means
// no limit.
func DefaultScales(beamSizeInPixels float64, width, height, maxScales int) []float64 {
	scales := []float64{0}
	if maxScales == 1 {
		return scales
	}

	maxScale := float64(min(width, height)) * maxScaleImageFraction
	scale := beamSizeInPixels * firstScaleBeamFactor
	if scale <= 0 {
		return scales
	}
	for scale < maxScale {
		if maxScales > 0 && len(scales) >= maxScales {
			break
		}
		scales = append(scales, scale)
		scale *= scaleGrowthFactor
	}
	return scales
}

// NewScaleInfos computes peak values and bias factors for scales. The bias
// factor is bias^-log2(scale/first), where first is the first non-zero
// scale and the delta scale counts as one octave below it.
func NewScaleInfos(scales []float64, width, height int, shape Shape, bias float64) []ScaleInfo {
	maxN := min(width, height)

	first := 0.0
	for _, s := range scales {
		if s > 0 {
			first = s
			break
		}
	}

	infos := make([]ScaleInfo, len(scales))
	for i, s := range scales {
		infos[i] = ScaleInfo{
			Scale:      s,
			KernelPeak: KernelPeakValue(s, maxN, shape),
			BiasFactor: biasFactor(s, first, bias),
		}
	}
	return infos
}

func biasFactor(scale, first, bias float64) float64 {
	if first == 0 {
		return 1
	}
	if scale == 0 {
		scale = first / scaleGrowthFactor
	}
	return math.Pow(bias, -math.Log2(scale/first))
}
