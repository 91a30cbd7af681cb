package multiscale

const (
	// gaussianSigmaFactor converts a scale size to the Gaussian σ.
	gaussianSigmaFactor = 3.0 / 16.0

	// gaussianBoxSigmas is the Gaussian kernel bounding box in units of σ.
	gaussianBoxSigmas = 12.0
)

// Scale selection defaults.
const (
	// DefaultScaleBias weighs larger scales against smaller ones; lower
	// values give larger scales more focus.
	DefaultScaleBias = 0.6

	// DefaultGain is the fraction of a component subtracted per minor iteration.
	DefaultGain = 0.2

	// firstScaleBeamFactor places the first non-zero scale at this many beam sizes.
	firstScaleBeamFactor = 4.0

	// maxScaleImageFraction bounds scales to this fraction of the smallest image axis.
	maxScaleImageFraction = 0.5

	scaleGrowthFactor = 2.0
)
