package window

// floor is added to every generically evaluated sample so that
// un-windowing by division never divides by zero.
const floor = 1e-5

// Cosine-sum window coefficients.
const (
	hannA0 = 0.5

	hammingA0 = 0.54
	hammingA1 = 0.46

	nuttallA0 = 0.3635819
	nuttallA1 = 0.4891775
	nuttallA2 = 0.1365995
	nuttallA3 = 0.0106411

	harrisA0 = 0.35875
	harrisA1 = 0.48829
	harrisA2 = 0.14128
	harrisA3 = 0.01168
)

const (
	// gaussianSigma is the standard deviation relative to the half width.
	gaussianSigma = 0.4

	// kaiserAttenuationDB is the sidelobe attenuation the Kaiser shape is designed for.
	kaiserAttenuationDB = 60.0
)
