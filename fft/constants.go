package fft

const (
	// hermitianDivisor is used to calculate unique frequency bins in a real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	hermitianDivisor = 2
)
