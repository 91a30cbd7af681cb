package fftresampler

// Configuration limits
const (
	maxDimension = 1 << 16 // Largest supported axis length in pixels
	maxThreads   = 4096    // Upper bound on pool workers
)

// Memory accounting
const (
	bytesPerComplex128 = 16
)

// Spectrum layout
const (
	halfDivisor = 2 // Half-spectrum width is width/halfDivisor + 1
)
