package main

const (
	// CLI defaults
	defaultScale    = 2.0
	minRequiredArgs = 2

	// Pixel conversion
	maxPixelValue  = 255.0
	bytesPerPixel  = 4 // NRGBA
	alphaChannel   = 3
	opaque         = 255
	roundingOffset = 0.5

	// Summary formatting
	bytesPerKilobyte = 1024
)

// Demo image sizes
const (
	demoSize      = 64
	demoImages    = 16
	demoAmplitude = 100.0
	demoInset     = 32.0
)
