// Package fft implements the two-dimensional real <-> half-complex
// transforms used by the resampler and the multiscale convolutions.
//
// Transforms are composed from gonum's one-dimensional FFTs: a real FFT
// along every row followed by a complex FFT along every column of the
// half spectrum. The spectrum layout matches an r2c transform of a
// (height, width) array: height rows of width/2+1 complex bins, with row
// frequencies stored in FFT order (0, 1, ..., -1).
package fft

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan is a precomputed 2-D transform for a fixed row-major grid.
//
// A Plan is immutable after NewPlan returns and is safe for concurrent
// use by multiple goroutines. gonum transform objects keep internal
// scratch space, so each execution borrows a private workspace from a
// pool; only the caller's buffers differ between calls.
type Plan struct {
	width     int
	height    int
	halfWidth int

	workspaces sync.Pool
}

// workspace holds the per-execution transform state.
type workspace struct {
	rows *fourier.FFT
	cols *fourier.CmplxFFT

	rowSpectrum []complex128 // halfWidth
	column      []complex128 // height
	columnOut   []complex128 // height
	spectrum    []complex128 // halfWidth*height, inverse copy of the input
}

// NewPlan creates a transform plan for a width x height grid.
// It panics if either dimension is not positive.
func NewPlan(width, height int) *Plan {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("fft: invalid plan size %dx%d", width, height))
	}

	p := &Plan{
		width:     width,
		height:    height,
		halfWidth: width/hermitianDivisor + 1,
	}
	p.workspaces.New = func() any {
		return &workspace{
			rows:        fourier.NewFFT(width),
			cols:        fourier.NewCmplxFFT(height),
			rowSpectrum: make([]complex128, p.halfWidth),
			column:      make([]complex128, height),
			columnOut:   make([]complex128, height),
			spectrum:    make([]complex128, p.halfWidth*height),
		}
	}
	// Warm the pool so the first execution does not pay for twiddle setup.
	p.workspaces.Put(p.workspaces.New())

	return p
}

// Width returns the real-domain width of the plan.
func (p *Plan) Width() int { return p.width }

// Height returns the real-domain height of the plan.
func (p *Plan) Height() int { return p.height }

// HalfWidth returns the number of spectrum columns, width/2+1.
func (p *Plan) HalfWidth() int { return p.halfWidth }

// Len returns the number of real samples, width*height.
func (p *Plan) Len() int { return p.width * p.height }

// SpectrumLen returns the number of half-spectrum bins, (width/2+1)*height.
func (p *Plan) SpectrumLen() int { return p.halfWidth * p.height }

// Forward computes the half spectrum of src into dst.
// src must hold Len() samples and dst SpectrumLen() bins; src is not modified.
func (p *Plan) Forward(dst []complex128, src []float64) {
	p.checkSizes(len(src), len(dst))

	ws := p.acquire()
	defer p.workspaces.Put(ws)

	for y := range p.height {
		row := src[y*p.width : (y+1)*p.width]
		ws.rowSpectrum = ws.rows.Coefficients(ws.rowSpectrum, row)
		copy(dst[y*p.halfWidth:(y+1)*p.halfWidth], ws.rowSpectrum)
	}

	for x := range p.halfWidth {
		for y := range p.height {
			ws.column[y] = dst[y*p.halfWidth+x]
		}
		ws.columnOut = ws.cols.Coefficients(ws.columnOut, ws.column)
		for y := range p.height {
			dst[y*p.halfWidth+x] = ws.columnOut[y]
		}
	}
}

// Inverse computes the real grid whose half spectrum is src into dst.
// The result is not normalized: Inverse(Forward(x)) == Len()*x.
// As with any c2r transform, the imaginary parts that a Hermitian
// spectrum would force to zero are discarded. src is not modified.
func (p *Plan) Inverse(dst []float64, src []complex128) {
	p.checkSizes(len(dst), len(src))

	ws := p.acquire()
	defer p.workspaces.Put(ws)

	copy(ws.spectrum, src)

	for x := range p.halfWidth {
		for y := range p.height {
			ws.column[y] = ws.spectrum[y*p.halfWidth+x]
		}
		ws.columnOut = ws.cols.Sequence(ws.columnOut, ws.column)
		for y := range p.height {
			ws.spectrum[y*p.halfWidth+x] = ws.columnOut[y]
		}
	}

	for y := range p.height {
		ws.rows.Sequence(dst[y*p.width:(y+1)*p.width], ws.spectrum[y*p.halfWidth:(y+1)*p.halfWidth])
	}
}

func (p *Plan) acquire() *workspace {
	return p.workspaces.Get().(*workspace)
}

func (p *Plan) checkSizes(realLen, spectrumLen int) {
	if realLen != p.Len() || spectrumLen != p.SpectrumLen() {
		panic(fmt.Sprintf("fft: buffer size mismatch for %dx%d plan: real %d (want %d), spectrum %d (want %d)",
			p.width, p.height, realLen, p.Len(), spectrumLen, p.SpectrumLen()))
	}
}
