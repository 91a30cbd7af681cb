package fftresampler

import (
	"github.com/tphakala/go-fftresampler/internal/window"
	"gonum.org/v1/gonum/floats"
)

// windowCache holds the window profiles of a resampler. It is filled once,
// on the first windowed resample.
type windowCache struct {
	row []float64 // InputWidth samples
	col []float64 // InputHeight samples

	// image is the outer product of row and col.
	image []float64

	// response is image resampled to the output grid without windowing.
	// Only set when window correction is enabled.
	response []float64
}

func (r *Resampler) windowProfiles() *windowCache {
	r.windowOnce.Do(func() {
		w := &r.windows
		w.row = window.Make(r.config.Window, r.config.InputWidth, r.config.TukeyInsetSize)
		w.col = window.Make(r.config.Window, r.config.InputHeight, r.config.TukeyInsetSize)
		w.image = window.Outer(w.row, w.col)

		if r.config.CorrectWindow {
			// runSingle modifies its input.
			input := append([]float64(nil), w.image...)
			w.response = make([]float64, r.config.OutputWidth*r.config.OutputHeight)
			r.runSingle(input, w.response, true)
		}
		r.logger.Debug("computed window profiles",
			"window", r.config.Window.String(),
			"tukey_inset", r.config.TukeyInsetSize,
			"correct", r.config.CorrectWindow)
	})
	return &r.windows
}

// applyWindow multiplies an input image in place by the window.
func (r *Resampler) applyWindow(data []float64) {
	floats.Mul(data, r.windowProfiles().image)
}

// unapplyWindow divides an output image in place by the window response.
func (r *Resampler) unapplyWindow(data []float64) {
	floats.Div(data, r.windowProfiles().response)
}

// WindowProfiles returns copies of the row and column window profiles,
// computing them if needed. Both are nil for a rectangular window.
func (r *Resampler) WindowProfiles() (row, col []float64) {
	if r.config.Window == WindowRectangular {
		return nil, nil
	}
	w := r.windowProfiles()
	return append([]float64(nil), w.row...), append([]float64(nil), w.col...)
}
