package main

import (
	"fmt"
	"io"
	"math"

	"github.com/tphakala/go-fftresampler"
	"gonum.org/v1/gonum/floats"
)

// runDemo resamples synthetic images and prints their key properties.
func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "=== FFT Image Resampler Demo ===")

	// Demo 1: impulse response for several output sizes
	fmt.Fprintln(w, "\n1. Impulse Response")
	fmt.Fprintln(w, "-------------------")

	sizes := []struct {
		width, height int
		name          string
	}{
		{2 * demoSize, 2 * demoSize, "2x upsample"},
		{demoSize / 2, demoSize / 2, "2x downsample"},
		{demoSize + demoSize/2, demoSize - 1, "mixed, odd height"},
	}

	for _, s := range sizes {
		input := make([]float64, demoSize*demoSize)
		input[demoSize/2*demoSize+demoSize/2] = demoAmplitude

		output, err := fftresampler.ResampleImage(input, demoSize, demoSize, s.width, s.height)
		if err != nil {
			return err
		}
		peak := floats.MaxIdx(output)
		fmt.Fprintf(w, "  %-18s %dx%d: sum %.4f, peak %.4f at (%d,%d)\n",
			s.name, s.width, s.height, floats.Sum(output), output[peak], peak%s.width, peak/s.width)
	}

	// Demo 2: window correction on a constant image
	fmt.Fprintln(w, "\n2. Window Correction")
	fmt.Fprintln(w, "--------------------")

	windows := []fftresampler.WindowFunction{
		fftresampler.WindowRectangular,
		fftresampler.WindowTukey,
		fftresampler.WindowKaiser,
	}
	for _, fn := range windows {
		for _, correct := range []bool{false, true} {
			input := make([]float64, demoSize*demoSize)
			for i := range input {
				input[i] = 1
			}
			outputs, err := fftresampler.ResampleImages([][]float64{input}, &fftresampler.Config{
				InputWidth: demoSize, InputHeight: demoSize,
				OutputWidth: 2 * demoSize, OutputHeight: 2 * demoSize,
				Window: fn, TukeyInsetSize: demoInset, CorrectWindow: correct,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %-12s correct=%-5v center %.6f, corner %.6f\n",
				fn, correct, outputs[0][demoSize*2*demoSize+demoSize], outputs[0][0])
		}
	}

	// Demo 3: worker pool throughput
	fmt.Fprintln(w, "\n3. Worker Pool")
	fmt.Fprintln(w, "--------------")

	r, err := fftresampler.New(&fftresampler.Config{
		InputWidth: demoSize, InputHeight: demoSize,
		OutputWidth: 2 * demoSize, OutputHeight: 2 * demoSize,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	outputs := make([][]float64, demoImages)
	for i := range outputs {
		input := make([]float64, demoSize*demoSize)
		for j := range input {
			input[j] = math.Sin(float64(i+j) * 0.1)
		}
		outputs[i] = make([]float64, 4*demoSize*demoSize)
		if err := r.AddTask(input, outputs[i]); err != nil {
			return err
		}
	}
	r.Finish()

	info := r.GetInfo()
	fmt.Fprintf(w, "  %d images on %d workers (%s, SIMD %s)\n", demoImages, info.Threads, info.Algorithm, info.SIMDType)

	fmt.Fprintln(w, "\n=== Demo Complete ===")
	return nil
}
