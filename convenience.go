package fftresampler

import "fmt"

// ResampleImage is a convenience function for one-shot resampling of a
// single image without windowing. input is not modified.
func ResampleImage(input []float64, inWidth, inHeight, outWidth, outHeight int) ([]float64, error) {
	r, err := New(&Config{
		InputWidth:   inWidth,
		InputHeight:  inHeight,
		OutputWidth:  outWidth,
		OutputHeight: outHeight,
		Threads:      1,
	})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	output := make([]float64, outWidth*outHeight)
	if err := r.Resample(append([]float64(nil), input...), output); err != nil {
		return nil, err
	}
	return output, nil
}

// ResampleImageFloat32 is like ResampleImage for float32 rasters. The
// transform itself runs in float64.
func ResampleImageFloat32(input []float32, inWidth, inHeight, outWidth, outHeight int) ([]float32, error) {
	in64 := make([]float64, len(input))
	for i, v := range input {
		in64[i] = float64(v)
	}

	out64, err := ResampleImage(in64, inWidth, inHeight, outWidth, outHeight)
	if err != nil {
		return nil, err
	}

	output := make([]float32, len(out64))
	for i, v := range out64 {
		output[i] = float32(v)
	}
	return output, nil
}

// ResampleImages resamples a batch of equally sized images through the
// worker pool of a resampler built from config. inputs are not modified.
func ResampleImages(inputs [][]float64, config *Config) ([][]float64, error) {
	r, err := New(config)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	outputs := make([][]float64, len(inputs))
	for i, input := range inputs {
		outputs[i] = make([]float64, r.OutputWidth()*r.OutputHeight())
		if err := r.AddTask(append([]float64(nil), input...), outputs[i]); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}
	r.Finish()

	return outputs, nil
}
