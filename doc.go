// Package fftresampler changes the pixel grid size of images in the
// frequency domain, in pure Go.
//
// An image is transformed to its half-complex spectrum, the low-frequency
// bins are copied into a spectrum of the output size (truncating or
// zero-padding the high frequencies) and the result is transformed back.
// This is exact interpolation for band-limited images and is how
// interferometric imagers move images between grids of different sizes.
//
// # Features
//
//   - Spectral remapping between arbitrary input and output sizes, odd or even
//   - Optional apodization before the transform (Tukey, Hann, Kaiser and others)
//     with optional correction of the window's attenuation afterwards
//   - A fixed pool of worker goroutines sharing immutable transform plans
//   - Centered diagnostic Fourier transforms with [Resampler.SingleFT]
//   - Pure Go transforms via gonum, SIMD arithmetic via github.com/tphakala/simd
//
// Multiscale shape kernels and the convolution driver used during multiscale
// deconvolution live in the multiscale sub-package.
//
// # Quick Start
//
// For simple one-shot resampling:
//
//	output, err := fftresampler.ResampleImage(input, 512, 512, 1024, 1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For many images of the same size, reuse a resampler and its worker pool:
//
//	r, err := fftresampler.New(&fftresampler.Config{
//	    InputWidth:     512,
//	    InputHeight:    512,
//	    OutputWidth:    1024,
//	    OutputHeight:   1024,
//	    Threads:        8,
//	    Window:         fftresampler.WindowTukey,
//	    TukeyInsetSize: 384,
//	    CorrectWindow:  true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for i := range images {
//	    if err := r.AddTask(images[i], outputs[i]); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	r.Finish() // outputs are ready
//
// # Normalization
//
// Spectral bins are scaled by 1/(minWidth*minHeight), where min is taken
// per axis over the input and output size. Resampling to the same size is
// the identity. Upsampling preserves pixel values, so the image sum grows
// by the area ratio; downsampling preserves the image sum, so pixel values
// grow by the area ratio. An upsample followed by a downsample back to the
// original grid therefore returns the original scaled by the area ratio.
//
// # Thread Safety
//
// A [Resampler] is safe for concurrent use. AddTask may be called from any
// goroutine; buffers passed to AddTask belong to the pool until Finish
// returns. After Finish, AddTask returns [ErrFinished] until Start is
// called again.
package fftresampler
