package multiscale

import (
	"fmt"
	"runtime"

	"github.com/tphakala/go-fftresampler/fft"
	"github.com/tphakala/go-fftresampler/internal/mathutil"
	"golang.org/x/sync/errgroup"
)

// Transforms convolves images with shape kernels at a fixed working size.
// The working size is taken from the FFT plan, which may be shared with
// other users of the same size. Transforms is safe for concurrent use.
type Transforms struct {
	plan  *fft.Plan
	shape Shape
}

// NewTransforms returns a convolution driver for images of the plan's size.
func NewTransforms(plan *fft.Plan, shape Shape) *Transforms {
	return &Transforms{plan: plan, shape: shape}
}

// Width returns the working width in pixels.
func (t *Transforms) Width() int { return t.plan.Width() }

// Height returns the working height in pixels.
func (t *Transforms) Height() int { return t.plan.Height() }

// Shape returns the kernel shape.
func (t *Transforms) Shape() Shape { return t.shape }

// MakeShapeFunction synthesizes the kernel for scale with the working size
// bounding the Gaussian kernel.
func (t *Transforms) MakeShapeFunction(scaleSizeInPixels float64) ([]float64, int) {
	return MakeShapeFunction(scaleSizeInPixels, min(t.Width(), t.Height()), t.shape)
}

// PrepareTransform fills kernel, a width*height buffer, with the shape
// kernel for scale centered on pixel (0,0). Offsets left of or above the
// center wrap to the far edges.
func (t *Transforms) PrepareTransform(kernel []float64, scaleSizeInPixels float64) error {
	width, height := t.Width(), t.Height()
	if len(kernel) != width*height {
		return fmt.Errorf("multiscale: kernel buffer has %d samples, need %d", len(kernel), width*height)
	}

	shape, n := t.MakeShapeFunction(scaleSizeInPixels)
	clear(kernel)

	half := n / 2
	for y := range n {
		ky := mathutil.Wrap(y-half, height)
		row := kernel[ky*width : (ky+1)*width]
		for x := range n {
			row[mathutil.Wrap(x-half, width)] += shape[y*n+x]
		}
	}
	return nil
}

// FinishTransform convolves image in place with a kernel prepared by
// PrepareTransform.
func (t *Transforms) FinishTransform(image, kernel []float64) error {
	convolver, err := fft.NewConvolver(t.plan, kernel)
	if err != nil {
		return err
	}
	if len(image) != t.plan.Len() {
		return fmt.Errorf("multiscale: image has %d samples, need %d", len(image), t.plan.Len())
	}
	convolver.Convolve(image)
	return nil
}

// Transform convolves image in place with the kernel for scale. scratch is
// a width*height buffer that receives the prepared kernel.
func (t *Transforms) Transform(image, scratch []float64, scaleSizeInPixels float64) error {
	return t.TransformMany([][]float64{image}, scratch, scaleSizeInPixels)
}

// TransformMany convolves every image in place with the kernel for scale.
// The kernel is synthesized and transformed once; images are convolved
// concurrently.
func (t *Transforms) TransformMany(images [][]float64, scratch []float64, scaleSizeInPixels float64) error {
	for i, image := range images {
		if len(image) != t.plan.Len() {
			return fmt.Errorf("multiscale: image %d has %d samples, need %d", i, len(image), t.plan.Len())
		}
	}
	if err := t.PrepareTransform(scratch, scaleSizeInPixels); err != nil {
		return err
	}
	convolver, err := fft.NewConvolver(t.plan, scratch)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, image := range images {
		g.Go(func() error {
			convolver.Convolve(image)
			return nil
		})
	}
	return g.Wait()
}
