package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
)

// grayImage is a single-channel row-major raster with values in [0, 1].
type grayImage struct {
	pixels []float64
	width  int
	height int
}

// loadGray opens an image file and converts it to a gray raster.
func loadGray(path string, verbose bool) (*grayImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input image: %w", err)
	}

	g := fromImage(img)
	if verbose {
		log.Printf("Input image: %dx%d pixels", g.width, g.height)
	}
	return g, nil
}

// fromImage converts img to a gray raster.
func fromImage(img image.Image) *grayImage {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	g := &grayImage{
		pixels: make([]float64, bounds.Dx()*bounds.Dy()),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	for y := range g.height {
		row := gray.Pix[y*gray.Stride:]
		for x := range g.width {
			g.pixels[y*g.width+x] = float64(row[x*bytesPerPixel]) / maxPixelValue
		}
	}
	return g
}

// toImage converts g to an opaque gray image. With normalize set the
// range of g is stretched to full scale; otherwise values are clamped to
// [0, 1].
func (g *grayImage) toImage(normalize bool) *image.NRGBA {
	lo, hi := 0.0, 1.0
	if normalize && len(g.pixels) > 0 {
		lo, hi = floats.Min(g.pixels), floats.Max(g.pixels)
		if hi == lo {
			hi = lo + 1
		}
	}

	img := imaging.New(g.width, g.height, color.NRGBA{A: opaque})
	for y := range g.height {
		row := img.Pix[y*img.Stride:]
		for x := range g.width {
			v := (g.pixels[y*g.width+x] - lo) / (hi - lo)
			b := uint8(math.Min(math.Max(v, 0), 1)*maxPixelValue + roundingOffset)
			p := row[x*bytesPerPixel : (x+1)*bytesPerPixel]
			p[0], p[1], p[2], p[alphaChannel] = b, b, b, opaque
		}
	}
	return img
}

// saveGray writes g to path. The format follows the file extension.
func saveGray(path string, g *grayImage, normalize bool) error {
	if err := imaging.Save(g.toImage(normalize), path); err != nil {
		return fmt.Errorf("failed to save output image: %w", err)
	}
	return nil
}

// parseSize parses a "WIDTHxHEIGHT" size.
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

// brightnessScale returns the factor that restores input pixel values
// after a spectral resample, which preserves the image sum along every
// downsampled axis.
func brightnessScale(inWidth, inHeight, outWidth, outHeight int) float64 {
	minArea := min(inWidth, outWidth) * min(inHeight, outHeight)
	return float64(minArea) / float64(inWidth*inHeight)
}

// lanczosReference resizes g with a Lanczos filter for comparison.
func lanczosReference(g *grayImage, width, height int) *grayImage {
	resized := imaging.Resize(g.toImage(false), width, height, imaging.Lanczos)
	return fromImage(resized)
}

// rmsDifference returns the root-mean-square difference of two rasters of
// equal size.
func rmsDifference(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}
