package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fftresampler"
)

func writeTestPNG(t *testing.T, width, height int, shade func(x, y int) uint8) string {
	t.Helper()
	img := imaging.New(width, height, color.Black)
	for y := range height {
		for x := range width {
			v := shade(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "input.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestLoadGray_FileNotFound(t *testing.T) {
	_, err := loadGray("/nonexistent/file.png", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input image")
}

func TestLoadGray_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadGray(path, false)
	require.Error(t, err)
}

func TestLoadSaveGray_RoundTrip(t *testing.T) {
	path := writeTestPNG(t, 6, 4, func(x, y int) uint8 { return uint8(x*40 + y*10) })

	g, err := loadGray(path, false)
	require.NoError(t, err)
	require.Equal(t, 6, g.width)
	require.Equal(t, 4, g.height)
	assert.InDelta(t, 0.0, g.pixels[0], 1e-12)
	assert.InDelta(t, float64(5*40+3*10)/255, g.pixels[3*6+5], 1e-12)

	out := filepath.Join(t.TempDir(), "output.png")
	require.NoError(t, saveGray(out, g, false))

	back, err := loadGray(out, false)
	require.NoError(t, err)
	assert.Equal(t, g.pixels, back.pixels)
}

func TestToImage_Normalize(t *testing.T) {
	g := &grayImage{pixels: []float64{-1, 0, 1, 3}, width: 2, height: 2}

	clamped := g.toImage(false)
	assert.Equal(t, uint8(0), clamped.Pix[0])
	assert.Equal(t, uint8(255), clamped.Pix[2*bytesPerPixel])
	assert.Equal(t, uint8(255), clamped.Pix[3*bytesPerPixel])

	stretched := g.toImage(true)
	assert.Equal(t, uint8(0), stretched.Pix[0])
	assert.Equal(t, uint8(64), stretched.Pix[bytesPerPixel])
	assert.Equal(t, uint8(255), stretched.Pix[3*bytesPerPixel])
	assert.Equal(t, uint8(255), stretched.Pix[alphaChannel])

	flat := &grayImage{pixels: []float64{0.5, 0.5}, width: 2, height: 1}
	assert.NotPanics(t, func() { flat.toImage(true) })
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int
		wantErr bool
	}{
		{"640x480", 640, 480, false},
		{" 16X9 ", 16, 9, false},
		{"640", 0, 0, true},
		{"ax480", 0, 0, true},
		{"640xb", 0, 0, true},
		{"0x480", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := parseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestOutputSize(t *testing.T) {
	src := &grayImage{width: 101, height: 50}

	w, h, err := outputSize(src, "", 2)
	require.NoError(t, err)
	assert.Equal(t, 202, w)
	assert.Equal(t, 100, h)

	w, h, err = outputSize(src, "", 0.001)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	w, h, err = outputSize(src, "30x20", 2)
	require.NoError(t, err)
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)

	_, _, err = outputSize(src, "", -1)
	assert.Error(t, err)
}

func TestBrightnessScale(t *testing.T) {
	assert.InDelta(t, 1.0, brightnessScale(8, 8, 16, 16), 1e-15)
	assert.InDelta(t, 0.25, brightnessScale(8, 8, 4, 4), 1e-15)
	assert.InDelta(t, 0.5, brightnessScale(8, 8, 16, 4), 1e-15)
}

func TestResampleGray_PreservesBrightness(t *testing.T) {
	src := &grayImage{pixels: make([]float64, 16*12), width: 16, height: 12}
	for i := range src.pixels {
		src.pixels[i] = 0.4
	}

	for _, size := range [][2]int{{32, 24}, {8, 6}, {20, 7}} {
		dst, info, err := resampleGray(src, &fftresampler.Config{
			InputWidth: 16, InputHeight: 12,
			OutputWidth: size[0], OutputHeight: size[1],
			Threads: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, size[0], info.OutputWidth)
		for i, v := range dst.pixels {
			assert.InDelta(t, 0.4, v, 1e-9, "size %v pixel %d", size, i)
		}
	}
}

func TestLanczosReference(t *testing.T) {
	src := &grayImage{pixels: make([]float64, 8*8), width: 8, height: 8}
	for i := range src.pixels {
		src.pixels[i] = 0.6
	}

	ref := lanczosReference(src, 16, 4)
	assert.Equal(t, 16, ref.width)
	assert.Equal(t, 4, ref.height)
	for _, v := range ref.pixels {
		assert.InDelta(t, 0.6, v, 1.0/255)
	}
	assert.InDelta(t, 0.0, rmsDifference(ref.pixels, ref.pixels), 1e-15)
	assert.InDelta(t, 0.5, rmsDifference([]float64{0, 1}, []float64{0.5, 0.5}), 1e-15)
}

func TestRunDemo(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runDemo(&out))
	assert.Contains(t, out.String(), "Impulse Response")
	assert.Contains(t, out.String(), "Demo Complete")
}
