package fftresampler

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fftresampler/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func newTestResampler(t *testing.T, inWidth, inHeight, outWidth, outHeight int) *Resampler {
	t.Helper()
	r, err := New(&Config{
		InputWidth:   inWidth,
		InputHeight:  inHeight,
		OutputWidth:  outWidth,
		OutputHeight: outHeight,
		Threads:      2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{InputWidth: 64, InputHeight: 32, OutputWidth: 128, OutputHeight: 16}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero input width", func(c *Config) { c.InputWidth = 0 }, true},
		{"negative input height", func(c *Config) { c.InputHeight = -4 }, true},
		{"zero output height", func(c *Config) { c.OutputHeight = 0 }, true},
		{"too large", func(c *Config) { c.OutputWidth = maxDimension + 1 }, true},
		{"negative threads", func(c *Config) { c.Threads = -1 }, true},
		{"too many threads", func(c *Config) { c.Threads = maxThreads + 1 }, true},
		{"negative queue", func(c *Config) { c.QueueSize = -1 }, true},
		{"unknown window", func(c *Config) { c.Window = WindowFunction(99) }, true},
		{"negative inset", func(c *Config) { c.Window, c.TukeyInsetSize = WindowTukey, -1 }, true},
		{"NaN inset", func(c *Config) { c.TukeyInsetSize = math.NaN() }, true},
		{"tukey with inset", func(c *Config) { c.Window, c.TukeyInsetSize = WindowTukey, 48 }, false},
		{"single pixel", func(c *Config) { *c = Config{InputWidth: 1, InputHeight: 1, OutputWidth: 1, OutputHeight: 1} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(&Config{InputWidth: 8, InputHeight: 8})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("defaults", func(t *testing.T) {
		r, err := New(&Config{InputWidth: 48, InputHeight: 32, OutputWidth: 24, OutputHeight: 64})
		require.NoError(t, err)
		defer r.Close()

		info := r.GetInfo()
		assert.Equal(t, runtime.NumCPU(), info.Threads)
		assert.Equal(t, 48, info.FFTWidth)
		assert.Equal(t, 64, info.FFTHeight)
		assert.Equal(t, "rectangular", info.Window)
		assert.Equal(t, "fft-spectral-remap", info.Algorithm)
		assert.NotEmpty(t, info.SIMDType)
		assert.Equal(t, int64((25*32+13*64)*bytesPerComplex128), info.MemoryUsage)

		assert.Equal(t, 48, r.InputWidth())
		assert.Equal(t, 32, r.InputHeight())
		assert.Equal(t, 24, r.OutputWidth())
		assert.Equal(t, 64, r.OutputHeight())
	})
}

func TestResample_SameSizeIsIdentity(t *testing.T) {
	sizes := [][2]int{{8, 8}, {7, 5}, {16, 9}, {1, 6}, {5, 1}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			r := newTestResampler(t, w, h, w, h)

			input := make([]float64, w*h)
			for i := range input {
				input[i] = math.Sin(float64(i)*0.7) + float64(i%3)
			}
			want := append([]float64(nil), input...)

			output := make([]float64, w*h)
			require.NoError(t, r.Resample(input, output))
			testutil.AssertSlicesInDelta(t, want, output, testutil.RoundTripTolerance)
		})
	}
}

func TestResample_ImpulseUpsample(t *testing.T) {
	r := newTestResampler(t, 8, 8, 16, 16)
	input := testutil.ImpulseImage(8, 8, 4, 4, 100)
	output := make([]float64, 16*16)

	require.NoError(t, r.Resample(input, output))

	// The sum grows by the area ratio: outSum * minArea / outArea == A.
	sum := floats.Sum(output)
	assert.InDelta(t, 400.0, sum, 1e-9)
	assert.InDelta(t, 100.0, sum*64/256, 1e-9)

	peak := floats.MaxIdx(output)
	assert.Equal(t, 8, peak%16, "peak column")
	assert.Equal(t, 8, peak/16, "peak row")
	assert.InDelta(t, 87.5, output[peak], 1e-9)
}

func TestResample_ImpulseOffCenter(t *testing.T) {
	r := newTestResampler(t, 8, 8, 16, 16)
	input := testutil.ImpulseImage(8, 8, 2, 3, 100)
	output := make([]float64, 16*16)

	require.NoError(t, r.Resample(input, output))

	peak := floats.MaxIdx(output)
	assert.Equal(t, 4, peak%16)
	assert.Equal(t, 6, peak/16)
	assert.InDelta(t, 400.0, floats.Sum(output), 1e-9)
}

func TestResample_DownsamplePreservesSum(t *testing.T) {
	r := newTestResampler(t, 8, 8, 4, 4)
	input := testutil.ImpulseImage(8, 8, 4, 4, 100)
	output := make([]float64, 4*4)

	require.NoError(t, r.Resample(input, output))

	assert.InDelta(t, 100.0, floats.Sum(output), 1e-9)
	assert.InDelta(t, 100.0, output[2*4+2], 1e-9)
}

func TestResample_BandLimited(t *testing.T) {
	waves := [][3]float64{{1, 1, 0.5}, {2, 0, 0.25}, {0, 1, 0.3}}

	sizes := []struct{ inW, inH, outW, outH int }{
		{8, 8, 16, 16},
		{7, 5, 12, 10},
		{8, 6, 13, 9},
		{6, 6, 10, 14},
	}

	for _, s := range sizes {
		t.Run(fmt.Sprintf("%dx%d-%dx%d", s.inW, s.inH, s.outW, s.outH), func(t *testing.T) {
			source := testutil.CosineImage(s.inW, s.inH, 1.5, waves...)

			up := newTestResampler(t, s.inW, s.inH, s.outW, s.outH)
			upsampled := make([]float64, s.outW*s.outH)
			require.NoError(t, up.Resample(append([]float64(nil), source...), upsampled))

			// Upsampling interpolates the band-limited image exactly.
			want := testutil.CosineImage(s.outW, s.outH, 1.5, waves...)
			testutil.AssertSlicesInDelta(t, want, upsampled, testutil.RoundTripTolerance)

			// Downsampling back returns the source scaled by the area ratio.
			down := newTestResampler(t, s.outW, s.outH, s.inW, s.inH)
			back := make([]float64, s.inW*s.inH)
			require.NoError(t, down.Resample(upsampled, back))

			ratio := float64(s.inW*s.inH) / float64(s.outW*s.outH)
			floats.Scale(ratio, back)
			testutil.AssertSlicesInDelta(t, source, back, testutil.RoundTripTolerance)
		})
	}
}

func TestResample_NonFiniteInput(t *testing.T) {
	r := newTestResampler(t, 8, 8, 12, 10)

	input := testutil.CosineImage(8, 8, 1, [3]float64{1, 0, 1})
	input[0] = math.NaN()
	input[9] = math.Inf(1)
	input[30] = math.Inf(-1)
	output := make([]float64, 12*10)

	require.NoError(t, r.Resample(input, output))

	testutil.AssertNoNaNOrInf(t, output)
	assert.Zero(t, input[0])
	assert.Zero(t, input[9])
	assert.Zero(t, input[30])
}

func TestResample_BufferSize(t *testing.T) {
	r := newTestResampler(t, 8, 8, 4, 4)

	err := r.Resample(make([]float64, 63), make([]float64, 16))
	require.ErrorIs(t, err, ErrBufferSize)

	err = r.Resample(make([]float64, 64), make([]float64, 17))
	require.ErrorIs(t, err, ErrBufferSize)
}

func TestRemapSpectrum_NyquistColumn(t *testing.T) {
	src := make([]complex128, 5*4)
	for i := range src {
		src[i] = complex(float64(i+1), 0)
	}

	t.Run("narrower input drops it", func(t *testing.T) {
		dst := make([]complex128, 9*4)
		remapSpectrum(dst, src, 8, 4, 16, 4)
		for y := range 4 {
			assert.Zero(t, dst[y*9+4], "row %d", y)
			assert.Zero(t, dst[y*9+8], "row %d", y)
		}
	})

	t.Run("narrower odd-width input drops its top column", func(t *testing.T) {
		odd := make([]complex128, 3*4)
		for i := range odd {
			odd[i] = complex(float64(i+1), 0)
		}
		dst := make([]complex128, 5*4)
		remapSpectrum(dst, odd, 5, 4, 8, 4)
		// Equal heights keep every row in place.
		for y := range 4 {
			assert.InDelta(t, real(odd[y*3])/20, real(dst[y*5]), 1e-15, "row %d", y)
			assert.InDelta(t, real(odd[y*3+1])/20, real(dst[y*5+1]), 1e-15, "row %d", y)
			for x := 2; x < 5; x++ {
				assert.Zero(t, dst[y*5+x], "row %d col %d", y, x)
			}
		}
	})

	t.Run("width-1 input copies nothing", func(t *testing.T) {
		single := []complex128{1, 2, 3, 4}
		dst := make([]complex128, 3*4)
		remapSpectrum(dst, single, 1, 4, 4, 4)
		for i, v := range dst {
			assert.Zero(t, v, "bin %d", i)
		}
	})

	t.Run("wider input carries it", func(t *testing.T) {
		dst := make([]complex128, 3*4)
		remapSpectrum(dst, src, 8, 4, 4, 4)
		for y := range 4 {
			assert.InDelta(t, real(src[y*5+4])/16, real(dst[y*3+2]), 1e-15, "row %d", y)
		}
	})
}

func TestErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrBufferSize, ErrInvalidConfig))
	assert.False(t, errors.Is(ErrFinished, ErrBufferSize))
}

func BenchmarkResample(b *testing.B) {
	sizes := []struct{ in, out int }{{256, 512}, {512, 256}, {500, 720}}

	for _, s := range sizes {
		b.Run(fmt.Sprintf("%d-%d", s.in, s.out), func(b *testing.B) {
			r, err := New(&Config{InputWidth: s.in, InputHeight: s.in, OutputWidth: s.out, OutputHeight: s.out, Threads: 1})
			if err != nil {
				b.Fatal(err)
			}
			defer r.Close()

			input := testutil.CosineImage(s.in, s.in, 0, [3]float64{3, 5, 1})
			output := make([]float64, s.out*s.out)
			for b.Loop() {
				if err := r.Resample(input, output); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
