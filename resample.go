package fftresampler

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/tphakala/go-fftresampler/fft"
	"github.com/tphakala/go-fftresampler/internal/window"
	"github.com/tphakala/simd/cpu"
)

// WindowFunction selects the apodization applied to input images.
type WindowFunction = window.Function

// Window functions accepted in Config.Window.
const (
	WindowRectangular     = window.Rectangular
	WindowTukey           = window.Tukey
	WindowHann            = window.Hann
	WindowHamming         = window.Hamming
	WindowBlackmanNuttall = window.BlackmanNuttall
	WindowBlackmanHarris  = window.BlackmanHarris
	WindowGaussian        = window.Gaussian
	WindowKaiser          = window.Kaiser
)

// ParseWindow returns the window function with the given name, for
// example "tukey" or "blackman-harris".
func ParseWindow(name string) (WindowFunction, error) {
	return window.Parse(name)
}

// Config holds resampler configuration. All dimensions are fixed for the
// lifetime of the resampler.
type Config struct {
	// InputWidth and InputHeight are the input grid size in pixels.
	InputWidth  int
	InputHeight int

	// OutputWidth and OutputHeight are the output grid size in pixels.
	OutputWidth  int
	OutputHeight int

	// Threads is the number of worker goroutines serving AddTask.
	// Set to 0 to use one worker per CPU.
	Threads int

	// QueueSize is the number of tasks that can be queued before AddTask
	// blocks. Set to 0 to use the number of workers.
	QueueSize int

	// Window is applied to every input image before its forward transform.
	// WindowRectangular (the zero value) disables windowing.
	Window WindowFunction

	// TukeyInsetSize is the width in pixels of the flat part of a Tukey
	// window. Ignored by the other window functions.
	TukeyInsetSize float64

	// CorrectWindow divides every output image by the resampled window,
	// undoing the attenuation of the taper.
	CorrectWindow bool

	// Verbose enables debug logging of each transform.
	Verbose bool

	// Logger receives debug output when Verbose is set.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Common errors returned by the resampler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid resampler configuration")

	// ErrBufferSize indicates an image buffer that does not match the
	// configured grid size.
	ErrBufferSize = errors.New("image buffer size mismatch")

	// ErrFinished indicates a task submitted after Finish and before Start.
	ErrFinished = errors.New("resampler task queue is finished")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputWidth < 1 || c.InputHeight < 1 {
		return fmt.Errorf("%w: input size %dx%d must be positive", ErrInvalidConfig, c.InputWidth, c.InputHeight)
	}

	if c.OutputWidth < 1 || c.OutputHeight < 1 {
		return fmt.Errorf("%w: output size %dx%d must be positive", ErrInvalidConfig, c.OutputWidth, c.OutputHeight)
	}

	if max(c.InputWidth, c.InputHeight, c.OutputWidth, c.OutputHeight) > maxDimension {
		return fmt.Errorf("%w: image dimensions exceed %d pixels", ErrInvalidConfig, maxDimension)
	}

	if c.Threads < 0 || c.Threads > maxThreads {
		return fmt.Errorf("%w: threads must be 0-%d", ErrInvalidConfig, maxThreads)
	}

	if c.QueueSize < 0 {
		return fmt.Errorf("%w: queue size must not be negative", ErrInvalidConfig)
	}

	if !c.Window.Valid() {
		return fmt.Errorf("%w: unknown window function %v", ErrInvalidConfig, c.Window)
	}

	if c.TukeyInsetSize < 0 || math.IsNaN(c.TukeyInsetSize) || math.IsInf(c.TukeyInsetSize, 0) {
		return fmt.Errorf("%w: tukey inset size must be a non-negative number", ErrInvalidConfig)
	}

	return nil
}

// Resampler changes the pixel grid size of images by truncating or
// zero-padding their spectra.
//
// Images are submitted with AddTask and processed by a pool of workers, or
// resampled synchronously with Resample. A Resampler is safe for concurrent
// use. Input images are modified in place: non-finite samples are zeroed
// and the window is applied.
type Resampler struct {
	config Config
	logger *slog.Logger

	// Immutable transform plans shared by all workers.
	inToF  *fft.Plan
	fToOut *fft.Plan

	fftWidth  int
	fftHeight int

	windowOnce sync.Once
	windows    windowCache

	// lifecycleMu serializes Start and Finish; poolMu guards pool against
	// concurrent AddTask calls.
	lifecycleMu sync.Mutex
	poolMu      sync.RWMutex
	pool        *taskPool
}

// New creates a resampler and starts its worker pool.
func New(config *Config) (*Resampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	r := &Resampler{
		config:    *config,
		logger:    newLogger(config),
		inToF:     fft.NewPlan(config.InputWidth, config.InputHeight),
		fToOut:    fft.NewPlan(config.OutputWidth, config.OutputHeight),
		fftWidth:  max(config.InputWidth, config.OutputWidth),
		fftHeight: max(config.InputHeight, config.OutputHeight),
	}

	if r.config.Threads == 0 {
		r.config.Threads = runtime.NumCPU()
	}
	if r.config.QueueSize == 0 {
		r.config.QueueSize = r.config.Threads
	}

	r.logger.Debug("created resampler",
		"input_width", r.config.InputWidth,
		"input_height", r.config.InputHeight,
		"output_width", r.config.OutputWidth,
		"output_height", r.config.OutputHeight,
		"threads", r.config.Threads,
		"window", r.config.Window.String())

	r.Start()
	return r, nil
}

func newLogger(config *Config) *slog.Logger {
	if !config.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}

// InputWidth returns the input grid width in pixels.
func (r *Resampler) InputWidth() int { return r.config.InputWidth }

// InputHeight returns the input grid height in pixels.
func (r *Resampler) InputHeight() int { return r.config.InputHeight }

// OutputWidth returns the output grid width in pixels.
func (r *Resampler) OutputWidth() int { return r.config.OutputWidth }

// OutputHeight returns the output grid height in pixels.
func (r *Resampler) OutputHeight() int { return r.config.OutputHeight }

// Info describes a resampler instance.
type Info struct {
	// Algorithm describes the resampling algorithm in use.
	Algorithm string

	InputWidth, InputHeight   int
	OutputWidth, OutputHeight int

	// FFTWidth and FFTHeight are the larger of the input and output size
	// per axis.
	FFTWidth, FFTHeight int

	// Threads is the number of pool workers.
	Threads int

	// Window is the configured window function.
	Window string

	// MemoryUsage is the approximate per-task spectrum memory in bytes.
	MemoryUsage int64

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// GetInfo returns information about the resampler.
func (r *Resampler) GetInfo() Info {
	spectra := r.inToF.SpectrumLen() + r.fToOut.SpectrumLen()
	return Info{
		Algorithm:    "fft-spectral-remap",
		InputWidth:   r.config.InputWidth,
		InputHeight:  r.config.InputHeight,
		OutputWidth:  r.config.OutputWidth,
		OutputHeight: r.config.OutputHeight,
		FFTWidth:     r.fftWidth,
		FFTHeight:    r.fftHeight,
		Threads:      r.config.Threads,
		Window:       r.config.Window.String(),
		MemoryUsage:  int64(spectra * bytesPerComplex128),
		SIMDType:     cpu.Info(),
	}
}

func (r *Resampler) checkBuffers(input, output []float64) error {
	if want := r.config.InputWidth * r.config.InputHeight; len(input) != want {
		return fmt.Errorf("%w: input has %d samples, want %d", ErrBufferSize, len(input), want)
	}
	if want := r.config.OutputWidth * r.config.OutputHeight; len(output) != want {
		return fmt.Errorf("%w: output has %d samples, want %d", ErrBufferSize, len(output), want)
	}
	return nil
}
