package anim

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-viscoconv/dsp/conv"
	"github.com/cwbudde/algo-viscoconv/dsp/core"
	"github.com/cwbudde/algo-viscoconv/dsp/signal"
	"github.com/cwbudde/algo-viscoconv/dsp/viscoelastic"
)

// Errors returned by scene construction.
var (
	ErrTooFewSamples = errors.New("anim: grid needs at least 3 samples")
	ErrInvalidOnsets = errors.New("anim: strain removal must follow application")
	ErrUnknownPreset = errors.New("anim: unknown preset")
	ErrUnknownTail   = errors.New("anim: unknown tail policy")
	ErrUnknownView   = errors.New("anim: unknown kernel view")
)

// DefaultProductScale magnifies the sliding product so it reads next to the
// convolution curve.
const DefaultProductScale = 2.0

// TailPolicy decides what happens once the kernel window reaches the end of
// the grid.
type TailPolicy int

const (
	// TailStop ends the frame sequence at i = N-1.
	TailStop TailPolicy = iota

	// TailSlide keeps sliding the kernel off the grid up to i = 2N-1.
	// Marker and convolution prefix stay at the last sample.
	TailSlide
)

// String implements fmt.Stringer.
func (p TailPolicy) String() string {
	switch p {
	case TailStop:
		return "stop"
	case TailSlide:
		return "slide"
	default:
		return fmt.Sprintf("TailPolicy(%d)", int(p))
	}
}

// ParseTailPolicy converts a name produced by String back to a TailPolicy.
func ParseTailPolicy(name string) (TailPolicy, error) {
	switch name {
	case "stop", "":
		return TailStop, nil
	case "slide":
		return TailSlide, nil
	default:
		return TailStop, fmt.Errorf("%w: %q", ErrUnknownTail, name)
	}
}

// KernelView selects which part of the sliding window is drawn.
type KernelView int

const (
	// KernelFull draws the whole window over the grid.
	KernelFull KernelView = iota

	// KernelTrailing draws only the part of the window behind the current
	// frame, t[0:i].
	KernelTrailing
)

// String implements fmt.Stringer.
func (v KernelView) String() string {
	switch v {
	case KernelFull:
		return "full"
	case KernelTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("KernelView(%d)", int(v))
	}
}

// ParseKernelView converts a name produced by String back to a KernelView.
func ParseKernelView(name string) (KernelView, error) {
	switch name {
	case "full", "":
		return KernelFull, nil
	case "trailing":
		return KernelTrailing, nil
	default:
		return KernelFull, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
}

// Config holds everything needed to build a Scene.
type Config struct {
	Grid         core.GridConfig
	Model        viscoelastic.Model
	On           float64 // strain application time
	Off          float64 // strain removal time
	Transition   float64 // sigmoid transition width
	Repeat       bool
	ProductScale float64
	Method       conv.Method
	Tail         TailPolicy
	KernelView   KernelView
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference animation: 2000 samples over [0, 1000],
// the default SLS model, strain applied at 150 and removed at 500, looping.
func DefaultConfig() Config {
	return Config{
		Grid:         core.DefaultGridConfig(),
		Model:        viscoelastic.DefaultModel(),
		On:           150,
		Off:          500,
		Transition:   signal.DefaultTransitionTime,
		Repeat:       true,
		ProductScale: DefaultProductScale,
		Method:       conv.MethodAuto,
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithGrid sets the sampling interval and sample count.
func WithGrid(start, stop float64, samples int) Option {
	return func(cfg *Config) {
		cfg.Grid = core.GridConfig{Start: start, Stop: stop, Samples: samples}
	}
}

// WithModel sets the SLS kernel parameters.
func WithModel(m viscoelastic.Model) Option {
	return func(cfg *Config) {
		cfg.Model = m
	}
}

// WithOnsets sets the strain application and removal times.
func WithOnsets(on, off float64) Option {
	return func(cfg *Config) {
		cfg.On = on
		cfg.Off = off
	}
}

// WithTransitionTime sets the sigmoid transition width.
func WithTransitionTime(transition float64) Option {
	return func(cfg *Config) {
		if transition > 0 {
			cfg.Transition = transition
		}
	}
}

// WithRepeat restarts the frame sequence after the last frame when true.
func WithRepeat(repeat bool) Option {
	return func(cfg *Config) {
		cfg.Repeat = repeat
	}
}

// WithProductScale sets the display scale of the sliding product.
func WithProductScale(scale float64) Option {
	return func(cfg *Config) {
		cfg.ProductScale = scale
	}
}

// WithMethod selects the convolution algorithm.
func WithMethod(m conv.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithTail sets the end-of-grid policy.
func WithTail(p TailPolicy) Option {
	return func(cfg *Config) {
		cfg.Tail = p
	}
}

// WithKernelView selects how the sliding window is drawn.
func WithKernelView(v KernelView) Option {
	return func(cfg *Config) {
		cfg.KernelView = v
	}
}

// Validate checks the config for values that cannot produce a frame sequence.
func (c Config) Validate() error {
	if c.Grid.Samples < 3 {
		return fmt.Errorf("%w: %d", ErrTooFewSamples, c.Grid.Samples)
	}
	if c.Off < c.On {
		return fmt.Errorf("%w: on=%v off=%v", ErrInvalidOnsets, c.On, c.Off)
	}
	return c.Model.Validate()
}

// Preset names a canned configuration.
type Preset string

const (
	// PresetReference is 2000 samples over [0, 1000].
	PresetReference Preset = "reference"

	// PresetShort is 6500 samples over [0, 650], a slower, finer animation
	// of the loading phase with a trailing kernel view.
	PresetShort Preset = "short"
)

// Options returns the options that make up the preset.
func (p Preset) Options() ([]Option, error) {
	switch p {
	case PresetReference, "":
		return []Option{WithGrid(0, 1000, 2000)}, nil
	case PresetShort:
		return []Option{WithGrid(0, 650, 6500), WithKernelView(KernelTrailing)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
}
