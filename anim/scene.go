package anim

import (
	"fmt"

	"github.com/cwbudde/algo-viscoconv/dsp/conv"
	"github.com/cwbudde/algo-viscoconv/dsp/core"
	"github.com/cwbudde/algo-viscoconv/dsp/signal"
)

// Scene holds every precomputed array of the animation. It is immutable
// after construction; accessors return shared slices that callers must not
// modify.
type Scene struct {
	cfg Config

	t          []float64
	load       []float64
	rate       []float64
	scaledRate []float64
	kernel     []float64
	convolved  []float64
	sliding    *conv.Sliding
}

// NewScene computes the signals, kernel and convolution for the given options.
func NewScene(opts ...Option) (*Scene, error) {
	return NewSceneFromConfig(ApplyOptions(opts...))
}

// NewSceneFromConfig computes the signals, kernel and convolution for cfg.
func NewSceneFromConfig(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := signal.NewGenerator(signal.WithTransitionTime(cfg.Transition))
	t := core.Grid(cfg.Grid)

	// The kernel is a function of lag, so it starts at G(0) whatever the
	// grid origin.
	lags := make([]float64, len(t))
	for i, ti := range t {
		lags[i] = ti - t[0]
	}

	s := &Scene{
		cfg:    cfg,
		t:      t,
		load:   gen.StrainLoad(t, cfg.On, cfg.Off),
		rate:   gen.StrainRate(t, cfg.On, cfg.Off),
		kernel: cfg.Model.Sample(lags),
	}
	s.scaledRate = core.Scaled(s.rate, cfg.ProductScale)

	sliding, err := conv.NewSliding(s.kernel)
	if err != nil {
		return nil, fmt.Errorf("anim: sliding kernel: %w", err)
	}
	s.sliding = sliding

	s.convolved, err = conv.Causal(s.kernel, s.rate, core.Gradient(t), cfg.Method)
	if err != nil {
		return nil, fmt.Errorf("anim: convolution: %w", err)
	}

	return s, nil
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config {
	return s.cfg
}

// Len returns the number of grid samples N.
func (s *Scene) Len() int {
	return len(s.t)
}

// Time returns the time grid.
func (s *Scene) Time() []float64 { return s.t }

// StrainLoad returns e(t).
func (s *Scene) StrainLoad() []float64 { return s.load }

// StrainRate returns de/dt(t).
func (s *Scene) StrainRate() []float64 { return s.rate }

// Kernel returns the sampled relaxation modulus G(t).
func (s *Scene) Kernel() []float64 { return s.kernel }

// Convolved returns the stress response, the causal convolution of G with de/dt.
func (s *Scene) Convolved() []float64 { return s.convolved }

// Sliding returns the padded, reversed kernel.
func (s *Scene) Sliding() *conv.Sliding { return s.sliding }

// StaticCurves returns the full-resolution curves that never move.
func (s *Scene) StaticCurves() []Curve {
	return []Curve{
		{ID: CurveLoad, X: s.t, Y: s.load},
		{ID: CurveLoadRate, X: s.t, Y: s.rate},
		{ID: CurveRate, X: s.t, Y: s.rate},
		{ID: CurveKernel, X: s.t, Y: s.kernel},
	}
}

// InitialCurves returns the moving curves as shown before the first frame:
// marker, window and product at frame 1, convolution at t[0]. The trailing
// kernel view starts from the empty window, a single zero at t[0].
func (s *Scene) InitialCurves() []Curve {
	window := s.sliding.Window(1)
	wx, wy := s.t, window
	if s.cfg.KernelView == KernelTrailing {
		wx, wy = s.t[:1], s.sliding.Window(0)[:1]
	}

	return []Curve{
		{ID: CurveMarker, X: s.t[:1], Y: s.load[:1]},
		{ID: CurveWindow, X: wx, Y: wy},
		{ID: CurveConvolution, X: s.t[:1], Y: s.convolved[:1]},
		{ID: CurveProduct, X: s.t[:1], Y: []float64{s.scaledRate[0] * window[0]}},
	}
}
