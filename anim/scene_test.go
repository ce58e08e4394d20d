package anim

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-viscoconv/dsp/conv"
	"github.com/cwbudde/algo-viscoconv/dsp/core"
	"github.com/cwbudde/algo-viscoconv/dsp/viscoelastic"
	"github.com/cwbudde/algo-viscoconv/internal/testutil"
)

func TestNewSceneReference(t *testing.T) {
	s, err := NewScene()
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}

	n := s.Len()
	if n != 2000 {
		t.Fatalf("Len() = %d, want 2000", n)
	}
	for name, arr := range map[string][]float64{
		"time":      s.Time(),
		"load":      s.StrainLoad(),
		"rate":      s.StrainRate(),
		"kernel":    s.Kernel(),
		"convolved": s.Convolved(),
	} {
		if len(arr) != n {
			t.Fatalf("%s: len = %d, want %d", name, len(arr), n)
		}
		testutil.RequireFinite(t, arr)
	}
	if got := len(s.Sliding().Padded()); got != 3*n {
		t.Fatalf("padded len = %d, want %d", got, 3*n)
	}

	m := s.Config().Model
	if s.Kernel()[0] != m.Instantaneous() {
		t.Fatalf("G(0) = %v, want %v", s.Kernel()[0], m.Instantaneous())
	}

	ts := s.Time()
	for _, at := range []float64{450, 900} {
		i := core.NearestIndex(ts, at)
		want := m.StepResponse(ts[i], 150, 500)
		testutil.RequireNearlyEqual(t, "stress", s.Convolved()[i], want, 2e-3)
	}
}

func TestNewSceneShiftedGrid(t *testing.T) {
	const shift = 100
	s, err := NewScene(
		WithGrid(shift, shift+1000, 2000),
		WithOnsets(150+shift, 500+shift),
	)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}

	m := s.Config().Model
	if s.Kernel()[0] != m.Instantaneous() {
		t.Fatalf("kernel[0] = %v, want G(0) = %v", s.Kernel()[0], m.Instantaneous())
	}

	ts := s.Time()
	for _, at := range []float64{450 + shift, 900 + shift} {
		i := core.NearestIndex(ts, at)
		want := m.StepResponse(ts[i], 150+shift, 500+shift)
		testutil.RequireNearlyEqual(t, "stress", s.Convolved()[i], want, 2e-3)
	}

	ref, err := NewScene()
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Kernel(), ref.Kernel(), 1e-12)
}

func TestNewSceneMethodsAgree(t *testing.T) {
	direct, err := NewScene(WithGrid(0, 1000, 500), WithMethod(conv.MethodDirect))
	if err != nil {
		t.Fatal(err)
	}
	fft, err := NewScene(WithGrid(0, 1000, 500), WithMethod(conv.MethodFFT))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, fft.Convolved(), direct.Convolved(), 1e-9)
}

func TestNewSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{name: "two samples", opts: []Option{WithGrid(0, 1, 2)}, want: ErrTooFewSamples},
		{name: "reversed onsets", opts: []Option{WithOnsets(500, 150)}, want: ErrInvalidOnsets},
		{name: "bad tau", opts: []Option{WithModel(viscoelastic.Model{G0: 1, G1: 1})}, want: viscoelastic.ErrInvalidTau},
		{name: "bad method", opts: []Option{WithMethod(conv.Method(9))}, want: conv.ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScene(tt.opts...); !errors.Is(err, tt.want) {
				t.Fatalf("NewScene() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStaticAndInitialCurves(t *testing.T) {
	s, err := NewScene(WithGrid(0, 9, 10))
	if err != nil {
		t.Fatal(err)
	}

	static := s.StaticCurves()
	if len(static) != 4 {
		t.Fatalf("static curves = %d, want 4", len(static))
	}
	for _, c := range static {
		if len(c.X) != 10 || len(c.Y) != 10 {
			t.Fatalf("%v: static curve not full resolution", c.ID)
		}
	}

	initial := s.InitialCurves()
	byID := make(map[CurveID]Curve, len(initial))
	for _, c := range initial {
		if len(c.X) != len(c.Y) {
			t.Fatalf("%v: len(X)=%d len(Y)=%d", c.ID, len(c.X), len(c.Y))
		}
		byID[c.ID] = c
	}

	window := byID[CurveWindow]
	testutil.RequireSliceNearlyEqual(t, window.Y, s.Sliding().Window(1), 0)
	if window.Y[0] != s.Kernel()[0] {
		t.Fatalf("initial window[0] = %v, want G(0)", window.Y[0])
	}

	product := byID[CurveProduct]
	want := DefaultProductScale * s.StrainRate()[0] * s.Kernel()[0]
	if len(product.Y) != 1 || product.Y[0] != want {
		t.Fatalf("initial product = %v, want [%v]", product.Y, want)
	}

	trailing, err := NewScene(WithGrid(0, 9, 10), WithKernelView(KernelTrailing))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range trailing.InitialCurves() {
		if c.ID != CurveWindow {
			continue
		}
		if len(c.Y) != 1 || c.Y[0] != 0 || c.X[0] != trailing.Time()[0] {
			t.Fatalf("trailing initial window = %v at %v, want [0] at t[0]", c.Y, c.X)
		}
	}
}

func TestPresets(t *testing.T) {
	opts, err := PresetShort.Options()
	if err != nil {
		t.Fatal(err)
	}
	cfg := ApplyOptions(opts...)
	if cfg.Grid.Stop != 650 || cfg.Grid.Samples != 6500 || cfg.KernelView != KernelTrailing {
		t.Fatalf("unexpected short preset: %+v", cfg)
	}

	opts, err = PresetReference.Options()
	if err != nil {
		t.Fatal(err)
	}
	if cfg := ApplyOptions(opts...); cfg.Grid != core.DefaultGridConfig() {
		t.Fatalf("unexpected reference grid: %+v", cfg.Grid)
	}

	if _, err := Preset("huge").Options(); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestParseNames(t *testing.T) {
	for _, p := range []TailPolicy{TailStop, TailSlide} {
		if got, err := ParseTailPolicy(p.String()); err != nil || got != p {
			t.Fatalf("ParseTailPolicy(%q) = %v, %v", p, got, err)
		}
	}
	for _, v := range []KernelView{KernelFull, KernelTrailing} {
		if got, err := ParseKernelView(v.String()); err != nil || got != v {
			t.Fatalf("ParseKernelView(%q) = %v, %v", v, got, err)
		}
	}
	if _, err := ParseTailPolicy("bounce"); !errors.Is(err, ErrUnknownTail) {
		t.Fatalf("expected ErrUnknownTail, got %v", err)
	}
	if _, err := ParseKernelView("mirror"); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
}

func TestCurveMetadata(t *testing.T) {
	if Curves() != 8 {
		t.Fatalf("Curves() = %d, want 8", Curves())
	}
	if CurveProduct.Panel() != PanelResult || CurveWindow.Panel() != PanelSlide {
		t.Fatal("unexpected panel assignment")
	}
	if CurveKernel.Label() != "G_SLS(t)" || CurveMarker.Label() != "" {
		t.Fatal("unexpected labels")
	}
	if len(Panels()) != 4 {
		t.Fatalf("Panels() = %v", Panels())
	}
}
