package viscoelastic

import (
	"errors"
	"math"
	"testing"
)

func TestSLSEndpoints(t *testing.T) {
	if got := SLS(0, 0.15, 0.5, 100); got != 0.65 {
		t.Fatalf("SLS(0) = %v, want 0.65", got)
	}

	m := DefaultModel()
	if got := m.Relaxation(0); got != m.Instantaneous() {
		t.Fatalf("Relaxation(0) = %v, want %v", got, m.Instantaneous())
	}
	if got := m.Relaxation(1e5); math.Abs(got-m.Relaxed()) > 1e-12 {
		t.Fatalf("Relaxation(inf) = %v, want %v", got, m.Relaxed())
	}
}

func TestRelaxationDecreasing(t *testing.T) {
	m := DefaultModel()
	prev := m.Relaxation(0)
	for x := 1.0; x < 2000; x += 7 {
		v := m.Relaxation(x)
		if v > prev {
			t.Fatalf("G(%v) = %v increased from %v", x, v, prev)
		}
		if v < m.Relaxed() {
			t.Fatalf("G(%v) = %v below relaxed modulus", x, v)
		}
		prev = v
	}
}

func TestRelaxationTimeConstant(t *testing.T) {
	m := DefaultModel()
	want := m.G0 + m.G1/math.E
	if got := m.Relaxation(m.Tau); math.Abs(got-want) > 1e-15 {
		t.Fatalf("G(tau) = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		m    Model
		want error
	}{
		{name: "default", m: DefaultModel()},
		{name: "zero tau", m: Model{G0: 1, G1: 1, Tau: 0}, want: ErrInvalidTau},
		{name: "nan tau", m: Model{G0: 1, G1: 1, Tau: math.NaN()}, want: ErrInvalidTau},
		{name: "negative modulus", m: Model{G0: -1, G1: 1, Tau: 1}, want: ErrNegativeModulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSample(t *testing.T) {
	m := Model{G0: 1, G1: 1, Tau: 1}
	got := m.Sample([]float64{0, 1})
	if got[0] != 2 || math.Abs(got[1]-(1+1/math.E)) > 1e-15 {
		t.Fatalf("Sample() = %v", got)
	}
}

func TestStepResponse(t *testing.T) {
	m := DefaultModel()
	tests := []struct {
		t    float64
		want float64
	}{
		{t: 100, want: 0},
		{t: 150, want: m.Instantaneous()},
		{t: 450, want: m.Relaxation(300)},
		{t: 900, want: m.Relaxation(750) - m.Relaxation(400)},
	}

	for _, tt := range tests {
		if got := m.StepResponse(tt.t, 150, 500); math.Abs(got-tt.want) > 1e-15 {
			t.Fatalf("StepResponse(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	// Long after removal the stress returns to the relaxed level times zero strain.
	if got := m.StepResponse(1e5, 150, 500); math.Abs(got) > 1e-12 {
		t.Fatalf("StepResponse(inf) = %v, want 0", got)
	}
}
