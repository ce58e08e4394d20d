package viscoelastic

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by model validation.
var (
	ErrInvalidTau      = errors.New("viscoelastic: relaxation time must be > 0")
	ErrNegativeModulus = errors.New("viscoelastic: moduli must be >= 0")
)

// Model holds standard linear solid parameters.
type Model struct {
	G0  float64 // equilibrium modulus
	G1  float64 // relaxing modulus
	Tau float64 // relaxation time
}

// DefaultModel returns the reference parameters G0=0.15, G1=0.5, Tau=100.
func DefaultModel() Model {
	return Model{G0: 0.15, G1: 0.5, Tau: 100}
}

// SLS evaluates g0 + g1*exp(-t/tau).
func SLS(t, g0, g1, tau float64) float64 {
	return g0 + g1*math.Exp(-t/tau)
}

// Validate reports whether the parameters describe a physical solid.
func (m Model) Validate() error {
	if !(m.Tau > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTau, m.Tau)
	}
	if m.G0 < 0 || m.G1 < 0 {
		return fmt.Errorf("%w: G0=%v G1=%v", ErrNegativeModulus, m.G0, m.G1)
	}
	return nil
}

// Relaxation evaluates the relaxation modulus G(t).
func (m Model) Relaxation(t float64) float64 {
	return SLS(t, m.G0, m.G1, m.Tau)
}

// Instantaneous returns G(0) = G0 + G1.
func (m Model) Instantaneous() float64 {
	return m.G0 + m.G1
}

// Relaxed returns the long-time modulus G0.
func (m Model) Relaxed() float64 {
	return m.G0
}

// Sample evaluates G on every point of ts.
func (m Model) Sample(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = m.Relaxation(t)
	}
	return out
}

// StepResponse returns the stress at time t for an ideal unit strain step
// applied at on and removed at off. Smoothed steps converge to this value
// once t is a few transition widths away from both edges.
func (m Model) StepResponse(t, on, off float64) float64 {
	stress := 0.0
	if t >= on {
		stress += m.Relaxation(t - on)
	}
	if t >= off {
		stress -= m.Relaxation(t - off)
	}
	return stress
}

// String implements fmt.Stringer.
func (m Model) String() string {
	return fmt.Sprintf("SLS(G0=%g, G1=%g, Tau=%g)", m.G0, m.G1, m.Tau)
}
