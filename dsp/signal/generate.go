// Package signal provides closed-form strain signals built from a logistic
// transition: a smoothed step (strain load) and its analytic derivative
// (strain rate).
package signal

import "math"

// DefaultTransitionTime is the nominal width of a sigmoid transition.
// The logistic steepness is k = 10 / transition.
const DefaultTransitionTime = 10.0

// Generator evaluates sigmoid-based signals with a fixed transition width.
type Generator struct {
	transition float64
	k          float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithTransitionTime sets the transition width. Non-positive values keep
// the default.
func WithTransitionTime(transition float64) Option {
	return func(g *Generator) {
		if transition > 0 {
			g.transition = transition
		}
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{transition: DefaultTransitionTime}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.k = 10.0 / g.transition
	return g
}

var defaultGenerator = NewGenerator()

// TransitionTime returns the configured transition width.
func (g *Generator) TransitionTime() float64 {
	return g.transition
}

// Steepness returns the logistic steepness k.
func (g *Generator) Steepness() float64 {
	return g.k
}

// Sigmoid evaluates 1 / (1 + exp(-k t)).
func (g *Generator) Sigmoid(t float64) float64 {
	return 1 / (1 + math.Exp(-g.k*t))
}

// SigmoidGrad evaluates f(t-on) * (1 - f(t-on)) with f the sigmoid, a bump
// centred on the onset time. For k = 1 this is the exact derivative of the
// shifted sigmoid.
func (g *Generator) SigmoidGrad(t, on float64) float64 {
	fx := g.Sigmoid(t - on)
	return fx * (1 - fx)
}

// StrainLoad samples Sigmoid(t-on) - Sigmoid(t-off) on ts: a smoothed step
// applied at on and removed at off.
func (g *Generator) StrainLoad(ts []float64, on, off float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = g.Sigmoid(t-on) - g.Sigmoid(t-off)
	}
	return out
}

// StrainRate samples SigmoidGrad(t, on) - SigmoidGrad(t, off) on ts: a
// positive bump at on and a negative bump at off.
func (g *Generator) StrainRate(ts []float64, on, off float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = g.SigmoidGrad(t, on) - g.SigmoidGrad(t, off)
	}
	return out
}

// Sigmoid evaluates the logistic function with the default transition width.
func Sigmoid(t float64) float64 {
	return defaultGenerator.Sigmoid(t)
}

// SigmoidGrad evaluates the onset bump with the default transition width.
func SigmoidGrad(t, on float64) float64 {
	return defaultGenerator.SigmoidGrad(t, on)
}
