package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Causal approximates the hereditary integral ∫ kernel(τ)·signal(t-τ) dτ on
// the signal grid. It computes the full convolution of kernel and signal,
// keeps the first len(signal) samples, and multiplies them elementwise by
// step, the local grid spacing (core.Gradient of the time grid).
func Causal(kernel, signal, step []float64, method Method) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(step) != len(signal) {
		return nil, fmt.Errorf("%w: step has %d samples, signal %d", ErrLengthMismatch, len(step), len(signal))
	}

	full, err := ConvolveWith(kernel, signal, method)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	vecmath.MulBlock(out, full[:len(signal)], step)
	return out, nil
}
