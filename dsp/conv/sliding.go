package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-viscoconv/dsp/core"
)

// Sliding holds a kernel zero-padded by its own length on both sides and
// reversed, so that frame i of a slide-and-multiply animation is the slice
// padded[2N-i : 3N-i].
type Sliding struct {
	n      int
	padded []float64
}

// NewSliding builds the padded, reversed array (length 3N) for kernel.
func NewSliding(kernel []float64) (*Sliding, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(kernel)
	padded := core.ZeroPad(kernel, n, n)
	core.ReverseInPlace(padded)

	return &Sliding{n: n, padded: padded}, nil
}

// Len returns the kernel length N.
func (s *Sliding) Len() int {
	return s.n
}

// Padded returns the full padded, reversed array of length 3N.
// The slice is shared; callers must not modify it.
func (s *Sliding) Padded() []float64 {
	return s.padded
}

// Frames returns the largest valid frame index, 2N. Valid indices are
// 0 through 2N inclusive.
func (s *Sliding) Frames() int {
	return 2 * s.n
}

// Window returns padded[2N-i : 3N-i], the time-reversed kernel shifted to
// frame i. Element m equals kernel[i-1-m] for 0 <= i-1-m < N and 0
// otherwise. The slice shares storage with the padded array.
// Window panics if i is outside [0, 2N].
func (s *Sliding) Window(i int) []float64 {
	if i < 0 || i > 2*s.n {
		panic(fmt.Sprintf("conv: sliding frame %d out of range [0, %d]", i, 2*s.n))
	}
	return s.padded[2*s.n-i : 3*s.n-i]
}

// WindowTo copies Window(i) into dst, which must have length N.
func (s *Sliding) WindowTo(dst []float64, i int) error {
	if len(dst) != s.n {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, s.n, len(dst))
	}
	copy(dst, s.Window(i))
	return nil
}

// ProductTo writes signal * Window(i) into dst. Callers that apply a
// constant display scale pre-multiply signal once.
func (s *Sliding) ProductTo(dst, signal []float64, i int) error {
	if len(dst) != s.n || len(signal) != s.n {
		return fmt.Errorf("%w: expected %d, got dst=%d signal=%d", ErrLengthMismatch, s.n, len(dst), len(signal))
	}
	vecmath.MulBlock(dst, signal, s.Window(i))
	return nil
}

// Overlap returns Σ signal[m]*Window(i)[m], the convolution sample that
// frame i visualises: it equals full[i-1] for full = Direct(kernel, signal).
func (s *Sliding) Overlap(signal []float64, i int) float64 {
	w := s.Window(i)
	n := len(signal)
	if n > len(w) {
		n = len(w)
	}
	sum := 0.0
	for m := 0; m < n; m++ {
		sum += signal[m] * w[m]
	}
	return sum
}
