package conv

import "github.com/cwbudde/algo-viscoconv/dsp/core"

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is convolution with the second input reversed, which is
// why the sliding kernel reverses its padded array: sliding the reversed
// kernel turns the correlation picture into a convolution.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Convolve(a, core.Reverse(b))
}

// CorrelateDirect computes cross-correlation using direct computation.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Direct(a, core.Reverse(b))
}

// LagFromIndex converts a correlation output index to a lag value.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
