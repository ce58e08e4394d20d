package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampIndex limits i to the inclusive range [lo, hi].
func ClampIndex(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Gradient returns the sample-wise derivative of x with respect to index,
// using central differences in the interior and one-sided differences at the
// edges. For a time grid this yields the local step width at every sample.
// A single sample has gradient 0.
func Gradient(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	out[0] = x[1] - x[0]
	out[n-1] = x[n-1] - x[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = (x[i+1] - x[i-1]) / 2
	}
	return out
}

// Trapezoid integrates y over the abscissa x using the trapezoidal rule.
// Extra samples in the longer slice are ignored.
func Trapezoid(y, x []float64) float64 {
	n := len(y)
	if len(x) < n {
		n = len(x)
	}

	sum := 0.0
	for i := 1; i < n; i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	return sum
}

// MinMax returns the smallest and largest value in data.
// Both are NaN for empty input.
func MinMax(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN()
	}

	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// NearestIndex returns the index of the sample in the ascending grid ts
// closest to t. Returns -1 for an empty grid.
func NearestIndex(ts []float64, t float64) int {
	if len(ts) == 0 {
		return -1
	}

	lo, hi := 0, len(ts)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if ts[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo > 0 && math.Abs(ts[lo-1]-t) <= math.Abs(ts[lo]-t) {
		return lo - 1
	}
	return lo
}
