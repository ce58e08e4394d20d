// Package response summarises stress curves: extrema, level statistics,
// deviation from a reference curve and settling time.
package response

import "math"

// Summary holds statistics of a sampled curve.
type Summary struct {
	Length        int
	Mean          float64
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Variance      float64
	ZeroCrossings int
}

// Summarize computes all statistics in a single pass. Mean and variance use
// Welford's update.
func Summarize(curve []float64) Summary {
	n := len(curve)
	if n == 0 {
		return Summary{}
	}

	var (
		mean, m2      float64
		sumSq         float64
		maxVal        = curve[0]
		maxPos        int
		minVal        = curve[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range curve {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal, maxPos = x, i
		}
		if x < minVal {
			minVal, minPos = x, i
		}

		if i > 0 && curve[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	return Summary{
		Length:        n,
		Mean:          mean,
		RMS:           math.Sqrt(sumSq / nf),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Variance:      m2 / nf,
		ZeroCrossings: zeroCrossings,
	}
}

// Deviation describes how far a curve is from a reference.
type Deviation struct {
	MaxAbs    float64
	MaxAbsPos int
	RMS       float64
}

// Compare returns the deviation of got from want over their common length.
func Compare(got, want []float64) Deviation {
	n := min(len(got), len(want))
	if n == 0 {
		return Deviation{}
	}

	var d Deviation
	var sumSq float64
	for i := 0; i < n; i++ {
		e := got[i] - want[i]
		sumSq += e * e
		if a := math.Abs(e); a > d.MaxAbs {
			d.MaxAbs, d.MaxAbsPos = a, i
		}
	}
	d.RMS = math.Sqrt(sumSq / float64(n))
	return d
}

// Settling returns the first index from which curve stays within tol of
// target up to its end, or -1 if the last sample is outside tol.
func Settling(curve []float64, target, tol float64) int {
	idx := -1
	for i := len(curve) - 1; i >= 0; i-- {
		if math.Abs(curve[i]-target) > tol {
			break
		}
		idx = i
	}
	return idx
}
