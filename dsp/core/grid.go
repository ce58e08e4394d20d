package core

// Linspace returns n evenly spaced samples over the closed interval
// [start, stop]. The last sample equals stop exactly. A single sample is
// start; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Grid samples the grid described by cfg.
func Grid(cfg GridConfig) []float64 {
	return Linspace(cfg.Start, cfg.Stop, cfg.Samples)
}
