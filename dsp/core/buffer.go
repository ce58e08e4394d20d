package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Reverse returns a new slice holding src in reverse order.
func Reverse(src []float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return out
}

// ReverseInPlace reverses buf.
func ReverseInPlace(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// ZeroPad returns a new slice with before zeros, src, then after zeros.
// Negative pad widths are treated as zero.
func ZeroPad(src []float64, before, after int) []float64 {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	out := make([]float64, before+len(src)+after)
	copy(out[before:], src)
	return out
}

// Scaled returns a new slice holding src multiplied by scale.
func Scaled(src []float64, scale float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v * scale
	}
	return out
}
