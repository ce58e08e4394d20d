// Package conv provides full-mode linear convolution, correlation, and the
// padded/reversed sliding kernel used to visualise convolution frame by frame.
//
// The package offers two convolution strategies:
//
//   - Direct convolution: Simple O(N*M) time-domain convolution, best for short kernels (< 64 samples)
//   - Overlap-add (OLA): FFT-based block convolution, efficient for long signals with long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)                 // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)                   // Force direct convolution
//	result, err := conv.ConvolveWith(signal, kernel, MethodFFT)  // Force overlap-add
//
// A hereditary integral ∫ kernel(τ)·signal(t-τ) dτ sampled on a grid is the
// full convolution truncated to the signal length and scaled by the local
// grid step:
//
//	stress, err := conv.Causal(kernel, rate, core.Gradient(t), conv.MethodAuto)
//
// # Sliding kernel
//
// [NewSliding] zero-pads a kernel of length N with N zeros on each side and
// reverses the result. Frame i of the slide-and-multiply picture is then a
// plain slice of the padded array:
//
//	window := s.Window(i) // padded[2N-i : 3N-i], length N
//
// Element m of the window equals kernel[i-1-m] for m < i and 0 otherwise,
// so summing signal*window over the grid reproduces output sample i-1 of
// the full convolution.
//
// # Algorithm Selection
//
// The [Convolve] function automatically selects the algorithm based on kernel size:
//   - Kernel length <= 64: Direct convolution
//   - Kernel length > 64: FFT-based overlap-add
package conv
