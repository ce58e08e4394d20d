// Package anim drives the slide-and-multiply animation of an SLS stress
// convolution.
//
// A [Scene] precomputes every array once: the time grid, strain load,
// strain rate, relaxation kernel, its padded/reversed sliding form, and the
// convolution result. A [Driver] walks frame indices 1 … N-2 over the scene
// and emits, per frame, only the curves that move:
//
//   - the marker tracing the strain load at (t[i], e[i])
//   - the kernel window padded[2N-i : 3N-i]
//   - the convolution prefix c[0:i]
//   - the product scale * de/dt * window
//
// [Play] connects a driver to a [Display] and an external tick source. The
// driver never controls timing; it only consumes ticks.
package anim
