// Package viscoelastic provides the standard linear solid (SLS) relaxation
// model used as a convolution kernel for stress response.
//
// The SLS relaxation modulus is
//
//	G(t) = G0 + G1 * exp(-t / Tau)
//
// It starts at the instantaneous modulus G0+G1 and relaxes toward the
// equilibrium modulus G0. Stress under an arbitrary strain history e(t) is
// the hereditary integral
//
//	sigma(t) = ∫ G(t - s) de/ds ds
//
// which package conv evaluates numerically on a sampled grid.
package viscoelastic
