// Package gp implements Gaussian process regression for emulating
// deterministic simulators.
//
// The surrogate uses a separable correlation structure: a one-dimensional
// correlation function is applied per input dimension and the results are
// multiplied. Inputs are rescaled to the unit hypercube before fitting, so a
// single length-scale is shared across dimensions.
package gp

import (
	"math"
)

// Kernel is a one-dimensional correlation function. Corr must return 1 at
// h = 0 and decay monotonically with distance; kernels are combined across
// dimensions by multiplication.
type Kernel interface {
	// Name returns the kernel identifier used in logs and errors.
	Name() string
	// Corr returns the correlation between two points separated by distance
	// h >= 0, for the given length-scale.
	Corr(h, lengthScale float64) float64
}

// Matern52 is the Matern correlation with smoothness 5/2, the standard
// choice for emulating smooth deterministic simulators.
type Matern52 struct{}

func (Matern52) Name() string { return "matern52" }

func (Matern52) Corr(h, lengthScale float64) float64 {
	r := math.Sqrt(5) * h / lengthScale
	return (1 + r + r*r/3) * math.Exp(-r)
}

// Matern32 is the Matern correlation with smoothness 3/2. Once
// differentiable; a rougher alternative to Matern52.
type Matern32 struct{}

func (Matern32) Name() string { return "matern32" }

func (Matern32) Corr(h, lengthScale float64) float64 {
	r := math.Sqrt(3) * h / lengthScale
	return (1 + r) * math.Exp(-r)
}

// RBF is the squared-exponential (Gaussian) correlation. Infinitely smooth,
// which can make the correlation matrix ill-conditioned for dense designs.
type RBF struct{}

func (RBF) Name() string { return "rbf" }

func (RBF) Corr(h, lengthScale float64) float64 {
	r := h / lengthScale
	return math.Exp(-0.5 * r * r)
}

// prodCorr returns the separable product correlation between two points.
func prodCorr(k Kernel, a, b []float64, lengthScale float64) float64 {
	c := 1.0
	for d := range a {
		c *= k.Corr(math.Abs(a[d]-b[d]), lengthScale)
	}
	return c
}
