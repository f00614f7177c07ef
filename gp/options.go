package gp

import (
	"github.com/yildizanil/emugo/pkg/log"
)

// Option is a function that configures a GaussianProcessRegressor.
type Option func(*GaussianProcessRegressor)

// WithKernel sets the correlation kernel. Default is Matern52.
func WithKernel(k Kernel) Option {
	return func(g *GaussianProcessRegressor) {
		g.kernel = k
	}
}

// WithLengthScale fixes the correlation length-scale on the unit hypercube
// instead of selecting it by profile likelihood.
func WithLengthScale(l float64) Option {
	return func(g *GaussianProcessRegressor) {
		g.fixedLengthScale = l
	}
}

// WithNugget fixes the nugget (relative diagonal regularization) instead of
// selecting it by profile likelihood.
func WithNugget(eta float64) Option {
	return func(g *GaussianProcessRegressor) {
		g.fixedNugget = eta
	}
}

// WithLogger sets the logger used for fit diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(g *GaussianProcessRegressor) {
		g.logger = logger
	}
}
