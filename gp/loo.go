package gp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/pkg/errors"
)

// LeaveOneOut returns, for every training sample i, the posterior mean and
// variance the surrogate would predict for sample i had it been excluded from
// fitting. The results align one-to-one with the training order.
//
// The computation uses the closed-form identity
//
//	mu_i  = y_i - alpha_i / [R^{-1}]_ii
//	var_i = sigma² / [R^{-1}]_ii
//
// which is algebraically equivalent to refitting n times with the
// hyperparameters held fixed, at the cost of a single matrix inverse.
func (g *GaussianProcessRegressor) LeaveOneOut() (mean, variance *mat.VecDense, err error) {
	if !g.IsFitted() {
		return nil, nil, errors.NewNotFittedError("GaussianProcessRegressor", "LeaveOneOut")
	}

	n := g.yTrain.Len()

	var rInv mat.SymDense
	if err := g.chol.InverseTo(&rInv); err != nil {
		return nil, nil, errors.NewModelError("GaussianProcessRegressor.LeaveOneOut", "inverse failed", err)
	}

	mean = mat.NewVecDense(n, nil)
	variance = mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		aii := rInv.At(i, i)
		if aii <= 0 {
			return nil, nil, errors.NewNumericalInstabilityError("loo_precision", []float64{aii}, i)
		}
		mean.SetVec(i, g.yTrain.AtVec(i)-g.alpha.AtVec(i)/aii)
		variance.SetVec(i, g.sigma2/aii)
	}

	return mean, variance, nil
}
