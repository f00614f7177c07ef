// Package metrics provides evaluation metrics for emulator validation.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/pkg/errors"
)

// MSE computes the mean squared error between true and predicted values.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between true and predicted values.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error between true and predicted values.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination.
// Returns an error when the true values have zero variance.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		d := yTrue.AtVec(i) - yMean
		tss += d * d
		r := yTrue.AtVec(i) - yPred.AtVec(i)
		rss += r * r
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "true values have zero variance")
	}

	return 1 - rss/tss, nil
}

// Coverage computes the fraction of true values falling inside the predictive
// interval mean ± k·sd. For a well-calibrated emulator, k = 2 should cover
// roughly 95% of held-out samples.
func Coverage(yTrue, predMean, predVariance *mat.VecDense, k float64) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Coverage", "empty vector")
	}

	if predMean.Len() != n {
		return 0, errors.NewDimensionError("Coverage", n, predMean.Len(), 0)
	}
	if predVariance.Len() != n {
		return 0, errors.NewDimensionError("Coverage", n, predVariance.Len(), 0)
	}
	if k <= 0 {
		return 0, errors.NewValueError("Coverage", "interval width k must be positive")
	}

	hits := 0
	for i := 0; i < n; i++ {
		v := predVariance.AtVec(i)
		if v < 0 {
			return 0, errors.NewValueError("Coverage", "negative predictive variance")
		}
		half := k * math.Sqrt(v)
		if math.Abs(yTrue.AtVec(i)-predMean.AtVec(i)) <= half {
			hits++
		}
	}

	return float64(hits) / float64(n), nil
}
