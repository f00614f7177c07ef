package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on the given design matrix and targets.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for the given inputs as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// UncertaintyPredictor is the interface for models whose predictions carry a
// predictive variance, such as Gaussian process surrogates.
type UncertaintyPredictor interface {
	Predictor

	// PredictWithUncertainty returns the predictive mean and variance for the
	// given inputs, both as n×1 matrices.
	PredictWithUncertainty(X mat.Matrix) (mean, variance mat.Matrix, err error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces implemented by regression models.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// Transformer is the interface for stateful data transformations such as
// input scalers.
type Transformer interface {
	// Fit learns the transformation parameters from the data.
	Fit(X mat.Matrix) error
	// Transform applies the learned transformation.
	Transform(X mat.Matrix) (mat.Matrix, error)
	// InverseTransform reverses the learned transformation.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}
