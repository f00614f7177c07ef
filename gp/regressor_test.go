package gp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/pkg/errors"
)

// sineData returns n points of y = sin(2*pi*x) on an even grid over [0, 1].
func sineData(n int) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		X.Set(i, 0, x)
		y.Set(i, 0, math.Sin(2*math.Pi*x))
	}
	return X, y
}

func TestGaussianProcessRegressorInterpolates(t *testing.T) {
	X, y := sineData(15)

	g := NewGaussianProcessRegressor()
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	pred, err := g.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	for i := 0; i < 15; i++ {
		if diff := math.Abs(pred.At(i, 0) - y.At(i, 0)); diff > 1e-2 {
			t.Errorf("training point %d: predicted %v, want %v (diff %v)",
				i, pred.At(i, 0), y.At(i, 0), diff)
		}
	}

	score, err := g.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score < 0.99 {
		t.Errorf("Score() = %v, want >= 0.99", score)
	}
}

func TestGaussianProcessRegressorGeneralizes(t *testing.T) {
	X, y := sineData(15)

	g := NewGaussianProcessRegressor()
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Held-out points between the training grid nodes.
	const m = 10
	Xtest := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		Xtest.Set(i, 0, (float64(i)+0.5)/float64(m))
	}

	pred, err := g.Predict(Xtest)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	for i := 0; i < m; i++ {
		want := math.Sin(2 * math.Pi * Xtest.At(i, 0))
		if diff := math.Abs(pred.At(i, 0) - want); diff > 0.05 {
			t.Errorf("x = %v: predicted %v, want %v (diff %v)",
				Xtest.At(i, 0), pred.At(i, 0), want, diff)
		}
	}
}

func TestPredictWithUncertainty(t *testing.T) {
	X, y := sineData(15)

	g := NewGaussianProcessRegressor()
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	Xq := mat.NewDense(2, 1, []float64{0.5, 5.0})
	_, variance, err := g.PredictWithUncertainty(Xq)
	if err != nil {
		t.Fatalf("PredictWithUncertainty() error = %v", err)
	}

	atTrain := variance.At(0, 0)
	farAway := variance.At(1, 0)
	if atTrain < 0 || farAway < 0 {
		t.Fatalf("negative variance: train %v, extrapolation %v", atTrain, farAway)
	}
	if atTrain >= farAway {
		t.Errorf("variance at a training point (%v) should be below the extrapolation variance (%v)",
			atTrain, farAway)
	}
}

func TestFitDeterminism(t *testing.T) {
	X, y := sineData(15)

	g1 := NewGaussianProcessRegressor()
	g2 := NewGaussianProcessRegressor()
	if err := g1.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if err := g2.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	ls1, nug1, _ := g1.Hyperparameters()
	ls2, nug2, _ := g2.Hyperparameters()
	if ls1 != ls2 || nug1 != nug2 {
		t.Errorf("repeated fits diverge: (%v, %v) vs (%v, %v)", ls1, nug1, ls2, nug2)
	}

	ll1, _ := g1.LogLikelihood()
	ll2, _ := g2.LogLikelihood()
	if ll1 != ll2 {
		t.Errorf("repeated fits give different likelihoods: %v vs %v", ll1, ll2)
	}
}

func TestFixedHyperparameters(t *testing.T) {
	X, y := sineData(10)

	g := NewGaussianProcessRegressor(
		WithKernel(Matern32{}),
		WithLengthScale(0.4),
		WithNugget(1e-6),
	)
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	ls, nug, err := g.Hyperparameters()
	if err != nil {
		t.Fatalf("Hyperparameters() error = %v", err)
	}
	if ls != 0.4 {
		t.Errorf("lengthScale = %v, want 0.4", ls)
	}
	if nug != 1e-6 {
		t.Errorf("nugget = %v, want 1e-6", nug)
	}
}

func TestRegressorNotFitted(t *testing.T) {
	g := NewGaussianProcessRegressor()
	X := mat.NewDense(1, 1, []float64{0.5})

	var nfe *errors.NotFittedError

	if _, err := g.Predict(X); !errors.As(err, &nfe) {
		t.Errorf("Predict() before Fit: error = %v, want NotFittedError", err)
	}
	if _, _, err := g.PredictWithUncertainty(X); !errors.As(err, &nfe) {
		t.Errorf("PredictWithUncertainty() before Fit: error = %v, want NotFittedError", err)
	}
	if _, err := g.LogLikelihood(); !errors.As(err, &nfe) {
		t.Errorf("LogLikelihood() before Fit: error = %v, want NotFittedError", err)
	}
	if _, _, err := g.Hyperparameters(); !errors.As(err, &nfe) {
		t.Errorf("Hyperparameters() before Fit: error = %v, want NotFittedError", err)
	}
}

func TestFitValidation(t *testing.T) {
	tests := []struct {
		name string
		X    *mat.Dense
		y    *mat.Dense
	}{
		{
			name: "length mismatch",
			X:    mat.NewDense(4, 1, []float64{0, 0.3, 0.6, 1}),
			y:    mat.NewDense(3, 1, []float64{0, 1, 2}),
		},
		{
			name: "y not a column",
			X:    mat.NewDense(3, 1, []float64{0, 0.5, 1}),
			y:    mat.NewDense(3, 2, nil),
		},
		{
			name: "too few samples",
			X:    mat.NewDense(2, 1, []float64{0, 1}),
			y:    mat.NewDense(2, 1, []float64{0, 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGaussianProcessRegressor()
			if err := g.Fit(tt.X, tt.y); err == nil {
				t.Error("Fit() error = nil, want error")
			}
			if g.IsFitted() {
				t.Error("estimator reports fitted after a failed Fit")
			}
		})
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	X, y := sineData(10)

	g := NewGaussianProcessRegressor()
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	var de *errors.DimensionError
	if _, err := g.Predict(mat.NewDense(2, 3, nil)); !errors.As(err, &de) {
		t.Errorf("Predict() with wrong width: error = %v, want DimensionError", err)
	}
}

func TestFitRejectsNonFiniteTargets(t *testing.T) {
	X, _ := sineData(5)
	y := mat.NewDense(5, 1, []float64{0, 1, math.NaN(), 1, 0})

	g := NewGaussianProcessRegressor()
	if err := g.Fit(X, y); err == nil {
		t.Error("Fit() with NaN target: error = nil, want error")
	}
}
