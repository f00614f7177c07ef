package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/pkg/errors"
)

func TestMinMaxScalerFitTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 100,
		5, 150,
		10, 200,
	})

	scaler := NewMinMaxScaler()
	Xs, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	want := mat.NewDense(3, 2, []float64{
		0, 0,
		0.5, 0.5,
		1, 1,
	})
	if !mat.EqualApprox(Xs, want, 1e-12) {
		t.Errorf("FitTransform() = %v, want %v", mat.Formatted(Xs), mat.Formatted(want))
	}
}

func TestMinMaxScalerInverseRoundTrip(t *testing.T) {
	X := mat.NewDense(4, 3, []float64{
		0.05, 100, 63070,
		0.15, 50000, 115600,
		0.08, 20000, 90000,
		0.12, 30000, 70000,
	})

	scaler := NewMinMaxScaler()
	Xs, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	back, err := scaler.InverseTransform(Xs)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}
	if !mat.EqualApprox(back, X, 1e-9) {
		t.Errorf("InverseTransform(Transform(X)) != X:\n%v", mat.Formatted(back))
	}
}

func TestMinMaxScalerConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewMinMaxScaler()
	Xs, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if Xs.At(i, 0) != 0 {
			t.Errorf("constant column transformed to %v, want 0", Xs.At(i, 0))
		}
	}
}

func TestMinMaxScalerFromBounds(t *testing.T) {
	scaler, err := NewMinMaxScalerFromBounds([]float64{0, 10}, []float64{1, 20})
	if err != nil {
		t.Fatalf("NewMinMaxScalerFromBounds() error = %v", err)
	}
	if !scaler.IsFitted() {
		t.Fatal("scaler from bounds is not fitted")
	}

	X := mat.NewDense(1, 2, []float64{0.5, 15})
	Xs, err := scaler.Transform(X)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if math.Abs(Xs.At(0, 0)-0.5) > 1e-12 || math.Abs(Xs.At(0, 1)-0.5) > 1e-12 {
		t.Errorf("Transform() = (%v, %v), want (0.5, 0.5)", Xs.At(0, 0), Xs.At(0, 1))
	}

	if _, err := NewMinMaxScalerFromBounds([]float64{1}, []float64{1}); err == nil {
		t.Error("NewMinMaxScalerFromBounds() with empty interval: error = nil")
	}
	if _, err := NewMinMaxScalerFromBounds([]float64{1, 2}, []float64{3}); err == nil {
		t.Error("NewMinMaxScalerFromBounds() with mismatched lengths: error = nil")
	}
}

func TestMinMaxScalerErrors(t *testing.T) {
	scaler := NewMinMaxScaler()

	_, err := scaler.Transform(mat.NewDense(1, 2, nil))
	if err == nil {
		t.Fatal("Transform() before Fit: error = nil, want NotFittedError")
	}
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("Transform() error = %v, want *NotFittedError", err)
	}

	if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	_, err = scaler.Transform(mat.NewDense(1, 3, nil))
	if err == nil {
		t.Fatal("Transform() with wrong width: error = nil, want DimensionError")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("Transform() error = %v, want *DimensionError", err)
	}
}
