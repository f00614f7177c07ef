package borehole

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/pkg/errors"
)

// Dataset pairs a design matrix with the simulator outputs for its rows.
// A Dataset is built once and never mutated afterwards; the row index is the
// sample identity used by leave-one-out validation.
type Dataset struct {
	// X is the n×8 design matrix in canonical field order.
	X *mat.Dense
	// Y holds the flow rate for each row of X.
	Y *mat.VecDense
}

// NewDataset evaluates the simulator on every row of the design and returns
// the assembled dataset. The design is copied, so later changes to X do not
// affect the dataset.
func NewDataset(X mat.Matrix) (*Dataset, error) {
	y, err := EvaluateAll(X)
	if err != nil {
		return nil, err
	}

	n, d := X.Dims()
	xc := mat.NewDense(n, d, nil)
	xc.Copy(X)

	return &Dataset{X: xc, Y: y}, nil
}

// Len returns the number of samples in the dataset.
func (d *Dataset) Len() int {
	n, _ := d.X.Dims()
	return n
}

// Sample returns the parameter vector and flow rate at index i.
func (d *Dataset) Sample(i int) (ParameterVector, float64, error) {
	n := d.Len()
	if i < 0 || i >= n {
		return ParameterVector{}, 0, errors.NewValueError("Dataset.Sample", "index out of range")
	}
	p, err := FromRow(d.X.RawRowView(i))
	if err != nil {
		return ParameterVector{}, 0, err
	}
	return p, d.Y.AtVec(i), nil
}
