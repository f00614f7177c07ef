// Package validation compares surrogate predictions against simulator truth.
//
// The central workflow is leave-one-out cross-validation: every sample of a
// dataset is predicted by a surrogate fitted (conceptually) without it, and
// the predictions are tabulated against the true outputs for diagnostics,
// export and plotting.
package validation

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/borehole"
	"github.com/yildizanil/emugo/metrics"
	"github.com/yildizanil/emugo/pkg/errors"
)

// SurrogateFitter is the contract the comparator requires from a surrogate
// model. A fit failure (for example a non-converged hyperparameter search)
// must surface as an error from Fit; the comparator never masks it.
type SurrogateFitter interface {
	// Fit trains the surrogate on the design matrix and targets.
	Fit(X, y mat.Matrix) error

	// LeaveOneOut returns the held-out predictive mean and variance for every
	// training sample, aligned with the training order.
	LeaveOneOut() (mean, variance *mat.VecDense, err error)
}

// Record is one row of the comparison table.
type Record struct {
	Index             int
	Params            borehole.ParameterVector
	Observed          float64
	PredictedMean     float64
	PredictedVariance float64
}

// Table holds the per-sample comparison of true versus predicted flow rate,
// in dataset order.
type Table struct {
	Records []Record
}

// Summary aggregates validation metrics over a comparison table.
type Summary struct {
	RMSE       float64
	MAE        float64
	R2         float64
	Coverage95 float64
}

// Comparator runs leave-one-out validation of a surrogate against a dataset.
type Comparator struct {
	fitter SurrogateFitter
}

// NewComparator creates a comparator around the supplied surrogate. The
// surrogate is injected rather than constructed here, so any implementation
// of SurrogateFitter can be validated.
func NewComparator(fitter SurrogateFitter) *Comparator {
	return &Comparator{fitter: fitter}
}

// Compare fits the surrogate to the dataset, computes leave-one-out
// predictions and returns the per-sample comparison table.
func (c *Comparator) Compare(ds *borehole.Dataset) (*Table, error) {
	if c.fitter == nil {
		return nil, errors.NewValueError("Comparator.Compare", "no surrogate fitter supplied")
	}
	if ds == nil || ds.Len() == 0 {
		return nil, errors.NewModelError("Comparator.Compare", "empty dataset", errors.ErrEmptyData)
	}

	n := ds.Len()

	yCol := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		yCol.Set(i, 0, ds.Y.AtVec(i))
	}

	if err := c.fitter.Fit(ds.X, yCol); err != nil {
		return nil, err
	}

	mean, variance, err := c.fitter.LeaveOneOut()
	if err != nil {
		return nil, err
	}
	if mean.Len() != n {
		return nil, errors.NewDimensionError("Comparator.Compare", n, mean.Len(), 0)
	}
	if variance.Len() != n {
		return nil, errors.NewDimensionError("Comparator.Compare", n, variance.Len(), 0)
	}

	table := &Table{Records: make([]Record, n)}
	for i := 0; i < n; i++ {
		p, obs, err := ds.Sample(i)
		if err != nil {
			return nil, err
		}
		table.Records[i] = Record{
			Index:             i,
			Params:            p,
			Observed:          obs,
			PredictedMean:     mean.AtVec(i),
			PredictedVariance: variance.AtVec(i),
		}
	}

	return table, nil
}

// Observed returns the true outputs of the table as a vector.
func (t *Table) Observed() *mat.VecDense {
	v := mat.NewVecDense(len(t.Records), nil)
	for i, r := range t.Records {
		v.SetVec(i, r.Observed)
	}
	return v
}

// Predicted returns the predictive means of the table as a vector.
func (t *Table) Predicted() *mat.VecDense {
	v := mat.NewVecDense(len(t.Records), nil)
	for i, r := range t.Records {
		v.SetVec(i, r.PredictedMean)
	}
	return v
}

// Variances returns the predictive variances of the table as a vector.
func (t *Table) Variances() *mat.VecDense {
	v := mat.NewVecDense(len(t.Records), nil)
	for i, r := range t.Records {
		v.SetVec(i, r.PredictedVariance)
	}
	return v
}

// Summarize computes aggregate validation metrics over the table.
func (t *Table) Summarize() (Summary, error) {
	if len(t.Records) == 0 {
		return Summary{}, errors.NewValueError("Table.Summarize", "empty table")
	}

	obs := t.Observed()
	pred := t.Predicted()

	rmse, err := metrics.RMSE(obs, pred)
	if err != nil {
		return Summary{}, err
	}
	mae, err := metrics.MAE(obs, pred)
	if err != nil {
		return Summary{}, err
	}
	r2, err := metrics.R2Score(obs, pred)
	if err != nil {
		return Summary{}, err
	}
	cov, err := metrics.Coverage(obs, pred, t.Variances(), 2)
	if err != nil {
		return Summary{}, err
	}

	return Summary{RMSE: rmse, MAE: mae, R2: r2, Coverage95: cov}, nil
}
