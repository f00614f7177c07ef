// Package preprocessing provides data transformations applied before model
// fitting.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/core/model"
	"github.com/yildizanil/emugo/pkg/errors"
)

// MinMaxScaler rescales each feature to [0, 1] using the per-column minimum
// and maximum observed during Fit. Gaussian process surrogates in this
// library fit on the unit hypercube, so their length-scales are comparable
// across input dimensions with very different physical units.
type MinMaxScaler struct {
	model.BaseEstimator

	// DataMin holds the per-feature minimum seen during Fit.
	DataMin []float64

	// DataMax holds the per-feature maximum seen during Fit.
	DataMax []float64

	// NFeatures is the number of features.
	NFeatures int
}

var _ model.Transformer = (*MinMaxScaler)(nil)

// NewMinMaxScaler creates a new, unfitted MinMaxScaler.
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// NewMinMaxScalerFromBounds creates a scaler pre-fitted to known feature
// bounds, such as the documented parameter ranges of a simulator. mins and
// maxs must have equal length.
func NewMinMaxScalerFromBounds(mins, maxs []float64) (*MinMaxScaler, error) {
	if len(mins) == 0 {
		return nil, errors.NewModelError("MinMaxScaler", "empty bounds", errors.ErrEmptyData)
	}
	if len(mins) != len(maxs) {
		return nil, errors.NewDimensionError("MinMaxScaler", len(mins), len(maxs), 1)
	}
	for j := range mins {
		if maxs[j] <= mins[j] {
			return nil, errors.NewValueError("MinMaxScaler", "each upper bound must exceed its lower bound")
		}
	}

	s := &MinMaxScaler{
		DataMin:   append([]float64(nil), mins...),
		DataMax:   append([]float64(nil), maxs...),
		NFeatures: len(mins),
	}
	s.SetFitted()
	return s, nil
}

// Fit learns the per-column minimum and maximum from X.
func (s *MinMaxScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.DataMin = make([]float64, c)
	s.DataMax = make([]float64, c)

	for j := 0; j < c; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < r; i++ {
			v := X.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		s.DataMin[j] = lo
		s.DataMax[j] = hi
	}

	s.SetFitted()
	return nil
}

// Transform maps X onto the unit hypercube using the fitted bounds. Columns
// with zero observed width map to 0.
func (s *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		width := s.DataMax[j] - s.DataMin[j]
		for i := 0; i < r; i++ {
			if width == 0 {
				out.Set(i, j, 0)
				continue
			}
			out.Set(i, j, (X.At(i, j)-s.DataMin[j])/width)
		}
	}
	return out, nil
}

// InverseTransform maps unit-hypercube values back to the original scale.
func (s *MinMaxScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		width := s.DataMax[j] - s.DataMin[j]
		for i := 0; i < r; i++ {
			out.Set(i, j, s.DataMin[j]+X.At(i, j)*width)
		}
	}
	return out, nil
}

// FitTransform fits the scaler to X and transforms it in one step.
func (s *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
