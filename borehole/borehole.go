// Package borehole implements the borehole water-flow simulator used as the
// ground truth for emulation experiments.
//
// The response function computes the flow rate of water through a borehole
// drilled from the ground surface through two aquifers. It is a standard
// benchmark for emulator validation: cheap to evaluate exactly, yet nonlinear
// enough to exercise a surrogate.
package borehole

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/core/parallel"
	"github.com/yildizanil/emugo/pkg/errors"
)

// NumParams is the input dimension of the simulator.
const NumParams = 8

// Range is a closed interval of physically documented parameter values.
type Range struct {
	Name string
	Min  float64
	Max  float64
}

// ParamRanges lists the documented range of every input parameter, in the
// canonical field order used throughout the library. Design generators draw
// fields in exactly this order.
var ParamRanges = [NumParams]Range{
	{Name: "radiusBorehole", Min: 0.05, Max: 0.15},
	{Name: "radiusInfluence", Min: 100, Max: 50000},
	{Name: "transUpper", Min: 63070, Max: 115600},
	{Name: "potUpper", Min: 990, Max: 1110},
	{Name: "transLower", Min: 63.1, Max: 116},
	{Name: "potLower", Min: 700, Max: 820},
	{Name: "lengthBorehole", Min: 1120, Max: 1680},
	{Name: "condBorehole", Min: 9855, Max: 12045},
}

// ParameterVector holds one input point of the simulator. Fields follow the
// canonical order of ParamRanges.
type ParameterVector struct {
	RadiusBorehole  float64 // radius of borehole [m]
	RadiusInfluence float64 // radius of influence [m]
	TransUpper      float64 // transmissivity of upper aquifer [m²/yr]
	PotUpper        float64 // potentiometric head of upper aquifer [m]
	TransLower      float64 // transmissivity of lower aquifer [m²/yr]
	PotLower        float64 // potentiometric head of lower aquifer [m]
	LengthBorehole  float64 // length of borehole [m]
	CondBorehole    float64 // hydraulic conductivity of borehole [m/yr]
}

// FromRow builds a ParameterVector from a row in canonical field order.
func FromRow(row []float64) (ParameterVector, error) {
	if len(row) != NumParams {
		return ParameterVector{}, errors.NewDimensionError("borehole.FromRow", NumParams, len(row), 1)
	}
	return ParameterVector{
		RadiusBorehole:  row[0],
		RadiusInfluence: row[1],
		TransUpper:      row[2],
		PotUpper:        row[3],
		TransLower:      row[4],
		PotLower:        row[5],
		LengthBorehole:  row[6],
		CondBorehole:    row[7],
	}, nil
}

// Row returns the parameter values in canonical field order.
func (p ParameterVector) Row() []float64 {
	return []float64{
		p.RadiusBorehole,
		p.RadiusInfluence,
		p.TransUpper,
		p.PotUpper,
		p.TransLower,
		p.PotLower,
		p.LengthBorehole,
		p.CondBorehole,
	}
}

// Validate checks that every field lies within its documented range.
func (p ParameterVector) Validate() error {
	row := p.Row()
	for i, r := range ParamRanges {
		if row[i] < r.Min || row[i] > r.Max {
			return errors.NewDomainError("borehole.Validate", r.Name, row[i],
				"outside the documented range")
		}
	}
	return nil
}

// FlowRate evaluates the borehole equation and returns the water flow rate
// in m³/yr. The function is pure: the same input always yields the same
// output.
//
// It returns a DomainError if the radius of influence does not exceed the
// borehole radius (the log term would be non-positive) and a ValueError if a
// denominator term vanishes. Neither can occur for inputs inside the
// documented ranges.
func FlowRate(p ParameterVector) (float64, error) {
	if p.RadiusInfluence <= p.RadiusBorehole {
		return 0, errors.NewDomainError("borehole.FlowRate", "radiusInfluence", p.RadiusInfluence,
			"must exceed radiusBorehole")
	}

	lnTerm := math.Log(p.RadiusInfluence / p.RadiusBorehole)

	d1 := lnTerm * p.RadiusBorehole * p.RadiusBorehole * p.CondBorehole
	if d1 == 0 {
		return 0, errors.NewValueError("borehole.FlowRate", "borehole conductance term is zero")
	}
	if p.TransLower == 0 {
		return 0, errors.NewValueError("borehole.FlowRate", "transLower is zero")
	}

	numerator := 2 * math.Pi * p.TransUpper * (p.PotUpper - p.PotLower)
	term1 := 2 * p.LengthBorehole * p.TransUpper / d1
	term2 := p.TransUpper / p.TransLower

	denominator := lnTerm * (1 + term1 + term2)
	if denominator == 0 {
		return 0, errors.NewValueError("borehole.FlowRate", "denominator is zero")
	}

	flow := numerator / denominator
	if err := errors.CheckScalar("borehole.FlowRate", flow, 0); err != nil {
		return 0, err
	}
	return flow, nil
}

// evalThreshold is the design size below which EvaluateAll stays sequential.
const evalThreshold = 512

// EvaluateAll applies the response function to every row of X and returns the
// flow rates as a vector aligned with the row order. Rows are independent, so
// large designs are evaluated in parallel; the result does not depend on
// evaluation order.
func EvaluateAll(X mat.Matrix) (*mat.VecDense, error) {
	n, d := X.Dims()
	if n == 0 {
		return nil, errors.NewModelError("borehole.EvaluateAll", "empty data", errors.ErrEmptyData)
	}
	if d != NumParams {
		return nil, errors.NewDimensionError("borehole.EvaluateAll", NumParams, d, 1)
	}

	y := make([]float64, n)
	errs := make([]error, n)

	parallel.ParallelizeWithThreshold(n, evalThreshold, func(start, end int) {
		row := make([]float64, NumParams)
		for i := start; i < end; i++ {
			for j := 0; j < NumParams; j++ {
				row[j] = X.At(i, j)
			}
			p, err := FromRow(row)
			if err != nil {
				errs[i] = err
				continue
			}
			y[i], errs[i] = FlowRate(p)
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating sample %d", i)
		}
	}

	return mat.NewVecDense(n, y), nil
}
