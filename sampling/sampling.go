// Package sampling generates experimental designs for the borehole simulator.
//
// All generators draw from an injected RandomSource rather than a package
// global, so a seeded source yields bit-identical designs across runs. The
// draw order is fixed: for each design point the eight fields are drawn in
// the canonical order of borehole.ParamRanges.
package sampling

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/borehole"
	"github.com/yildizanil/emugo/pkg/errors"
)

// RandomSource supplies the random draws consumed by the design generators.
// *rand.Rand from math/rand/v2 satisfies it. A RandomSource must not be
// shared across goroutines while a design is being generated; sequential
// draw order is what makes seeded designs reproducible.
type RandomSource interface {
	// Float64 returns a draw from the uniform distribution on [0, 1).
	Float64() float64
	// IntN returns a uniform draw from {0, ..., n-1}.
	IntN(n int) int
}

// NewSource returns a seeded PCG-backed RandomSource. The same seed always
// produces the same draw sequence.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform draws n parameter vectors independently, each field uniform over
// its documented range. It consumes exactly 8*n draws from src, in canonical
// field order, and returns them as an n×8 design matrix.
func Uniform(n int, src RandomSource) (*mat.Dense, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be a positive integer", n)
	}
	if src == nil {
		return nil, errors.NewValidationError("src", "random source must not be nil", src)
	}

	X := mat.NewDense(n, borehole.NumParams, nil)
	for i := 0; i < n; i++ {
		for j, r := range borehole.ParamRanges {
			X.Set(i, j, r.Min+(r.Max-r.Min)*src.Float64())
		}
	}
	return X, nil
}

// LatinHypercube draws an n-point Latin hypercube design: per dimension the
// range is split into n equal strata, each stratum is hit exactly once, and
// the strata are assigned to design points by a shuffle of src. Space-filling
// designs of this kind are the usual choice when fitting an emulator to a
// small number of expensive simulator runs.
//
// Like Uniform, the draw order is fixed, so a seeded source yields the same
// design every run.
func LatinHypercube(n int, src RandomSource) (*mat.Dense, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be a positive integer", n)
	}
	if src == nil {
		return nil, errors.NewValidationError("src", "random source must not be nil", src)
	}

	X := mat.NewDense(n, borehole.NumParams, nil)
	perm := make([]int, n)
	for j, r := range borehole.ParamRanges {
		for i := range perm {
			perm[i] = i
		}
		// Fisher-Yates using the injected source.
		for i := n - 1; i > 0; i-- {
			k := src.IntN(i + 1)
			perm[i], perm[k] = perm[k], perm[i]
		}
		width := (r.Max - r.Min) / float64(n)
		for i := 0; i < n; i++ {
			u := src.Float64()
			X.Set(i, j, r.Min+(float64(perm[i])+u)*width)
		}
	}
	return X, nil
}
