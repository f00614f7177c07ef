// Package emugo provides Gaussian process emulation of expensive
// deterministic simulators, exercised end to end on the borehole water-flow
// equation.
//
// An emulator (or surrogate) is a cheap statistical approximation of a
// simulator's input-output mapping. The typical workflow is:
//
//  1. Generate a space-filling design over the simulator's input ranges
//     (sampling).
//  2. Run the simulator at every design point (borehole).
//  3. Fit a GP surrogate to the resulting dataset (gp).
//  4. Validate the surrogate by leave-one-out cross-validation (validation).
//
// # Quick start
//
//	src := sampling.NewSource(1)
//	X, err := sampling.LatinHypercube(50, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := borehole.NewDataset(X)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	surrogate := gp.NewGaussianProcessRegressor()
//	table, err := validation.NewComparator(surrogate).Compare(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, _ := table.Summarize()
//	fmt.Printf("LOO RMSE: %.3f\n", summary.RMSE)
//
// # Packages
//
//   - borehole: the ground-truth simulator (parameter vector, response
//     function, dataset assembly)
//   - sampling: deterministic, seedable design generators (uniform, Latin
//     hypercube)
//   - gp: the Gaussian process surrogate (kernels, fitting, prediction,
//     closed-form leave-one-out)
//   - validation: comparison tables, CSV export, scatter plots, k-fold
//     splitting
//   - metrics: regression and calibration metrics
//   - preprocessing: input scaling
//   - core/model, core/parallel, pkg/errors, pkg/log: shared estimator
//     scaffolding
//
// All randomness flows through injected sources; given the same seed and
// design size, every run produces bit-identical datasets.
package emugo
