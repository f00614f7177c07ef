// Standard attribute keys for emulator operations. Using these keys keeps
// log output consistent across packages and makes the resulting JSON easy to
// filter: "design.*" describes the experimental design, "gp.*" the surrogate
// configuration, "metrics.*" the validation results.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "GaussianProcessRegressor", "MinMaxScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "evaluate", "loo"
	OperationKey = "op"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "sampling", "borehole", "gp", "validation"
	ComponentKey = "component"
)

// Experimental design shape.
const (
	// DesignPointsKey is the number of design points (samples) in a dataset.
	DesignPointsKey = "design.points"

	// DesignDimsKey is the number of input dimensions per design point.
	DesignDimsKey = "design.dims"

	// SeedKey records the random seed used to generate a design.
	SeedKey = "design.seed"

	// DesignKindKey names the design generator, "uniform" or "lhs".
	DesignKindKey = "design.kind"
)

// Surrogate configuration and fit diagnostics.
const (
	// KernelKey names the correlation kernel in use.
	KernelKey = "gp.kernel"

	// LengthScaleKey records the fitted correlation length-scale.
	LengthScaleKey = "gp.length_scale"

	// NuggetKey records the fitted nugget (diagonal regularization).
	NuggetKey = "gp.nugget"

	// LogLikelihoodKey records the profile log marginal likelihood at the
	// selected hyperparameters.
	LogLikelihoodKey = "gp.log_likelihood"

	// CandidatesKey records how many hyperparameter candidates were scored.
	CandidatesKey = "gp.candidates"
)

// Validation metrics.
const (
	// RMSEKey records root mean squared error of a prediction set.
	RMSEKey = "metrics.rmse"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// CoverageKey records empirical coverage of predictive intervals.
	CoverageKey = "metrics.coverage"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard attribute value constants for common operations.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationEvaluate  = "evaluate"
	OperationLOO       = "loo"
	OperationGenerate  = "generate"
)
