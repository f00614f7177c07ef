package gp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yildizanil/emugo/core/model"
	"github.com/yildizanil/emugo/pkg/errors"
	"github.com/yildizanil/emugo/pkg/log"
	"github.com/yildizanil/emugo/preprocessing"
)

// Default hyperparameter search space, on the unit hypercube.
var (
	defaultLengthScales = logspace(0.03, 3.0, 16)
	defaultNuggets      = []float64{1e-8, 1e-6, 1e-4}
)

// refineIters is the number of golden-section refinement steps applied to the
// length-scale after the coarse candidate search.
const refineIters = 24

// GaussianProcessRegressor is a GP surrogate with a constant mean, a
// separable correlation kernel and a nugget term.
//
// Fit rescales the inputs to the unit hypercube, selects the length-scale and
// nugget by profile log marginal likelihood (process variance and constant
// mean are profiled out in closed form), and caches the Cholesky
// factorization of the correlation matrix for prediction.
type GaussianProcessRegressor struct {
	model.BaseEstimator

	kernel           Kernel
	fixedLengthScale float64
	fixedNugget      float64
	logger           log.Logger

	// Fitted state.
	scaler   *preprocessing.MinMaxScaler
	xTrain   *mat.Dense    // scaled training inputs
	yTrain   *mat.VecDense // training targets
	nFeature int

	chol        mat.Cholesky
	alpha       *mat.VecDense // R^{-1}(y - beta*1)
	beta        float64       // GLS estimate of the constant mean
	sigma2      float64       // profiled process variance
	lengthScale float64
	nugget      float64
	logLik      float64
}

var (
	_ model.Regressor            = (*GaussianProcessRegressor)(nil)
	_ model.UncertaintyPredictor = (*GaussianProcessRegressor)(nil)
)

// NewGaussianProcessRegressor creates a GP surrogate with the given options.
func NewGaussianProcessRegressor(opts ...Option) *GaussianProcessRegressor {
	g := &GaussianProcessRegressor{
		kernel: Matern52{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// candidateState holds the factorized model at one hyperparameter candidate.
type candidateState struct {
	chol   mat.Cholesky
	alpha  *mat.VecDense
	beta   float64
	sigma2 float64
	logLik float64
}

// Fit trains the surrogate on the design X (n×d) and targets y (n×1).
//
// It returns a ConvergenceError if no hyperparameter candidate produces a
// finite profile likelihood; that failure is surfaced, never masked by a
// fallback model.
func (g *GaussianProcessRegressor) Fit(X, y mat.Matrix) error {
	n, d := X.Dims()
	ry, cy := y.Dims()

	if n == 0 || d == 0 {
		return errors.NewModelError("GaussianProcessRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != n {
		return errors.NewDimensionError("GaussianProcessRegressor.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("GaussianProcessRegressor.Fit", "y must be a column vector")
	}
	if n < 3 {
		return errors.NewValueError("GaussianProcessRegressor.Fit", "need at least 3 samples to fit a surrogate")
	}

	scaler := preprocessing.NewMinMaxScaler()
	xsM, err := scaler.FitTransform(X)
	if err != nil {
		return err
	}
	xs := mat.DenseCopyOf(xsM)

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}
	if err := errors.CheckNumericalStability("GaussianProcessRegressor.Fit", yVec.RawVector().Data, 0); err != nil {
		return err
	}

	lengthScales := defaultLengthScales
	if g.fixedLengthScale > 0 {
		lengthScales = []float64{g.fixedLengthScale}
	}
	nuggets := defaultNuggets
	if g.fixedNugget > 0 {
		nuggets = []float64{g.fixedNugget}
	}

	evaluated := 0
	bestLL := math.Inf(-1)
	var best *candidateState
	var bestLS, bestNugget float64

	for _, nug := range nuggets {
		for _, ls := range lengthScales {
			state, err := g.evaluateCandidate(xs, yVec, ls, nug)
			evaluated++
			if err != nil {
				continue
			}
			if state.logLik > bestLL {
				bestLL = state.logLik
				best = state
				bestLS = ls
				bestNugget = nug
			}
		}
	}

	if best == nil {
		return errors.NewConvergenceError("profile likelihood search", evaluated,
			"no hyperparameter candidate produced a finite likelihood")
	}

	// Golden-section refinement of the length-scale in log space, bracketed
	// by the coarse grid spacing around the winner.
	if g.fixedLengthScale == 0 && len(lengthScales) > 1 {
		lo := bestLS / gridRatio(lengthScales)
		hi := bestLS * gridRatio(lengthScales)
		ls, state, steps := g.refineLengthScale(xs, yVec, lo, hi, bestNugget)
		evaluated += steps
		if state != nil && state.logLik > bestLL {
			best = state
			bestLS = ls
			bestLL = state.logLik
		}
	}

	g.scaler = scaler
	g.xTrain = xs
	g.yTrain = yVec
	g.nFeature = d
	g.chol = best.chol
	g.alpha = best.alpha
	g.beta = best.beta
	g.sigma2 = best.sigma2
	g.lengthScale = bestLS
	g.nugget = bestNugget
	g.logLik = bestLL
	g.SetFitted()

	g.log().Info("surrogate fitted",
		log.ModelNameKey, "GaussianProcessRegressor",
		log.OperationKey, log.OperationFit,
		log.DesignPointsKey, n,
		log.DesignDimsKey, d,
		log.KernelKey, g.kernel.Name(),
		log.LengthScaleKey, g.lengthScale,
		log.NuggetKey, g.nugget,
		log.LogLikelihoodKey, g.logLik,
		log.CandidatesKey, evaluated,
	)

	return nil
}

// evaluateCandidate factorizes the correlation matrix at (ls, nug) and
// profiles out the constant mean and process variance.
func (g *GaussianProcessRegressor) evaluateCandidate(xs *mat.Dense, y *mat.VecDense, ls, nug float64) (*candidateState, error) {
	n, _ := xs.Dims()

	R := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		R.SetSym(i, i, 1+nug)
		for j := i + 1; j < n; j++ {
			R.SetSym(i, j, prodCorr(g.kernel, xs.RawRowView(i), xs.RawRowView(j), ls))
		}
	}

	var chol mat.Cholesky
	if err := factorizeWithJitter(&chol, R); err != nil {
		return nil, err
	}

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	rInvOnes := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(rInvOnes, ones); err != nil {
		return nil, errors.NewModelError("GaussianProcessRegressor.Fit", "solve failed", err)
	}
	rInvY := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(rInvY, y); err != nil {
		return nil, errors.NewModelError("GaussianProcessRegressor.Fit", "solve failed", err)
	}

	denom := mat.Dot(ones, rInvOnes)
	if denom <= 0 {
		return nil, errors.NewNumericalInstabilityError("gls_mean", []float64{denom}, 0)
	}
	beta := mat.Dot(ones, rInvY) / denom

	// alpha = R^{-1}(y - beta*1)
	alpha := mat.NewVecDense(n, nil)
	alpha.AddScaledVec(rInvY, -beta, rInvOnes)

	resid := mat.NewVecDense(n, nil)
	resid.AddScaledVec(y, -beta, ones)
	sigma2 := mat.Dot(resid, alpha) / float64(n)
	if sigma2 < 0 || math.IsNaN(sigma2) {
		return nil, errors.NewNumericalInstabilityError("profile_variance", []float64{sigma2}, 0)
	}

	// Profile log marginal likelihood, additive constants dropped.
	logLik := -0.5 * (float64(n)*errors.StabilizeLog(sigma2) + chol.LogDet())
	if math.IsNaN(logLik) || math.IsInf(logLik, 0) {
		return nil, errors.NewNumericalInstabilityError("profile_likelihood", []float64{logLik}, 0)
	}

	return &candidateState{
		chol:   chol,
		alpha:  alpha,
		beta:   beta,
		sigma2: sigma2,
		logLik: logLik,
	}, nil
}

// refineLengthScale runs a golden-section search for the length-scale on
// [lo, hi] in log space at a fixed nugget. It returns the best length-scale,
// its state (nil if every probe failed) and the number of probes spent.
func (g *GaussianProcessRegressor) refineLengthScale(xs *mat.Dense, y *mat.VecDense, lo, hi, nug float64) (float64, *candidateState, int) {
	const invPhi = 0.6180339887498949

	a, b := math.Log(lo), math.Log(hi)
	steps := 0

	probe := func(t float64) (*candidateState, float64) {
		ls := math.Exp(t)
		state, err := g.evaluateCandidate(xs, y, ls, nug)
		steps++
		if err != nil {
			return nil, math.Inf(-1)
		}
		return state, state.logLik
	}

	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	sc, fc := probe(c)
	sd, fd := probe(d)

	for i := 0; i < refineIters; i++ {
		if fc > fd {
			b, d, fd, sd = d, c, fc, sc
			c = b - invPhi*(b-a)
			sc, fc = probe(c)
		} else {
			a, c, fc, sc = c, d, fd, sd
			d = a + invPhi*(b-a)
			sd, fd = probe(d)
		}
	}

	if fc > fd {
		return math.Exp(c), sc, steps
	}
	return math.Exp(d), sd, steps
}

// Predict returns the posterior mean for each row of X as an n×1 matrix.
func (g *GaussianProcessRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	mean, _, err := g.PredictWithUncertainty(X)
	return mean, err
}

// PredictWithUncertainty returns the posterior mean and variance for each row
// of X, both as n×1 matrices. The variance includes the nugget contribution,
// so it shrinks to (almost) zero at training points.
func (g *GaussianProcessRegressor) PredictWithUncertainty(X mat.Matrix) (mat.Matrix, mat.Matrix, error) {
	if !g.IsFitted() {
		return nil, nil, errors.NewNotFittedError("GaussianProcessRegressor", "Predict")
	}

	m, d := X.Dims()
	if d != g.nFeature {
		return nil, nil, errors.NewDimensionError("GaussianProcessRegressor.Predict", g.nFeature, d, 1)
	}

	xsM, err := g.scaler.Transform(X)
	if err != nil {
		return nil, nil, err
	}
	xs := mat.DenseCopyOf(xsM)

	n := g.yTrain.Len()
	mean := mat.NewDense(m, 1, nil)
	variance := mat.NewDense(m, 1, nil)

	kvec := mat.NewVecDense(n, nil)
	rInvK := mat.NewVecDense(n, nil)

	for i := 0; i < m; i++ {
		xi := xs.RawRowView(i)
		for j := 0; j < n; j++ {
			kvec.SetVec(j, prodCorr(g.kernel, xi, g.xTrain.RawRowView(j), g.lengthScale))
		}

		mean.Set(i, 0, g.beta+mat.Dot(kvec, g.alpha))

		if err := g.chol.SolveVecTo(rInvK, kvec); err != nil {
			return nil, nil, errors.NewModelError("GaussianProcessRegressor.Predict", "solve failed", err)
		}
		v := g.sigma2 * (1 + g.nugget - mat.Dot(kvec, rInvK))
		if v < 0 {
			v = 0
		}
		variance.Set(i, 0, v)
	}

	return mean, variance, nil
}

// Score returns the coefficient of determination R² on the given data.
func (g *GaussianProcessRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !g.IsFitted() {
		return 0, errors.NewNotFittedError("GaussianProcessRegressor", "Score")
	}

	yPred, err := g.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()

	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)

		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// LogLikelihood returns the profile log marginal likelihood at the selected
// hyperparameters.
func (g *GaussianProcessRegressor) LogLikelihood() (float64, error) {
	if !g.IsFitted() {
		return 0, errors.NewNotFittedError("GaussianProcessRegressor", "LogLikelihood")
	}
	return g.logLik, nil
}

// Hyperparameters returns the selected length-scale and nugget.
func (g *GaussianProcessRegressor) Hyperparameters() (lengthScale, nugget float64, err error) {
	if !g.IsFitted() {
		return 0, 0, errors.NewNotFittedError("GaussianProcessRegressor", "Hyperparameters")
	}
	return g.lengthScale, g.nugget, nil
}

func (g *GaussianProcessRegressor) log() log.Logger {
	if g.logger != nil {
		return g.logger
	}
	return log.GetLogger()
}

// factorizeWithJitter attempts a Cholesky factorization, bumping the diagonal
// with increasing jitter when the matrix is numerically indefinite. A bump is
// reported as an IllConditionedWarning; if no jitter level succeeds it returns
// ErrSingularMatrix.
func factorizeWithJitter(chol *mat.Cholesky, R *mat.SymDense) error {
	if chol.Factorize(R) {
		return nil
	}

	n := R.SymmetricDim()
	for jitter := 1e-10; jitter <= 1e-2; jitter *= 100 {
		bumped := mat.NewSymDense(n, nil)
		bumped.CopySym(R)
		for i := 0; i < n; i++ {
			bumped.SetSym(i, i, R.At(i, i)+jitter)
		}
		if chol.Factorize(bumped) {
			errors.Warn(errors.NewIllConditionedWarning("gp.factorize", jitter))
			return nil
		}
	}

	return errors.NewModelError("gp.factorize", "correlation matrix is not positive definite", errors.ErrSingularMatrix)
}

// logspace returns count points geometrically spaced on [lo, hi].
func logspace(lo, hi float64, count int) []float64 {
	out := make([]float64, count)
	ratio := math.Pow(hi/lo, 1/float64(count-1))
	v := lo
	for i := range out {
		out[i] = v
		v *= ratio
	}
	return out
}

// gridRatio returns the spacing ratio of a geometric candidate grid.
func gridRatio(grid []float64) float64 {
	if len(grid) < 2 {
		return 2
	}
	return grid[1] / grid[0]
}
