package relaxation

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"

	"github.com/fraser-lab/relax/timeseries"
)

const parameterLetters = "abcdefghijklmnopqrstuvwxyz"

// FitOptions holds options for the fitting routine.
type FitOptions struct {
	MaxIterations int // Maximum solver iterations (default 5000)
}

// DefaultFitOptions returns default options for fitting.
func DefaultFitOptions() *FitOptions {
	return &FitOptions{
		MaxIterations: 5000,
	}
}

// Warning flags a fitted parameter whose standard error exceeds the
// magnitude of its value, meaning the parameter is not statistically
// distinguishable from zero. Warnings are diagnostic only; a fit that
// produces them still succeeds.
type Warning struct {
	Letter string  // Positional parameter label (a, b, c, ...)
	Value  float64 // Fitted parameter value
	StdErr float64 // Standard error of the fitted value
}

func (w Warning) String() string {
	return fmt.Sprintf("Parameter %s has standard deviation (%g) larger than its value(%g)",
		w.Letter, w.StdErr, w.Value)
}

// Result holds the outcome of a relaxation fit.
type Result struct {
	Params     []float64     // Fitted parameters, one per model parameter
	Covariance *mat.SymDense // Parameter covariance matrix (arity x arity)
	Fitted     []float64     // Model curve evaluated at every input x
	Warnings   []Warning     // Unreliable-parameter diagnostics
}

// StdErrors returns the parameter standard errors, the square roots of
// the covariance diagonal.
func (r *Result) StdErrors() []float64 {
	errs := make([]float64, len(r.Params))
	for i := range errs {
		errs[i] = math.Sqrt(r.Covariance.At(i, i))
	}
	return errs
}

// Residuals returns observed minus fitted values. y must be the observed
// signal the fit was produced from.
func (r *Result) Residuals(y []float64) []float64 {
	if len(y) != len(r.Fitted) {
		return nil
	}
	res := make([]float64, len(y))
	for i := range res {
		res[i] = y[i] - r.Fitted[i]
	}
	return res
}

// Fit fits the given relaxation model to observed signal y over times x
// by nonlinear least squares, starting from initialGuess. The guess must
// have exactly one entry per model parameter; this is checked before any
// solver work. Solver non-convergence and numerical failures propagate
// untranslated.
//
// The returned result carries the fitted parameters, their covariance
// matrix, the fitted curve at every input x, and a warning for each
// parameter whose standard error exceeds its value. A nil opts means
// DefaultFitOptions.
func Fit(x, y []float64, model Model, initialGuess []float64, opts *FitOptions) (*Result, error) {
	if opts == nil {
		opts = DefaultFitOptions()
	}
	if opts.MaxIterations < 1 {
		return nil, fmt.Errorf("max iterations must be positive, got %d", opts.MaxIterations)
	}
	if len(initialGuess) != model.Arity() {
		return nil, fmt.Errorf("initial guess has %d parameters, %s relaxation requires %d",
			len(initialGuess), model.Name(), model.Arity())
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length, got %d and %d", len(x), len(y))
	}

	residuals := func(dst, params []float64) {
		for i := range x {
			dst[i] = model.Eval(x[i], params) - y[i]
		}
	}
	numJac := lm.NumJac{Func: residuals}

	guess := make([]float64, len(initialGuess))
	copy(guess, initialGuess)

	problem := lm.LMProblem{
		Dim:        model.Arity(),
		Size:       len(x),
		Func:       residuals,
		Jac:        numJac.Jac,
		InitParams: guess,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	solution, err := lm.LM(problem, &lm.Settings{
		Iterations:   opts.MaxIterations,
		ObjectiveTol: 1e-16,
	})
	if err != nil {
		return nil, err
	}

	params := make([]float64, model.Arity())
	copy(params, solution.X)

	cov, err := covariance(x, y, model, params, &numJac)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Params:     params,
		Covariance: cov,
		Fitted:     make([]float64, len(x)),
	}
	for i, value := range params {
		stdErr := math.Sqrt(cov.At(i, i))
		if math.Abs(value) < math.Abs(stdErr) {
			result.Warnings = append(result.Warnings, Warning{
				Letter: model.ParamLetter(i),
				Value:  value,
				StdErr: stdErr,
			})
		}
	}
	for i, xi := range x {
		result.Fitted[i] = model.Eval(xi, params)
	}
	return result, nil
}

// FitSeries fits the model to an observation series. See Fit.
func FitSeries(s *timeseries.Series, model Model, initialGuess []float64, opts *FitOptions) (*Result, error) {
	return Fit(s.X, s.Y, model, initialGuess, opts)
}

// covariance estimates the parameter covariance matrix from the
// numerical Jacobian at the solution, scaled by the residual variance:
// cov = (J'J)^-1 * RSS/(n-p). With n <= p the scale is undefined and the
// matrix is filled with +Inf.
func covariance(x, y []float64, model Model, params []float64, numJac *lm.NumJac) (*mat.SymDense, error) {
	n := len(x)
	p := len(params)

	cov := mat.NewSymDense(p, nil)
	if n <= p {
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				cov.SetSym(i, j, math.Inf(1))
			}
		}
		return cov, nil
	}

	jac := mat.NewDense(n, p, nil)
	numJac.Jac(jac, params)

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, fmt.Errorf("covariance estimation failed: %w", err)
	}

	rss := 0.0
	for i, xi := range x {
		r := model.Eval(xi, params) - y[i]
		rss += r * r
	}
	sigma2 := rss / float64(n-p)

	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			// Symmetrize to absorb inversion round-off.
			cov.SetSym(i, j, 0.5*(inv.At(i, j)+inv.At(j, i))*sigma2)
		}
	}
	return cov, nil
}
