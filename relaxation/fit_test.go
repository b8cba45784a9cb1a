package relaxation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraser-lab/relax/timeseries"
)

// singleStepData generates x = 0..n-1 and y = a*(1-exp(-b*x)) + c with a
// small deterministic perturbation.
func singleStepData(n int, a, b, c float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		noise := float64(i%7-3) / 300
		y[i] = SingleStepRelaxation(x[i], a, b, c) + noise
	}
	return x, y
}

func TestFitArityMismatch(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)

	_, err := Fit(x, y, SingleStep, []float64{1, 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial guess")

	_, err = Fit(x, y, TwoStep, []float64{1, 1, 1}, nil)
	require.Error(t, err)

	_, err = Fit(x, y, ThreeStep, []float64{1, 1, 1, 1, 1, 1, 1, 1}, nil)
	require.Error(t, err)
}

func TestFitLengthMismatch(t *testing.T) {
	_, err := Fit([]float64{0, 1, 2, 3}, []float64{1, 2, 3}, SingleStep, []float64{1, 1, 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same length")
}

func TestFitInvalidIterationBudget(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)
	_, err := Fit(x, y, SingleStep, []float64{1, 1, 1}, &FitOptions{MaxIterations: 0})
	require.Error(t, err)
}

func TestFitRecoversSingleStep(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)

	result, err := Fit(x, y, SingleStep, []float64{1, 1, 1}, nil)
	require.NoError(t, err)

	require.Len(t, result.Params, 3)
	assert.InDelta(t, 2.0, result.Params[0], 0.1)
	assert.InDelta(t, 0.5, result.Params[1], 0.05)
	assert.InDelta(t, 1.0, result.Params[2], 0.1)

	// Predicted curve has one entry per input x and matches the model at
	// the fitted parameters.
	require.Len(t, result.Fitted, 21)
	for i, xi := range x {
		assert.InDelta(t, SingleStep.Eval(xi, result.Params), result.Fitted[i], 1e-12)
	}

	// All parameters are well determined here, so no warnings.
	assert.Empty(t, result.Warnings)
}

func TestFitCovarianceShape(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)

	result, err := Fit(x, y, SingleStep, []float64{1, 1, 1}, nil)
	require.NoError(t, err)

	rows, cols := result.Covariance.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, result.Covariance.At(j, i), result.Covariance.At(i, j), 1e-12)
		}
		assert.GreaterOrEqual(t, result.Covariance.At(i, i), 0.0)
	}
}

func TestFitFlagsUnreliableParameter(t *testing.T) {
	// Single-step data with true offset c = 0 and a perturbation chosen
	// orthogonal to the model gradient at the true parameters, so the fit
	// lands on c ~ 0 while the residual variance stays large. The offset
	// is then indistinguishable from zero; amplitude and rate are not.
	x := make([]float64, 21)
	for i := range x {
		x[i] = float64(i)
	}
	y := []float64{
		-0.039368, 2.952104, 3.675552, 4.707459, 4.852868, 4.636778,
		5.233548, 4.858775, 4.853356, 5.276719, 4.736597, 5.041348,
		5.179141, 4.692469, 5.203954, 5.009388, 4.757327, 5.287847,
		4.832994, 4.908603, 5.262709,
	}

	result, err := Fit(x, y, SingleStep, []float64{1, 1, 0.1}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.Params[0], 0.2)
	assert.InDelta(t, 0.8, result.Params[1], 0.1)

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, "c", w.Letter)
	assert.Greater(t, math.Abs(w.StdErr), math.Abs(w.Value))
}

func TestWarningMessage(t *testing.T) {
	w := Warning{Letter: "b", Value: 0.3, StdErr: 2.1}
	assert.Equal(t, "Parameter b has standard deviation (2.1) larger than its value(0.3)", w.String())
}

func TestFitResultAccessors(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)

	result, err := Fit(x, y, SingleStep, []float64{1, 1, 1}, nil)
	require.NoError(t, err)

	stdErrs := result.StdErrors()
	require.Len(t, stdErrs, 3)
	for i, se := range stdErrs {
		assert.GreaterOrEqual(t, se, 0.0)
		assert.InDelta(t, math.Sqrt(result.Covariance.At(i, i)), se, 1e-12)
	}

	residuals := result.Residuals(y)
	require.Len(t, residuals, 21)
	for i := range residuals {
		assert.InDelta(t, y[i]-result.Fitted[i], residuals[i], 1e-12)
	}

	assert.Nil(t, result.Residuals([]float64{1, 2, 3}))
}

func TestFitSeries(t *testing.T) {
	x, y := singleStepData(21, 2, 0.5, 1)
	series, err := timeseries.New(x, y)
	require.NoError(t, err)

	result, err := FitSeries(series, SingleStep, []float64{1, 1, 1}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, result.Params[0], 0.1)
	assert.Len(t, result.Fitted, series.Len())
}

func TestFitUnderdeterminedCovariance(t *testing.T) {
	// With as many points as parameters the residual-variance scale is
	// undefined and the covariance is reported as +Inf.
	x := []float64{0, 1, 2}
	y := make([]float64, 3)
	for i, xi := range x {
		y[i] = SingleStepRelaxation(xi, 2, 0.5, 1)
	}

	result, err := Fit(x, y, SingleStep, []float64{2, 0.5, 1}, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsInf(result.Covariance.At(i, i), 1))
	}
}

func TestFitTwoStep(t *testing.T) {
	// Two well-separated relaxation steps.
	x := make([]float64, 41)
	y := make([]float64, 41)
	for i := range x {
		x[i] = float64(i) / 2
		noise := float64(i%5-2) / 500
		y[i] = TwoStepRelaxation(x[i], 3, 2.0, 1.5, 0.1, 1) + noise
	}

	result, err := Fit(x, y, TwoStep, []float64{2, 1, 2, 0.2, 0.5}, nil)
	require.NoError(t, err)
	require.Len(t, result.Params, 5)
	require.Len(t, result.Fitted, 41)

	// The fitted curve should track the observations closely.
	for i := range y {
		assert.InDelta(t, y[i], result.Fitted[i], 0.05)
	}
}
