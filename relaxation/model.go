// Package relaxation implements exponential relaxation models and their
// nonlinear least-squares fitting routine.
package relaxation

import "math"

// SingleStepRelaxation calculates the signal at time x for a single
// relaxation step with amplitude a, observed rate b, and offset c:
//
//	a*(1-exp(-b*x)) + c
//
// a is the total change in signal after relaxation, b the observed rate
// of change (kobs) relative to the time variable, and c the signal offset
// prior to relaxation.
func SingleStepRelaxation(x, a, b, c float64) float64 {
	return a*(1-math.Exp(-b*x)) + c
}

// TwoStepRelaxation calculates the signal at time x for two relaxation
// steps with amplitude/rate pairs (a, b) and (c, d) plus offset e.
// Recommended only when a single-step fit is unable to converge
// effectively.
func TwoStepRelaxation(x, a, b, c, d, e float64) float64 {
	return a*(1-math.Exp(-b*x)) + c*(1-math.Exp(-d*x)) + e
}

// ThreeStepRelaxation calculates the signal at time x for three
// relaxation steps with amplitude/rate pairs (a, b), (c, d), (e, f) plus
// offset g. Not advisable for any but very highly observed datasets due
// to the high risk of overfitting.
func ThreeStepRelaxation(x, a, b, c, d, e, f, g float64) float64 {
	return a*(1-math.Exp(-b*x)) + c*(1-math.Exp(-d*x)) + e*(1-math.Exp(-f*x)) + g
}

// Model represents one relaxation model variant. Each variant carries a
// fixed parameter arity and the closed-form curve it evaluates, so the
// fitting routine can validate an initial guess without inspecting the
// curve function itself. Models are immutable; the package-level
// variants SingleStep, TwoStep, and ThreeStep are defined once and
// reused across fits.
type Model struct {
	name  string
	arity int
	eval  func(x float64, params []float64) float64
}

// Relaxation model variants.
var (
	// SingleStep fits a*(1-exp(-b*x)) + c. Parameters: a, b, c.
	SingleStep = Model{
		name:  "single-step",
		arity: 3,
		eval: func(x float64, p []float64) float64 {
			return SingleStepRelaxation(x, p[0], p[1], p[2])
		},
	}

	// TwoStep fits a*(1-exp(-b*x)) + c*(1-exp(-d*x)) + e.
	// Parameters: a, b, c, d, e.
	TwoStep = Model{
		name:  "two-step",
		arity: 5,
		eval: func(x float64, p []float64) float64 {
			return TwoStepRelaxation(x, p[0], p[1], p[2], p[3], p[4])
		},
	}

	// ThreeStep fits a*(1-exp(-b*x)) + c*(1-exp(-d*x)) + e*(1-exp(-f*x)) + g.
	// Parameters: a, b, c, d, e, f, g.
	ThreeStep = Model{
		name:  "three-step",
		arity: 7,
		eval: func(x float64, p []float64) float64 {
			return ThreeStepRelaxation(x, p[0], p[1], p[2], p[3], p[4], p[5], p[6])
		},
	}
)

// Name returns the model variant name.
func (m Model) Name() string {
	return m.name
}

// Arity returns the number of parameters the model takes.
func (m Model) Arity() int {
	return m.arity
}

// Eval evaluates the model curve at x. params must have length Arity().
func (m Model) Eval(x float64, params []float64) float64 {
	return m.eval(x, params)
}

// ParamLetter returns the positional letter label for parameter index i,
// in the order consumed by the curve function (a, b, c, ...).
func (m Model) ParamLetter(i int) string {
	return string(parameterLetters[i])
}

// ParamLetters returns the letter labels for all model parameters.
func (m Model) ParamLetters() []string {
	letters := make([]string, m.arity)
	for i := range letters {
		letters[i] = m.ParamLetter(i)
	}
	return letters
}
