package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceInterval represents a two-sided interval for one parameter.
type ConfidenceInterval struct {
	Lower float64
	Upper float64
}

// ConfidenceIntervals calculates two-sided Student-t confidence intervals
// for fitted parameters from their standard errors. nObs is the number of
// observations used in the fit; the t distribution has nObs - len(params)
// degrees of freedom. level is the confidence level in (0, 1), e.g. 0.95.
func ConfidenceIntervals(params, stdErrs []float64, nObs int, level float64) ([]ConfidenceInterval, error) {
	if len(params) != len(stdErrs) {
		return nil, errors.New("params and stdErrs must have the same length")
	}
	if level <= 0 || level >= 1 {
		return nil, errors.New("confidence level must be in (0, 1)")
	}
	dof := nObs - len(params)
	if dof < 1 {
		return nil, errors.New("not enough observations for confidence intervals")
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	q := t.Quantile(0.5 + level/2)

	intervals := make([]ConfidenceInterval, len(params))
	for i, p := range params {
		half := q * stdErrs[i]
		intervals[i] = ConfidenceInterval{
			Lower: p - half,
			Upper: p + half,
		}
	}
	return intervals, nil
}
