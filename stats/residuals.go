// Package stats provides post-fit diagnostics for relaxation fitting.
package stats

import (
	"errors"
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// FitSummary summarizes the agreement between observed and fitted signal.
type FitSummary struct {
	RSS  float64 // Residual sum of squares
	RMSE float64 // Root mean squared error
	MAE  float64 // Mean absolute error
	R2   float64 // Coefficient of determination
}

// Summary calculates goodness-of-fit measures from observed signal y and
// the fitted curve.
func Summary(y, fitted []float64) (*FitSummary, error) {
	if len(y) != len(fitted) {
		return nil, errors.New("observed and fitted values must have the same length")
	}
	if len(y) == 0 {
		return nil, errors.New("no observations")
	}

	squared := make([]float64, len(y))
	absolute := make([]float64, len(y))
	for i := range y {
		r := y[i] - fitted[i]
		squared[i] = r * r
		absolute[i] = math.Abs(r)
	}

	rss, err := mstats.Sum(squared)
	if err != nil {
		return nil, err
	}
	mse, err := mstats.Mean(squared)
	if err != nil {
		return nil, err
	}
	mae, err := mstats.Mean(absolute)
	if err != nil {
		return nil, err
	}

	return &FitSummary{
		RSS:  rss,
		RMSE: math.Sqrt(mse),
		MAE:  mae,
		R2:   stat.RSquaredFrom(fitted, y, nil),
	}, nil
}
