// Package relax provides nonlinear least-squares fitting of exponential
// relaxation models to time-series signal data.
//
// Relax fits single-, two-, and three-step exponential relaxation curves
// of the form a*(1-exp(-b*x))+c to observed (x, y) signal data using a
// Levenberg-Marquardt solver, reports parameter covariance and standard
// errors, and flags parameters that are not statistically distinguishable
// from zero given their uncertainty.
//
// # Quick Start
//
// Fit a single-step relaxation to observed data:
//
//	series, _ := timeseries.New(x, y)
//	result, err := relaxation.FitSeries(series, relaxation.SingleStep, []float64{1, 1, 1}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Params)      // fitted a, b, c
//	fmt.Println(result.StdErrors()) // parameter standard errors
//	for _, w := range result.Warnings {
//	    fmt.Println(w) // unreliable-parameter diagnostics
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - relaxation: relaxation model functions and the fitting routine
//   - timeseries: observation series data structures and CSV loading
//   - stats: post-fit diagnostics (goodness of fit, confidence intervals,
//     residual autocorrelation tests)
//
// # References
//
//   - Bevington, P. R., & Robinson, D. K. (2003). Data Reduction and Error
//     Analysis for the Physical Sciences
//   - Levenberg, K. (1944). A method for the solution of certain non-linear
//     problems in least squares
package relax
