// Package stats provides post-fit diagnostic functions for relaxation fitting.
//
// This package includes goodness-of-fit summaries, confidence intervals
// for fitted parameters, and residual autocorrelation tests.
//
// # Goodness of Fit
//
// Summarize the agreement between observed and fitted signal:
//
//	summary, err := stats.Summary(series.Y, result.Fitted)
//	fmt.Printf("RMSE=%.4f MAE=%.4f R2=%.4f\n",
//	    summary.RMSE, summary.MAE, summary.R2)
//
// # Confidence Intervals
//
// Derive parameter confidence intervals from standard errors:
//
//	cis, err := stats.ConfidenceIntervals(
//	    result.Params, result.StdErrors(), series.Len(), 0.95)
//	for i, ci := range cis {
//	    fmt.Printf("parameter %d: [%.4f, %.4f]\n", i, ci.Lower, ci.Upper)
//	}
//
// # Residual Diagnostics
//
// Test residuals for leftover autocorrelation:
//
//	residuals := result.Residuals(series.Y)
//
//	// Autocorrelation function
//	acf := stats.ACF(residuals, 10)
//
//	// Ljung-Box test
//	lb := stats.LjungBox(residuals, 10, model.Arity())
//	if lb.PValue > 0.05 {
//	    // Residuals look like white noise (good)
//	}
package stats
