// Package relaxation implements exponential relaxation model functions
// and their nonlinear least-squares fitting routine.
//
// A relaxation curve describes a signal approaching a steady-state value
// over time as a sum of exponential decay terms. Three model variants
// are provided, with one, two, and three decay terms:
//
//	single-step: a*(1-exp(-b*x)) + c                                 (3 parameters)
//	two-step:    a*(1-exp(-b*x)) + c*(1-exp(-d*x)) + e               (5 parameters)
//	three-step:  a*(1-exp(-b*x)) + c*(1-exp(-d*x)) + e*(1-exp(-f*x)) + g  (7 parameters)
//
// Each amplitude/rate pair contributes one relaxation step; the final
// parameter is the constant signal offset prior to relaxation.
//
// # Fitting
//
// Fit a model to observed data with an initial guess, one entry per
// model parameter:
//
//	result, err := relaxation.Fit(x, y, relaxation.SingleStep, []float64{1, 1, 1}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Params)  // fitted a, b, c
//	fmt.Println(result.Fitted)  // model curve at every input x
//
// Fitting uses a Levenberg-Marquardt solver with a numerical Jacobian.
// Solver failures (non-convergence within the iteration budget,
// ill-posed problems) propagate to the caller untranslated.
//
// # Parameter Reliability
//
// After fitting, each parameter's standard error is derived from the
// covariance matrix. A parameter whose standard error exceeds the
// magnitude of its value is not statistically distinguishable from zero
// and is reported in Result.Warnings:
//
//	for _, w := range result.Warnings {
//	    fmt.Println(w)
//	    // Parameter b has standard deviation (2.1) larger than its value(0.3)
//	}
//
// Warnings never abort a fit; they are a diagnostic signal that the
// model may be over-parameterized for the data. Prefer the single-step
// model unless it is unable to converge effectively.
//
// # Options
//
// Customize the iteration budget:
//
//	opts := &relaxation.FitOptions{MaxIterations: 20000}
//	result, err := relaxation.Fit(x, y, relaxation.TwoStep, guess, opts)
package relaxation
