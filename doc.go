// Package goforest provides bagging and forest ensemble methods for Go
// with a scikit-learn-like API.
//
// A forest combines an arbitrary number of independently randomized base
// learners: each member is a clone of a user-supplied prototype, optionally
// fit on a bootstrap resample of the training data, and predictions are
// aggregated by probability averaging (classification) or arithmetic mean
// (regression). The base learner is pluggable; anything satisfying
// ensemble.Estimator (and ensemble.ClassifierEstimator for classifiers)
// can join a forest.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goforest/ensemble"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    forest := ensemble.NewRandomForestRegressor(myLearner,
//	        ensemble.WithNEstimators(50),
//	        ensemble.WithRandomState(42),
//	    )
//	    if err := forest.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := forest.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred))
//	}
//
// # Packages
//
//   - ensemble: forest facades, ensemble building and prediction aggregation
//   - preprocessing: label encoding for string-labeled targets
//   - metrics: accuracy and R² used by the Score methods
//   - core/random: the seedable random source shared across members
//   - core/parallel: chunked CPU parallelism
//   - pkg/errors, pkg/log: structured errors and logging
package goforest
