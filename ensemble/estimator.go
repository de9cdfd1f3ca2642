package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/random"
)

// Estimator is the capability contract every base learner must satisfy to
// join a forest.
type Estimator interface {
	// Clone returns a new, unfitted estimator configured with the same
	// hyperparameters. Learned state is not copied.
	Clone() Estimator

	// SetRandomState hands the estimator the generator that drives its
	// internal stochastic behavior. The forest passes its own shared state
	// by reference, so successive clones draw from one advancing sequence
	// and stay decorrelated under a fixed outer seed.
	SetRandomState(state *random.State)

	// Fit trains the estimator on the given feature matrix and target
	// column vector.
	Fit(X, y mat.Matrix) error

	// Predict returns one prediction per row of X as an n x 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ClassifierEstimator is an Estimator that can also estimate class
// probabilities.
//
// The forest fits classifiers on targets encoded as dense class indices
// 0..k-1 over the full training set's label set, so PredictProba must
// return an n x k matrix whose column j is the probability of class index
// j. A learner emitting a different column count is reported as a
// dimension error during aggregation.
type ClassifierEstimator interface {
	Estimator

	// PredictProba returns per-class probability estimates for each row of
	// X. Each row should sum to 1.
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}
