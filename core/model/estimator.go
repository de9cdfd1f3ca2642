package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on the given feature matrix and target vector.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns one prediction per row of X as a column vector.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ProbabilityPredictor is the interface for classifiers that can estimate
// per-class probabilities.
type ProbabilityPredictor interface {
	// PredictProba returns an n_samples x n_classes matrix of class
	// probabilities, columns ordered by dense class index.
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can evaluate themselves against
// labeled data (accuracy for classifiers, R^2 for regressors).
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}
