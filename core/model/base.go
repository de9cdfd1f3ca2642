// Package model provides the fit-state tracking and capability interfaces
// shared by all estimators in goforest.
package model

// EstimatorState represents the training state of a model.
type EstimatorState int

const (
	// NotFitted means the model has not been trained yet.
	NotFitted EstimatorState = iota
	// Fitted means the model has completed training.
	Fitted
)

// BaseEstimator is embedded by every estimator to track whether Fit has
// completed. Prediction entry points must check IsFitted before touching
// learned state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been trained.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as trained. Fit implementations call this as
// their final step, after all learned state is in place.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the untrained state. A failed Fit leaves the
// model reset so a partially built model never serves predictions.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
