package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/model"
	"github.com/YuminosukeSato/goforest/core/random"
	"github.com/YuminosukeSato/goforest/pkg/errors"
)

// baseForest carries the configuration and fitted state shared by the
// classifier and regressor facades.
type baseForest struct {
	model.BaseEstimator

	name        string
	base        Estimator
	nEstimators int
	bootstrap   bool
	rng         *random.State

	// Populated by Fit, read-only afterwards. Order is fit order.
	estimators []Estimator
	nFeatures  int
}

func newBaseForest(name string, base Estimator, bootstrap bool, opts []Option) baseForest {
	cfg := newForestConfig(bootstrap, opts)
	return baseForest{
		name:        name,
		base:        base,
		nEstimators: cfg.nEstimators,
		bootstrap:   cfg.bootstrap,
		rng:         cfg.rng,
	}
}

// validateFit checks configuration and input shapes before any member is
// constructed.
func (f *baseForest) validateFit(op string, X, y mat.Matrix) error {
	if f.base == nil {
		return errors.NewValidationError("base_estimator", "must not be nil", nil)
	}
	if f.nEstimators < 1 {
		return errors.NewValidationError("n_estimators", "must be a positive integer", f.nEstimators)
	}

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return errors.NewDimensionError(op, rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError(op, "y must be a column vector (n x 1 matrix)")
	}
	return nil
}

// checkPredict guards every prediction entry point: the forest must be
// fitted and X must have the feature count seen at fit time.
func (f *baseForest) checkPredict(method string, X mat.Matrix) error {
	if !f.IsFitted() {
		return errors.NewNotFittedError(f.name, method)
	}
	_, cols := X.Dims()
	if cols != f.nFeatures {
		return errors.NewDimensionError(f.name+"."+method, f.nFeatures, cols, 1)
	}
	return nil
}

// NEstimators returns the configured ensemble size.
func (f *baseForest) NEstimators() int {
	return f.nEstimators
}

// Bootstrap reports whether members are fit on bootstrap resamples.
func (f *baseForest) Bootstrap() bool {
	return f.bootstrap
}

// Estimators returns the fitted members in fit order. The returned slice
// is a copy; the members themselves are shared and must not be refit.
func (f *baseForest) Estimators() []Estimator {
	out := make([]Estimator, len(f.estimators))
	copy(out, f.estimators)
	return out
}
