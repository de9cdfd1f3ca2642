package ensemble

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/model"
	"github.com/YuminosukeSato/goforest/metrics"
	"github.com/YuminosukeSato/goforest/pkg/errors"
	"github.com/YuminosukeSato/goforest/pkg/log"
)

var (
	_ model.Fitter    = (*ForestRegressor)(nil)
	_ model.Predictor = (*ForestRegressor)(nil)
	_ model.Scorer    = (*ForestRegressor)(nil)
)

// ForestRegressor is an ensemble regressor that predicts the arithmetic
// mean of its members' predictions.
type ForestRegressor struct {
	baseForest
}

// NewRandomForestRegressor creates a forest regressor with bootstrap
// resampling enabled by default, intended for deterministic base learners
// that pick the locally best split.
func NewRandomForestRegressor(base Estimator, opts ...Option) *ForestRegressor {
	return &ForestRegressor{
		baseForest: newBaseForest("RandomForestRegressor", base, true, opts),
	}
}

// NewExtraTreesRegressor creates a forest regressor with bootstrap
// resampling disabled by default, intended for extremely randomized base
// learners.
func NewExtraTreesRegressor(base Estimator, opts ...Option) *ForestRegressor {
	return &ForestRegressor{
		baseForest: newBaseForest("ExtraTreesRegressor", base, false, opts),
	}
}

// Fit builds the ensemble from the training set (X, y). Fitting is
// all-or-nothing; on any member failure the regressor is left unfit.
func (f *ForestRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, f.name+".Fit")

	start := time.Now()
	if err := f.validateFit(f.name+".Fit", X, y); err != nil {
		return err
	}

	rows, cols := X.Dims()
	estimators, err := buildEnsemble(f.base, f.nEstimators, X, y, f.bootstrap, f.rng)
	if err != nil {
		f.Reset()
		return err
	}

	f.estimators = estimators
	f.nFeatures = cols
	f.SetFitted()

	log.GetLoggerWithName(f.name).Debug("ensemble fitted",
		log.OperationKey, "fit",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.EstimatorsKey, f.nEstimators,
		log.BootstrapKey, f.bootstrap,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns the mean of the members' predictions for each row of X
// as an n x 1 matrix.
func (f *ForestRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := f.checkPredict("Predict", X); err != nil {
		return nil, err
	}
	return meanPrediction(f.name+".Predict", f.estimators, X)
}

// Score returns the coefficient of determination R^2 of Predict on the
// given test data.
func (f *ForestRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !f.IsFitted() {
		return 0, errors.NewNotFittedError(f.name, "Score")
	}
	yPred, err := f.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}
