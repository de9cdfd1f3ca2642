package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/random"
	"github.com/YuminosukeSato/goforest/pkg/errors"
)

// buildEnsemble fits nEstimators independent clones of base and returns
// them in fit order.
//
// Per member: clone the prototype, thread the shared random state into the
// clone, draw a bootstrap sample when enabled, fit. Bootstrap indices are
// always drawn from the original X and y, never from a previous member's
// resample, and each member draws fresh indices. The shared state's cursor
// advances monotonically across members; it is never reset in between, so
// a fixed outer seed fixes the whole build.
//
// Building is all-or-nothing: the first fit failure aborts with no partial
// ensemble returned.
func buildEnsemble(base Estimator, nEstimators int, X, y mat.Matrix, bootstrap bool, rng *random.State) ([]Estimator, error) {
	estimators := make([]Estimator, 0, nEstimators)

	for i := 0; i < nEstimators; i++ {
		clone := base.Clone()
		clone.SetRandomState(rng)

		Xi, yi := X, y
		if bootstrap {
			Xi, yi = bootstrapSample(X, y, rng)
		}

		if err := clone.Fit(Xi, yi); err != nil {
			return nil, errors.Wrapf(err, "ensemble member %d failed to fit", i)
		}
		estimators = append(estimators, clone)
	}

	return estimators, nil
}

// bootstrapSample draws n_samples row indices uniformly at random with
// replacement from [0, n_samples) and gathers the corresponding rows of X
// and y into fresh matrices. The caller's data is never modified. In the
// large-sample limit roughly a 1/e fraction of the original rows is absent
// from any given sample.
func bootstrapSample(X, y mat.Matrix, rng *random.State) (*mat.Dense, *mat.Dense) {
	n, cols := X.Dims()
	_, yCols := y.Dims()

	Xb := mat.NewDense(n, cols, nil)
	yb := mat.NewDense(n, yCols, nil)

	for i := 0; i < n; i++ {
		idx := rng.Intn(n)
		for j := 0; j < cols; j++ {
			Xb.Set(i, j, X.At(idx, j))
		}
		for j := 0; j < yCols; j++ {
			yb.Set(i, j, y.At(idx, j))
		}
	}

	return Xb, yb
}
