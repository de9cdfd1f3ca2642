package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/parallel"
	"github.com/YuminosukeSato/goforest/pkg/errors"
)

// Row counts at or below this run sequentially; the goroutine overhead
// dominates for small batches.
const aggregateParallelThreshold = 1000

// averageProba queries every fitted member for its class-probability matrix
// and returns the element-wise mean.
//
// Every member is queried in fit order and must return rows x nClasses
// probabilities over the ensemble's dense class indices. The division uses
// the number of members actually fitted, so the average stays normalized by
// construction: when every member's rows sum to 1, so do the averaged rows.
// Per-row accumulation also runs in fit order, which keeps the result
// bit-identical whether rows are processed sequentially or in parallel.
func averageProba(op string, estimators []Estimator, X mat.Matrix, nClasses int) (*mat.Dense, error) {
	rows, _ := X.Dims()

	probas := make([]mat.Matrix, len(estimators))
	for i, est := range estimators {
		clf, ok := est.(ClassifierEstimator)
		if !ok {
			return nil, errors.NewValueError(op, "ensemble member does not implement PredictProba")
		}
		p, err := clf.PredictProba(X)
		if err != nil {
			return nil, errors.Wrapf(err, "ensemble member %d failed to predict probabilities", i)
		}
		pr, pc := p.Dims()
		if pr != rows {
			return nil, errors.NewDimensionError(op, rows, pr, 0)
		}
		if pc != nClasses {
			return nil, errors.NewDimensionError(op, nClasses, pc, 1)
		}
		probas[i] = p
	}

	avg := mat.NewDense(rows, nClasses, nil)
	inv := 1.0 / float64(len(estimators))
	parallel.ParallelizeWithThreshold(rows, aggregateParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < nClasses; j++ {
				var sum float64
				for _, p := range probas {
					sum += p.At(i, j)
				}
				avg.Set(i, j, sum*inv)
			}
		}
	})

	return avg, nil
}

// meanPrediction returns the arithmetic mean of every member's prediction,
// one value per row of X, as an n x 1 matrix.
func meanPrediction(op string, estimators []Estimator, X mat.Matrix) (*mat.Dense, error) {
	rows, _ := X.Dims()

	preds := make([]mat.Matrix, len(estimators))
	for i, est := range estimators {
		p, err := est.Predict(X)
		if err != nil {
			return nil, errors.Wrapf(err, "ensemble member %d failed to predict", i)
		}
		pr, pc := p.Dims()
		if pr != rows {
			return nil, errors.NewDimensionError(op, rows, pr, 0)
		}
		if pc != 1 {
			return nil, errors.NewDimensionError(op, 1, pc, 1)
		}
		preds[i] = p
	}

	mean := mat.NewDense(rows, 1, nil)
	inv := 1.0 / float64(len(estimators))
	parallel.ParallelizeWithThreshold(rows, aggregateParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			var sum float64
			for _, p := range preds {
				sum += p.At(i, 0)
			}
			mean.Set(i, 0, sum*inv)
		}
	})

	return mean, nil
}

// argmaxRow returns the column index holding the maximum value in row i.
// Ties resolve to the lowest column index.
func argmaxRow(m mat.Matrix, i int) int {
	_, cols := m.Dims()
	best := 0
	bestVal := m.At(i, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(i, j); v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best
}
