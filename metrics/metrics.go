// Package metrics provides the evaluation scores consumed by the forest
// facades' Score methods.
package metrics

import (
	"github.com/YuminosukeSato/goforest/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// AccuracyScore returns the fraction of rows where yTrue and yPred hold the
// same label. Both inputs must be n x 1 matrices of equal length.
func AccuracyScore(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := checkColumnPair("AccuracyScore", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// R2Score returns the coefficient of determination
// R^2 = 1 - RSS/TSS. Both inputs must be n x 1 matrices of equal length.
// A constant yTrue makes TSS zero and the score undefined.
func R2Score(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := checkColumnPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.At(i, 0)
	}
	mean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		t := yTrue.At(i, 0)
		p := yPred.At(i, 0)
		tss += (t - mean) * (t - mean)
		rss += (t - p) * (t - p)
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}

// checkColumnPair validates that both matrices are non-empty column
// vectors of the same length and returns that length.
func checkColumnPair(op string, yTrue, yPred mat.Matrix) (int, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 {
		return 0, errors.NewValueError(op, "empty input")
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError(op, "inputs must be column vectors (n x 1 matrices)")
	}
	if rPred != rTrue {
		return 0, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	return rTrue, nil
}
