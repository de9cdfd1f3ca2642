// Package preprocessing provides target transformations used around the
// forest estimators.
package preprocessing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/model"
	"github.com/YuminosukeSato/goforest/pkg/errors"
)

// LabelEncoder maps string labels to dense float64 class indices and back.
//
// The forest estimators work on float64 targets; LabelEncoder bridges
// string-labeled datasets by freezing the lexicographically sorted unique
// label set at fit time and encoding each label as its position in that
// order. Inverse-transforming the forest's predictions recovers the
// original strings.
type LabelEncoder struct {
	model.BaseEstimator

	classes []string
	index   map[string]int
}

// NewLabelEncoder creates an unfitted LabelEncoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit freezes the sorted unique label set of labels.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("LabelEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	e.classes = classes
	e.index = index
	e.SetFitted()
	return nil
}

// Transform encodes labels as dense class indices. A label not seen at fit
// time is an error.
func (e *LabelEncoder) Transform(labels []string) ([]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	out := make([]float64, len(labels))
	for i, l := range labels {
		idx, ok := e.index[l]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", "unseen label: "+l)
		}
		out[i] = float64(idx)
	}
	return out, nil
}

// FitTransform fits on labels and returns their encoding.
func (e *LabelEncoder) FitTransform(labels []string) ([]float64, error) {
	if err := e.Fit(labels); err != nil {
		return nil, err
	}
	return e.Transform(labels)
}

// TransformColumn encodes labels as an n x 1 matrix suitable as a fit
// target.
func (e *LabelEncoder) TransformColumn(labels []string) (*mat.Dense, error) {
	values, err := e.Transform(labels)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(len(values), 1, values), nil
}

// InverseTransform maps encoded class indices back to the original labels.
// Values must be whole numbers inside the class range.
func (e *LabelEncoder) InverseTransform(values []float64) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	out := make([]string, len(values))
	for i, v := range values {
		if v != math.Trunc(v) || v < 0 || int(v) >= len(e.classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform", "value is not a valid class index")
		}
		out[i] = e.classes[int(v)]
	}
	return out, nil
}

// InverseTransformColumn maps an n x 1 prediction matrix back to labels.
func (e *LabelEncoder) InverseTransformColumn(pred mat.Matrix) ([]string, error) {
	rows, cols := pred.Dims()
	if cols != 1 {
		return nil, errors.NewValueError("LabelEncoder.InverseTransformColumn", "input must be a column vector (n x 1 matrix)")
	}
	values := make([]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = pred.At(i, 0)
	}
	return e.InverseTransform(values)
}

// Classes returns the lexicographically sorted label set observed at fit
// time.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}
