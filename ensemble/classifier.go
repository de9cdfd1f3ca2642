package ensemble

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/model"
	"github.com/YuminosukeSato/goforest/metrics"
	"github.com/YuminosukeSato/goforest/pkg/errors"
	"github.com/YuminosukeSato/goforest/pkg/log"
)

var (
	_ model.Fitter               = (*ForestClassifier)(nil)
	_ model.Predictor            = (*ForestClassifier)(nil)
	_ model.ProbabilityPredictor = (*ForestClassifier)(nil)
	_ model.Scorer               = (*ForestClassifier)(nil)
)

// ForestClassifier is an ensemble classifier that averages the class
// probabilities of its members and predicts the class with the highest
// averaged probability.
type ForestClassifier struct {
	baseForest

	// Sorted unique labels observed at fit time. Position in this slice is
	// the dense class index used for every probability column. Frozen for
	// the lifetime of the fitted model.
	classes []float64
}

// NewRandomForestClassifier creates a forest classifier with bootstrap
// resampling enabled by default, intended for deterministic base learners
// that pick the locally best split.
func NewRandomForestClassifier(base ClassifierEstimator, opts ...Option) *ForestClassifier {
	return &ForestClassifier{
		baseForest: newBaseForest("RandomForestClassifier", base, true, opts),
	}
}

// NewExtraTreesClassifier creates a forest classifier with bootstrap
// resampling disabled by default, intended for extremely randomized base
// learners whose variance comes from internal random split selection.
func NewExtraTreesClassifier(base ClassifierEstimator, opts ...Option) *ForestClassifier {
	return &ForestClassifier{
		baseForest: newBaseForest("ExtraTreesClassifier", base, false, opts),
	}
}

// Fit builds the ensemble from the training set (X, y).
//
// The sorted unique labels of y become the canonical class ordering, and y
// is re-encoded to dense class indices before any member sees it, so every
// member reports probabilities over the same column basis. Fitting is
// all-or-nothing; on any member failure the classifier is left unfit.
func (f *ForestClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, f.name+".Fit")

	start := time.Now()
	if err := f.validateFit(f.name+".Fit", X, y); err != nil {
		return err
	}

	rows, cols := X.Dims()
	classes := uniqueLabels(y)
	if len(classes) == 1 {
		errors.Warn(errors.NewSingleClassWarning(f.name, classes[0]))
	}
	yEncoded, err := encodeLabels(f.name+".Fit", y, classes)
	if err != nil {
		return err
	}

	estimators, err := buildEnsemble(f.base, f.nEstimators, X, yEncoded, f.bootstrap, f.rng)
	if err != nil {
		f.Reset()
		return err
	}

	f.classes = classes
	f.estimators = estimators
	f.nFeatures = cols
	f.SetFitted()

	log.GetLoggerWithName(f.name).Debug("ensemble fitted",
		log.OperationKey, "fit",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.ClassesKey, len(classes),
		log.EstimatorsKey, f.nEstimators,
		log.BootstrapKey, f.bootstrap,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns the class label with the highest averaged probability for
// each row of X. Ties resolve to the class with the lowest index in the
// canonical ordering. Labels are reported in their original encoding.
func (f *ForestClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := f.predictProba("Predict", X)
	if err != nil {
		return nil, err
	}

	rows, _ := proba.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, f.classes[argmaxRow(proba, i)])
	}
	return pred, nil
}

// PredictProba returns the class probabilities for each row of X, averaged
// over all members. Columns follow the canonical class ordering; rows sum
// to 1 whenever every member's rows do.
func (f *ForestClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	return f.predictProba("PredictProba", X)
}

// PredictLogProba returns the element-wise natural log of PredictProba.
// Zero probabilities yield -Inf, matching float log semantics; no
// smoothing is applied.
func (f *ForestClassifier) PredictLogProba(X mat.Matrix) (mat.Matrix, error) {
	proba, err := f.predictProba("PredictLogProba", X)
	if err != nil {
		return nil, err
	}

	rows, cols := proba.Dims()
	logProba := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			logProba.Set(i, j, math.Log(proba.At(i, j)))
		}
	}
	return logProba, nil
}

func (f *ForestClassifier) predictProba(method string, X mat.Matrix) (*mat.Dense, error) {
	if err := f.checkPredict(method, X); err != nil {
		return nil, err
	}
	return averageProba(f.name+"."+method, f.estimators, X, len(f.classes))
}

// Classes returns the canonical class ordering observed at fit time.
func (f *ForestClassifier) Classes() []float64 {
	out := make([]float64, len(f.classes))
	copy(out, f.classes)
	return out
}

// NClasses returns the number of distinct classes observed at fit time.
func (f *ForestClassifier) NClasses() int {
	return len(f.classes)
}

// Score returns the mean accuracy of Predict on the given test data.
func (f *ForestClassifier) Score(X, y mat.Matrix) (float64, error) {
	if !f.IsFitted() {
		return 0, errors.NewNotFittedError(f.name, "Score")
	}
	yPred, err := f.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyScore(y, yPred)
}

// uniqueLabels returns the sorted distinct values of the target column.
func uniqueLabels(y mat.Matrix) []float64 {
	rows, _ := y.Dims()
	seen := make(map[float64]struct{}, rows)
	classes := make([]float64, 0)
	for i := 0; i < rows; i++ {
		v := y.At(i, 0)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Float64s(classes)
	return classes
}

// encodeLabels maps each target value to its dense index in classes.
func encodeLabels(op string, y mat.Matrix, classes []float64) (*mat.Dense, error) {
	index := make(map[float64]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	rows, _ := y.Dims()
	encoded := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		idx, ok := index[y.At(i, 0)]
		if !ok {
			return nil, errors.NewValueError(op, "target contains a label outside the class set")
		}
		encoded.Set(i, 0, float64(idx))
	}
	return encoded, nil
}
