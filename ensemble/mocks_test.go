package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/random"
	"github.com/YuminosukeSato/goforest/pkg/errors"
)

// recordingRegressor captures the training data each clone receives and
// predicts the mean of its training targets.
type recordingRegressor struct {
	clones *[]*recordingRegressor

	rng     *random.State
	fitRows int
	fitX    []float64 // column 0 of the features seen at fit time
	fitY    []float64
	mean    float64
}

func newRecordingRegressor() *recordingRegressor {
	clones := make([]*recordingRegressor, 0)
	return &recordingRegressor{clones: &clones}
}

func (r *recordingRegressor) Clone() Estimator {
	c := &recordingRegressor{clones: r.clones}
	*r.clones = append(*r.clones, c)
	return c
}

func (r *recordingRegressor) SetRandomState(state *random.State) { r.rng = state }

func (r *recordingRegressor) Fit(X, y mat.Matrix) error {
	rows, _ := X.Dims()
	r.fitRows = rows
	r.fitX = make([]float64, rows)
	r.fitY = make([]float64, rows)
	var sum float64
	for i := 0; i < rows; i++ {
		r.fitX[i] = X.At(i, 0)
		r.fitY[i] = y.At(i, 0)
		sum += y.At(i, 0)
	}
	r.mean = sum / float64(rows)
	return nil
}

func (r *recordingRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, r.mean)
	}
	return pred, nil
}

// noisyRegressor folds a draw from the shared random state into its
// prediction, so the fitted ensemble depends on the generator sequence.
type noisyRegressor struct {
	rng   *random.State
	value float64
}

func (r *noisyRegressor) Clone() Estimator                   { return &noisyRegressor{} }
func (r *noisyRegressor) SetRandomState(state *random.State) { r.rng = state }

func (r *noisyRegressor) Fit(X, y mat.Matrix) error {
	rows, _ := y.Dims()
	var sum float64
	for i := 0; i < rows; i++ {
		sum += y.At(i, 0)
	}
	r.value = sum/float64(rows) + r.rng.Float64()
	return nil
}

func (r *noisyRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, r.value)
	}
	return pred, nil
}

// sequenceRegressor hands each clone the next value from a fixed sequence
// and predicts that constant.
type sequenceRegressor struct {
	values []float64
	next   *int
	value  float64
}

func newSequenceRegressor(values ...float64) *sequenceRegressor {
	next := 0
	return &sequenceRegressor{values: values, next: &next}
}

func (r *sequenceRegressor) Clone() Estimator {
	c := &sequenceRegressor{values: r.values, next: r.next, value: r.values[*r.next%len(r.values)]}
	*r.next++
	return c
}

func (r *sequenceRegressor) SetRandomState(state *random.State) {}
func (r *sequenceRegressor) Fit(X, y mat.Matrix) error          { return nil }

func (r *sequenceRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, r.value)
	}
	return pred, nil
}

// sequenceClassifier hands each clone the next fixed probability vector
// from a sequence and returns it for every sample.
type sequenceClassifier struct {
	probas [][]float64
	next   *int
	proba  []float64
	fitY   []float64
}

func newSequenceClassifier(probas ...[]float64) *sequenceClassifier {
	next := 0
	return &sequenceClassifier{probas: probas, next: &next}
}

func (c *sequenceClassifier) Clone() Estimator {
	clone := &sequenceClassifier{probas: c.probas, next: c.next, proba: c.probas[*c.next%len(c.probas)]}
	*c.next++
	return clone
}

func (c *sequenceClassifier) SetRandomState(state *random.State) {}

func (c *sequenceClassifier) Fit(X, y mat.Matrix) error {
	rows, _ := y.Dims()
	c.fitY = make([]float64, rows)
	for i := 0; i < rows; i++ {
		c.fitY[i] = y.At(i, 0)
	}
	return nil
}

func (c *sequenceClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, float64(argmaxSlice(c.proba)))
	}
	return pred, nil
}

func (c *sequenceClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	proba := mat.NewDense(rows, len(c.proba), nil)
	for i := 0; i < rows; i++ {
		for j, p := range c.proba {
			proba.Set(i, j, p)
		}
	}
	return proba, nil
}

func argmaxSlice(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// frequencyClassifier predicts the training label frequencies as its
// probability estimate. Trained on dense indices 0..k-1 it emits k columns.
type frequencyClassifier struct {
	nClasses int
	freq     []float64
	fitRows  int
}

func newFrequencyClassifier(nClasses int) *frequencyClassifier {
	return &frequencyClassifier{nClasses: nClasses}
}

func (c *frequencyClassifier) Clone() Estimator {
	return &frequencyClassifier{nClasses: c.nClasses}
}

func (c *frequencyClassifier) SetRandomState(state *random.State) {}

func (c *frequencyClassifier) Fit(X, y mat.Matrix) error {
	rows, _ := y.Dims()
	c.fitRows = rows
	c.freq = make([]float64, c.nClasses)
	for i := 0; i < rows; i++ {
		c.freq[int(y.At(i, 0))]++
	}
	for j := range c.freq {
		c.freq[j] /= float64(rows)
	}
	return nil
}

func (c *frequencyClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	pred := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred.Set(i, 0, float64(argmaxSlice(c.freq)))
	}
	return pred, nil
}

func (c *frequencyClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	proba := mat.NewDense(rows, len(c.freq), nil)
	for i := 0; i < rows; i++ {
		for j, p := range c.freq {
			proba.Set(i, j, p)
		}
	}
	return proba, nil
}

// failingEstimator fails on the nth Fit across all clones.
type failingEstimator struct {
	failAt   int
	fitCalls *int
}

func newFailingEstimator(failAt int) *failingEstimator {
	calls := 0
	return &failingEstimator{failAt: failAt, fitCalls: &calls}
}

func (f *failingEstimator) Clone() Estimator {
	return &failingEstimator{failAt: f.failAt, fitCalls: f.fitCalls}
}

func (f *failingEstimator) SetRandomState(state *random.State) {}

func (f *failingEstimator) Fit(X, y mat.Matrix) error {
	*f.fitCalls++
	if *f.fitCalls == f.failAt {
		return errors.New("synthetic fit failure")
	}
	return nil
}

func (f *failingEstimator) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	return mat.NewDense(rows, 1, nil), nil
}
