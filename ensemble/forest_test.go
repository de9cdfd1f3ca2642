package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goforest/core/random"
)

// TestDeterminismSameSeed verifies two forests with identical
// hyperparameters and the same seed produce bit-identical predictions,
// with both bootstrap draws and learner-internal randomness in play.
func TestDeterminismSameSeed(t *testing.T) {
	X, y := indexedData(120)
	Xq, _ := indexedData(30)

	build := func() *mat.Dense {
		forest := NewRandomForestRegressor(&noisyRegressor{},
			WithNEstimators(25),
			WithRandomState(42),
		)
		require.NoError(t, forest.Fit(X, y))
		pred, err := forest.Predict(Xq)
		require.NoError(t, err)
		return pred.(*mat.Dense)
	}

	first := build()
	second := build()
	assert.True(t, mat.Equal(first, second), "same seed must reproduce identical predictions")
}

// TestDeterminismDifferentSeeds verifies distinct seeds actually change
// the ensemble.
func TestDeterminismDifferentSeeds(t *testing.T) {
	X, y := indexedData(120)

	predict := func(seed int64) mat.Matrix {
		forest := NewRandomForestRegressor(&noisyRegressor{},
			WithNEstimators(10),
			WithRandomState(seed),
		)
		require.NoError(t, forest.Fit(X, y))
		pred, err := forest.Predict(X)
		require.NoError(t, err)
		return pred
	}

	assert.False(t, mat.Equal(predict(1), predict(2)))
}

// TestWithRandomSourceSharing verifies an explicitly supplied source is
// taken by reference and advanced by the fit.
func TestWithRandomSourceSharing(t *testing.T) {
	X, y := indexedData(50)

	state := random.NewState(7)
	forest := NewRandomForestRegressor(&noisyRegressor{},
		WithNEstimators(5),
		WithRandomSource(state),
	)
	require.NoError(t, forest.Fit(X, y))

	// The shared cursor advanced: the state no longer matches a fresh one.
	fresh := random.NewState(7)
	assert.NotEqual(t, fresh.Int63(), state.Int63())
}

// TestVariantBootstrapDefaults verifies the variant table: deterministic
// forests bootstrap by default, extremely randomized forests do not, and
// WithBootstrap overrides either.
func TestVariantBootstrapDefaults(t *testing.T) {
	assert.True(t, NewRandomForestRegressor(&noisyRegressor{}).Bootstrap())
	assert.True(t, NewRandomForestClassifier(newFrequencyClassifier(2)).Bootstrap())
	assert.False(t, NewExtraTreesRegressor(&noisyRegressor{}).Bootstrap())
	assert.False(t, NewExtraTreesClassifier(newFrequencyClassifier(2)).Bootstrap())

	assert.False(t, NewRandomForestRegressor(&noisyRegressor{}, WithBootstrap(false)).Bootstrap())
	assert.True(t, NewExtraTreesRegressor(&noisyRegressor{}, WithBootstrap(true)).Bootstrap())
}

// TestDefaultNEstimators verifies the default ensemble size and the fit
// order of the members.
func TestDefaultNEstimators(t *testing.T) {
	X, y := indexedData(30)

	proto := newRecordingRegressor()
	forest := NewRandomForestRegressor(proto, WithRandomState(1))
	assert.Equal(t, DefaultNEstimators, forest.NEstimators())

	require.NoError(t, forest.Fit(X, y))
	members := forest.Estimators()
	require.Len(t, members, DefaultNEstimators)
	for i, m := range members {
		assert.Same(t, (*proto.clones)[i], m, "member %d out of fit order", i)
	}
}

// TestEstimatorsReturnsCopy verifies mutating the returned slice does not
// touch the fitted ensemble.
func TestEstimatorsReturnsCopy(t *testing.T) {
	X, y := indexedData(20)

	forest := NewRandomForestRegressor(newRecordingRegressor(),
		WithNEstimators(3),
		WithRandomState(1),
	)
	require.NoError(t, forest.Fit(X, y))

	members := forest.Estimators()
	members[0] = nil
	again := forest.Estimators()
	assert.NotNil(t, again[0])
}
