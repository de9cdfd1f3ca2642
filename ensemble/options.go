package ensemble

import "github.com/YuminosukeSato/goforest/core/random"

// DefaultNEstimators is the ensemble size used when WithNEstimators is not
// given.
const DefaultNEstimators = 10

// Option configures a forest at construction time.
type Option func(*forestConfig)

type forestConfig struct {
	nEstimators int
	bootstrap   bool
	rng         *random.State
}

func newForestConfig(bootstrap bool, opts []Option) forestConfig {
	cfg := forestConfig{
		nEstimators: DefaultNEstimators,
		bootstrap:   bootstrap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = random.NewStateFromEntropy()
	}
	return cfg
}

// WithNEstimators sets the number of ensemble members. Values below 1 are
// rejected at Fit time.
func WithNEstimators(n int) Option {
	return func(cfg *forestConfig) {
		cfg.nEstimators = n
	}
}

// WithBootstrap overrides the variant's default bootstrap policy.
func WithBootstrap(bootstrap bool) Option {
	return func(cfg *forestConfig) {
		cfg.bootstrap = bootstrap
	}
}

// WithRandomState seeds the forest's shared random source. Two forests
// built with the same hyperparameters, the same seed and deterministic
// learners produce identical ensembles and predictions.
func WithRandomState(seed int64) Option {
	return func(cfg *forestConfig) {
		cfg.rng = random.NewState(seed)
	}
}

// WithRandomSource supplies an existing random source. The forest takes the
// state by reference and advances it; sharing one source across several
// forests couples their draw sequences.
func WithRandomSource(state *random.State) Option {
	return func(cfg *forestConfig) {
		cfg.rng = state
	}
}
