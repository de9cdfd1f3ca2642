package log

// Standard attribute keys. Using these keys consistently keeps library logs
// filterable across models and operations.
const (
	// ModelNameKey identifies the model type, e.g. "RandomForestClassifier".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict",
	// "predict_proba", "score".
	OperationKey = "ml.operation"

	// SamplesKey is the number of rows in the input matrix.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns in the input matrix.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct classes seen at fit time.
	ClassesKey = "data.classes"

	// EstimatorsKey is the number of ensemble members.
	EstimatorsKey = "ensemble.estimators"

	// BootstrapKey reports whether bootstrap resampling is enabled.
	BootstrapKey = "ensemble.bootstrap"

	// SeedKey is the random seed in use.
	SeedKey = "ensemble.seed"

	// DurationMsKey is the elapsed wall time of the operation in
	// milliseconds.
	DurationMsKey = "duration.ms"
)
