// Package ensemble implements forests of bagged estimators.
//
// The package structure is the following:
//
//   - The Estimator and ClassifierEstimator interfaces define the capability
//     contract a base learner must satisfy: Clone, SetRandomState, Fit,
//     Predict and, for classifiers, PredictProba. Tree induction itself is
//     not part of this package; any learner satisfying the contract plugs in.
//
//   - The unexported builder fits the ensemble: for each member it clones
//     the prototype, threads the shared random source into the clone, draws
//     a bootstrap sample when enabled, and fits the clone. Fitting is
//     all-or-nothing: the first member failure aborts the build.
//
//   - ForestClassifier and ForestRegressor implement the prediction logic by
//     averaging the outputs of the fitted members: mean class probabilities
//     with a lowest-index tie-break for classification, arithmetic mean for
//     regression.
//
//   - NewRandomForestClassifier / NewRandomForestRegressor construct forests
//     with bootstrap resampling enabled by default, for deterministic base
//     learners in the style of Breiman's random forests.
//
//   - NewExtraTreesClassifier / NewExtraTreesRegressor construct forests
//     with bootstrap disabled by default, for extremely randomized base
//     learners whose variance comes from internal random split selection.
//
// All randomness flows from one seedable random source shared by reference
// across bootstrap draws and cloned learners, so a fixed seed reproduces an
// identical ensemble given deterministic learners and a fixed call order.
package ensemble
