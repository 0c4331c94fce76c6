// Package delaybench benchmarks two gradient-boosted decision tree setups
// on a flight-delay dataset and reports ROC-AUC for each.
//
// The module itself contains no boosting code. It implements the
// deterministic preparation and evaluation pipeline that feeds an external
// boosting engine identically through two swappable adapters:
//
//	Loader -> Sampler -> Cleaner -> Encoder -> Labeler -> Splitter
//	       -> {grid search -> refit -> ROC-AUC} per engine
//
// Every randomized stage (sampling, splitting, cross-validation folds) is
// seeded, so a run is reproducible end to end: the same input file and the
// same configuration always yield the same train/test partition, the same
// category codes, and the same metric values.
//
// # Quick start
//
//	cfg := pipeline.DefaultConfig()
//	cfg.DataPath = "flights.csv"
//	results, err := pipeline.Run(context.Background(), cfg, pipeline.DefaultEngines())
//
// # Packages
//
//   - dataset: CSV loading, deterministic subsampling, missing-value removal
//   - preprocessing: ordinal category encoding and label binarization
//   - modelselection: train/test split, k-fold splitters, grid search
//   - metrics: rank-based ROC-AUC and log loss
//   - booster: adapters over the external boosting engine
//   - report: ROC curve rendering
//   - pipeline: configuration and the sequential driver
package delaybench
