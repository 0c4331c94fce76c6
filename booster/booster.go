// Package booster adapts the external gradient-boosting engine to the
// pipeline's two-method Classifier capability.
//
// Two adapters with different tree-growth profiles are provided: DepthWise
// caps tree depth and minimum leaf membership while leaving the leaf count
// effectively unbounded, and LeafWise tunes the leaf count directly and
// forwards categorical feature indices to the engine unmodified. The
// pipeline consumes both through core/model.Classifier, so adding a third
// engine is one more adapter, not a pipeline change.
//
// No boosting logic lives here; engine errors pass through to the caller
// unchanged.
package booster

import (
	"github.com/aviatorml/delaybench/modelselection"
)

// Config carries the hyperparameters both adapters understand.
type Config struct {
	MaxDepth       int
	MinSamplesLeaf int
	MaxLeaves      int
	NumRounds      int
	LearningRate   float64

	// CategoricalFeatures lists feature-matrix column indices to be
	// treated as nominal at training time. Only the leaf-wise adapter
	// forwards it; for the depth-wise adapter the encoded integers are
	// plain ordinals.
	CategoricalFeatures []int

	// Seed fixes the engine's internal randomness.
	Seed int
}

// Hyperparameter names shared by the grids and FromParams.
const (
	ParamMaxDepth       = "max_depth"
	ParamMinSamplesLeaf = "min_samples_leaf"
	ParamMaxLeaves      = "max_leaves"
	ParamNumRounds      = "num_rounds"
	ParamLearningRate   = "learning_rate"
)

// FromParams overlays one grid point onto a base configuration. Keys the
// grid point does not carry keep the base value.
func FromParams(p modelselection.Params, base Config) Config {
	cfg := base
	if v, ok := p[ParamMaxDepth]; ok {
		cfg.MaxDepth = int(v)
	}
	if v, ok := p[ParamMinSamplesLeaf]; ok {
		cfg.MinSamplesLeaf = int(v)
	}
	if v, ok := p[ParamMaxLeaves]; ok {
		cfg.MaxLeaves = int(v)
	}
	if v, ok := p[ParamNumRounds]; ok {
		cfg.NumRounds = int(v)
	}
	if v, ok := p[ParamLearningRate]; ok {
		cfg.LearningRate = v
	}
	return cfg
}

// DepthWiseGrid declares the search space of the depth-wise adapter.
func DepthWiseGrid() modelselection.ParamGrid {
	return modelselection.ParamGrid{
		ParamMaxDepth:       {10, 30, 50},
		ParamMinSamplesLeaf: {1, 3, 6},
		ParamNumRounds:      {200},
		ParamLearningRate:   {0.05, 0.1, 0.16},
	}
}

// LeafWiseGrid declares the search space of the leaf-wise adapter.
func LeafWiseGrid() modelselection.ParamGrid {
	return modelselection.ParamGrid{
		ParamMaxDepth:     {25, 50, 75},
		ParamLearningRate: {0.01, 0.05, 0.1},
		ParamMaxLeaves:    {300, 900, 1200},
		ParamNumRounds:    {200},
	}
}
