package booster

import (
	"github.com/YuminosukeSato/scigo/sklearn/lightgbm"
	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// LeafWiseClassifier tunes the leaf count directly, the engine's native
// growth strategy, and forwards CategoricalFeatures to the engine
// unmodified so its split finding treats those columns as nominal.
//
// Scores come from the positive-class probability column.
type LeafWiseClassifier struct {
	cfg Config
	clf *lightgbm.LGBMClassifier
}

// NewLeafWise creates a leaf-wise adapter.
func NewLeafWise(cfg Config) *LeafWiseClassifier {
	return &LeafWiseClassifier{cfg: cfg}
}

// Fit trains a fresh engine instance on the given data.
func (l *LeafWiseClassifier) Fit(X mat.Matrix, y *mat.VecDense) error {
	clf := lightgbm.NewLGBMClassifier()
	clf.NumLeaves = l.cfg.MaxLeaves
	clf.MaxDepth = l.cfg.MaxDepth
	clf.NumIterations = l.cfg.NumRounds
	clf.LearningRate = l.cfg.LearningRate
	clf.CategoricalFeatures = append([]int(nil), l.cfg.CategoricalFeatures...)
	clf.RandomState = l.cfg.Seed
	clf.Deterministic = true
	clf.Verbosity = -1

	if err := clf.Fit(X, y); err != nil {
		return err
	}
	l.clf = clf
	return nil
}

// PredictScore returns P(y=1) per row.
func (l *LeafWiseClassifier) PredictScore(X mat.Matrix) (*mat.VecDense, error) {
	if l.clf == nil {
		return nil, errors.NewNotFittedError("LeafWiseClassifier", "PredictScore")
	}
	proba, err := l.clf.PredictProba(X)
	if err != nil {
		return nil, err
	}
	rows, cols := proba.Dims()
	if cols < 2 {
		return nil, errors.NewDimensionError("LeafWiseClassifier.PredictScore", 2, cols, 1)
	}
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		out.SetVec(i, proba.At(i, 1))
	}
	return out, nil
}
