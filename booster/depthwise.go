package booster

import (
	"math"

	"github.com/YuminosukeSato/scigo/sklearn/lightgbm"
	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// DepthWiseClassifier grows depth-capped trees: MaxDepth and
// MinSamplesLeaf drive the search while the engine's leaf cap is lifted
// high enough that depth is the binding constraint.
//
// Scores come from the raw decision output (log-odds margin), which is
// strictly monotone in the positive-class probability, so the rank-based
// AUC downstream sees the same ordering as a probability column would.
type DepthWiseClassifier struct {
	cfg Config
	clf *lightgbm.LGBMClassifier
}

// NewDepthWise creates a depth-wise adapter.
func NewDepthWise(cfg Config) *DepthWiseClassifier {
	return &DepthWiseClassifier{cfg: cfg}
}

// Fit trains a fresh engine instance on the given data.
func (d *DepthWiseClassifier) Fit(X mat.Matrix, y *mat.VecDense) error {
	clf := lightgbm.NewLGBMClassifier()
	clf.MaxDepth = d.cfg.MaxDepth
	clf.MinChildSamples = d.cfg.MinSamplesLeaf
	clf.NumIterations = d.cfg.NumRounds
	clf.LearningRate = d.cfg.LearningRate
	// Leaf budget wide enough that only the depth cap binds.
	clf.NumLeaves = 1 << 12
	clf.RandomState = d.cfg.Seed
	clf.Deterministic = true
	clf.Verbosity = -1

	if err := clf.Fit(X, y); err != nil {
		return err
	}
	d.clf = clf
	return nil
}

// PredictScore returns the raw decision value per row.
func (d *DepthWiseClassifier) PredictScore(X mat.Matrix) (*mat.VecDense, error) {
	if d.clf == nil {
		return nil, errors.NewNotFittedError("DepthWiseClassifier", "PredictScore")
	}
	// scigo exposes no DecisionFunction; its binary probability is
	// sigmoid(raw margin), so logit(P(y=1)) recovers the decision value.
	proba, err := d.clf.PredictProba(X)
	if err != nil {
		return nil, err
	}
	rows, _ := proba.Dims()
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		p := proba.At(i, 1)
		out.SetVec(i, math.Log(p/(1-p)))
	}
	return out, nil
}
