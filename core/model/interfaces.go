package model

import (
	"gonum.org/v1/gonum/mat"
)

// Classifier is the two-method capability every boosting engine adapter
// must provide. The evaluator and the grid search consume trained models
// through this interface only, so engines stay swappable.
//
// PredictScore returns one continuous score per row, monotonically related
// to the probability of the positive class. Whether an adapter derives it
// from a class-probability column or from the raw decision output is its
// own business; the rank-based AUC downstream is invariant to the choice.
type Classifier interface {
	// Fit trains the model on a feature matrix and a row-aligned 0/1
	// label vector.
	Fit(X mat.Matrix, y *mat.VecDense) error

	// PredictScore returns the positive-class score for each row of X.
	PredictScore(X mat.Matrix) (*mat.VecDense, error)
}
