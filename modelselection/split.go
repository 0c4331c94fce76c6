// Package modelselection implements the deterministic train/test split,
// k-fold splitters and the exhaustive hyperparameter grid search the
// pipeline delegates model tuning to.
package modelselection

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// TrainTestSplit partitions the rows of X and the row-aligned label vector
// y into disjoint, exhaustive train and test sets. The test set holds
// round(testFraction × n) rows chosen by a seeded pseudo-random
// permutation, so the same (rows, seed, fraction) always produces the same
// partition. Within each partition the original row order is preserved.
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testFraction float64, seed uint64) (
	XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error,
) {
	n, _ := X.Dims()
	if n == 0 {
		return nil, nil, nil, nil, errors.Wrap(errors.ErrEmptyData, "TrainTestSplit")
	}
	if y.Len() != n {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", n, y.Len(), 0)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "test fraction must be in (0, 1)")
	}

	nTest := int(math.Round(testFraction * float64(n)))

	r := rand.New(rand.NewPCG(seed, seed))
	perm := r.Perm(n)

	testIdx := append([]int(nil), perm[:nTest]...)
	trainIdx := append([]int(nil), perm[nTest:]...)
	sort.Ints(testIdx)
	sort.Ints(trainIdx)

	XTrain, yTrain = takeRows(X, y, trainIdx)
	XTest, yTest = takeRows(X, y, testIdx)
	return XTrain, XTest, yTrain, yTest, nil
}

// takeRows copies the indexed rows of X and y into fresh containers.
func takeRows(X mat.Matrix, y *mat.VecDense, indices []int) (*mat.Dense, *mat.VecDense) {
	_, cols := X.Dims()
	sub := mat.NewDense(len(indices), cols, nil)
	subY := mat.NewVecDense(len(indices), nil)
	for i, idx := range indices {
		for j := 0; j < cols; j++ {
			sub.Set(i, j, X.At(idx, j))
		}
		subY.SetVec(i, y.AtVec(idx))
	}
	return sub, subY
}
