// Package metrics implements the evaluation metrics of the pipeline.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/pkg/errors"
)

// ROCAUC computes the area under the ROC curve as the probability that a
// uniformly random positive example receives a higher score than a
// uniformly random negative example. It is rank-based (Mann-Whitney):
// tied scores contribute 0.5, so the result is invariant under any
// strictly monotone transform of the scores.
//
// Labels must be binary (0 or 1). A partition containing a single class
// yields a DegenerateLabelsError, since AUC is undefined there.
func ROCAUC(yTrue, score *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "ROCAUC")
	}
	if score.Len() != n {
		return 0, errors.NewDimensionError("ROCAUC", n, score.Len(), 0)
	}

	var nPos, nNeg int
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 0:
			nNeg++
		case 1:
			nPos++
		default:
			return 0, errors.NewValueError("ROCAUC", "labels must be binary (0 or 1)")
		}
	}
	if nPos == 0 {
		return 0, errors.NewDegenerateLabelsError("scored", 0, nNeg)
	}
	if nNeg == 0 {
		return 0, errors.NewDegenerateLabelsError("scored", 1, nPos)
	}

	// Rank the scores ascending, averaging ranks across ties.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return score.AtVec(idx[a]) < score.AtVec(idx[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && score.AtVec(idx[j]) == score.AtVec(idx[i]) {
			j++
		}
		// 1-based ranks i+1..j averaged over the tie group.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}

	var rankSum float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			rankSum += ranks[i]
		}
	}

	p := float64(nPos)
	return (rankSum - p*(p+1)/2) / (p * float64(nNeg)), nil
}

// LogLoss computes the binary cross-entropy of probability scores against
// 0/1 labels, clipping scores away from 0 and 1.
func LogLoss(yTrue, score *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "LogLoss")
	}
	if score.Len() != n {
		return 0, errors.NewDimensionError("LogLoss", n, score.Len(), 0)
	}

	const eps = 1e-15
	var sum float64
	for i := 0; i < n; i++ {
		p := math.Min(math.Max(score.AtVec(i), eps), 1-eps)
		if yTrue.AtVec(i) == 1 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(n), nil
}
