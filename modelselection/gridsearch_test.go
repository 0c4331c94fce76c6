package modelselection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/core/model"
	"github.com/aviatorml/delaybench/metrics"
)

// noisyStub scores rows by their first feature plus a per-row disturbance
// scaled by the "noise" hyperparameter, so smaller noise ranks better.
type noisyStub struct {
	noise  float64
	fitted bool
}

func (s *noisyStub) Fit(_ mat.Matrix, _ *mat.VecDense) error {
	s.fitted = true
	return nil
}

func (s *noisyStub) PredictScore(X mat.Matrix) (*mat.VecDense, error) {
	rows, _ := X.Dims()
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		disturbance := float64((i*37)%100-50) / 50
		out.SetVec(i, X.At(i, 0)+s.noise*disturbance*100)
	}
	return out, nil
}

func searchData(n int) (*mat.Dense, *mat.VecDense) {
	X := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i%7))
		if i >= n/2 {
			y.SetVec(i, 1)
		}
	}
	return X, y
}

func TestParamGridCombinations(t *testing.T) {
	grid := ParamGrid{
		"max_depth":        {10, 30, 50},
		"min_samples_leaf": {1, 3, 6},
		"num_rounds":       {200},
		"learning_rate":    {0.05, 0.1, 0.16},
	}
	combos := grid.Combinations()
	assert.Len(t, combos, 27)

	// Stable enumeration order across calls.
	assert.Equal(t, combos, grid.Combinations())

	seen := make(map[[4]float64]bool)
	for _, p := range combos {
		key := [4]float64{p["max_depth"], p["min_samples_leaf"], p["num_rounds"], p["learning_rate"]}
		assert.False(t, seen[key], "duplicate combination %v", p)
		seen[key] = true
		assert.Equal(t, 200.0, p["num_rounds"])
	}
}

func TestGridSearchCVPicksBestCell(t *testing.T) {
	X, y := searchData(120)

	gs := &GridSearchCV{
		Grid: ParamGrid{"noise": {2.0, 0.0, 1.0}},
		New: func(p Params) model.Classifier {
			return &noisyStub{noise: p["noise"]}
		},
		Splitter: NewStratifiedKFold(4, true, 42),
		Scorer:   metrics.ROCAUC,
	}

	result, err := gs.Search(context.Background(), X, y)
	require.NoError(t, err)

	assert.Len(t, result.CellScores, 3)
	assert.Equal(t, 0.0, result.BestParams["noise"], "noise-free cell ranks perfectly")
	assert.InDelta(t, 1.0, result.BestScore, 1e-9)

	for _, cell := range result.CellScores {
		if cell.Params["noise"] > 0 {
			assert.Less(t, cell.MeanScore, result.BestScore)
		}
	}
}

func TestGridSearchCVDeterministic(t *testing.T) {
	X, y := searchData(80)
	newSearch := func() *GridSearchCV {
		return &GridSearchCV{
			Grid: ParamGrid{"noise": {0.3, 0.9}},
			New: func(p Params) model.Classifier {
				return &noisyStub{noise: p["noise"]}
			},
			Splitter: NewStratifiedKFold(4, true, 7),
			Scorer:   metrics.ROCAUC,
		}
	}

	a, err := newSearch().Search(context.Background(), X, y)
	require.NoError(t, err)
	b, err := newSearch().Search(context.Background(), X, y)
	require.NoError(t, err)

	assert.Equal(t, a.BestParams, b.BestParams)
	assert.Equal(t, a.CellScores, b.CellScores)
}

func TestGridSearchCVEmptyGrid(t *testing.T) {
	X, y := searchData(20)
	gs := &GridSearchCV{
		Grid:     ParamGrid{"noise": {}},
		New:      func(Params) model.Classifier { return &noisyStub{} },
		Splitter: NewKFold(2, false, 0),
		Scorer:   metrics.ROCAUC,
	}
	_, err := gs.Search(context.Background(), X, y)
	assert.Error(t, err)
}
