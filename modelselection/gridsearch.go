package modelselection

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/core/model"
	"github.com/aviatorml/delaybench/pkg/errors"
)

// Factory builds a fresh, unfitted classifier for one grid point.
type Factory func(Params) model.Classifier

// Scorer evaluates predicted scores against true labels; higher is better.
type Scorer func(yTrue, score *mat.VecDense) (float64, error)

// CellScore is the cross-validated result of one grid point.
type CellScore struct {
	Params    Params
	MeanScore float64
}

// SearchResult is the outcome of a grid search.
type SearchResult struct {
	BestParams Params
	BestScore  float64
	CellScores []CellScore
}

// GridSearchCV exhaustively evaluates every combination of Grid with k-fold
// cross-validation and keeps the combination with the highest mean score.
// Grid cells are evaluated concurrently; to the caller the search is one
// opaque blocking call. Errors from the underlying engine are surfaced
// unchanged.
type GridSearchCV struct {
	Grid     ParamGrid
	New      Factory
	Splitter Splitter
	Scorer   Scorer

	// Parallelism caps concurrent cell evaluations; 0 means GOMAXPROCS.
	Parallelism int
}

// Search runs the grid search over the prepared training data.
func (gs *GridSearchCV) Search(ctx context.Context, X mat.Matrix, y *mat.VecDense) (*SearchResult, error) {
	if gs.New == nil || gs.Scorer == nil || gs.Splitter == nil {
		return nil, errors.NewValueError("GridSearchCV.Search", "New, Scorer and Splitter must all be set")
	}
	combos := gs.Grid.Combinations()
	if len(combos) == 0 {
		return nil, errors.NewValueError("GridSearchCV.Search", "empty parameter grid")
	}

	n, _ := X.Dims()
	folds := gs.Splitter.Split(n, y)

	scores := make([]float64, len(combos))
	g, ctx := errgroup.WithContext(ctx)
	limit := gs.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, params := range combos {
		g.Go(func() error {
			mean, err := gs.scoreCell(ctx, X, y, folds, params)
			if err != nil {
				return err
			}
			scores[i] = mean
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &SearchResult{
		BestParams: combos[0],
		BestScore:  scores[0],
		CellScores: make([]CellScore, len(combos)),
	}
	for i, params := range combos {
		result.CellScores[i] = CellScore{Params: params, MeanScore: scores[i]}
		if scores[i] > result.BestScore {
			result.BestScore = scores[i]
			result.BestParams = params
		}
	}
	return result, nil
}

// scoreCell trains and scores one grid point across all folds.
func (gs *GridSearchCV) scoreCell(ctx context.Context, X mat.Matrix, y *mat.VecDense, folds []Fold, params Params) (float64, error) {
	var sum float64
	for _, fold := range folds {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		trainX, trainY := takeRows(X, y, fold.TrainIndices)
		testX, testY := takeRows(X, y, fold.TestIndices)

		clf := gs.New(params)
		if err := clf.Fit(trainX, trainY); err != nil {
			return 0, err
		}
		score, err := clf.PredictScore(testX)
		if err != nil {
			return 0, err
		}
		s, err := gs.Scorer(testY, score)
		if err != nil {
			return 0, err
		}
		sum += s
	}
	return sum / float64(len(folds)), nil
}
