package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/aviatorml/delaybench/booster"
	"github.com/aviatorml/delaybench/core/model"
	"github.com/aviatorml/delaybench/dataset"
	"github.com/aviatorml/delaybench/metrics"
	"github.com/aviatorml/delaybench/modelselection"
	"github.com/aviatorml/delaybench/pkg/errors"
	"github.com/aviatorml/delaybench/pkg/log"
	"github.com/aviatorml/delaybench/preprocessing"
	"github.com/aviatorml/delaybench/report"
)

// Engine is one swappable boosting setup: a declared search grid and an
// adapter constructor.
type Engine struct {
	Name string
	Grid modelselection.ParamGrid
	New  func(booster.Config) model.Classifier
}

// DefaultEngines returns the two benchmark setups.
func DefaultEngines() []Engine {
	return []Engine{
		{
			Name: "depthwise",
			Grid: booster.DepthWiseGrid(),
			New:  func(cfg booster.Config) model.Classifier { return booster.NewDepthWise(cfg) },
		},
		{
			Name: "leafwise",
			Grid: booster.LeafWiseGrid(),
			New:  func(cfg booster.Config) model.Classifier { return booster.NewLeafWise(cfg) },
		},
	}
}

// Result is the outcome of one engine's evaluation.
type Result struct {
	Engine     string
	BestParams modelselection.Params
	BestScore  float64
	TrainAUC   float64
	TestAUC    float64
}

// Run executes the pipeline end to end:
//
//	load -> sample -> clean -> encode -> label -> split
//	     -> per engine: grid search -> refit -> AUC on train and test
//
// The encoder is fitted on the full dataset before the split on purpose:
// both partitions must share one category vocabulary for the reference
// behavior to be reproducible. A degenerate-labels failure in one engine's
// evaluation skips that engine; any other failure aborts the run.
func Run(ctx context.Context, cfg Config, engines []Engine) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default().With(slog.String(log.RunIDKey, uuid.NewString()))

	started := time.Now()
	ds, err := dataset.LoadCSV(cfg.DataPath, dataset.FlightSchema())
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		slog.String(log.StageKey, "load"),
		slog.Int(log.RowsKey, ds.NumRows()),
		slog.Int(log.ColumnsKey, len(ds.Schema())),
		slog.Int64(log.DurationMsKey, time.Since(started).Milliseconds()),
	)

	ds, err = ds.Sample(cfg.SampleFraction, cfg.SampleSeed)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset sampled", slog.String(log.StageKey, "sample"), slog.Int(log.RowsKey, ds.NumRows()))

	ds = ds.DropMissing()
	logger.Info("missing rows dropped", slog.String(log.StageKey, "clean"), slog.Int(log.RowsKey, ds.NumRows()))

	encoder := preprocessing.NewOrdinalEncoder(dataset.FlightCategoricals()...)
	if err := encoder.FitTransform(ds); err != nil {
		return nil, err
	}
	logger.Info("categories encoded", slog.String(log.StageKey, "encode"))

	binarizer := preprocessing.NewLabelBinarizer(dataset.ColArrivalDelay, cfg.DelayThreshold)
	if err := binarizer.Transform(ds); err != nil {
		return nil, err
	}

	X, err := ds.Matrix(dataset.ColArrivalDelay)
	if err != nil {
		return nil, err
	}
	y, err := ds.Vector(dataset.ColArrivalDelay)
	if err != nil {
		return nil, err
	}
	categorical := categoricalFeatureIndices(ds)

	XTrain, XTest, yTrain, yTest, err := modelselection.TrainTestSplit(X, y, cfg.TestFraction, cfg.SplitSeed)
	if err != nil {
		return nil, err
	}
	trainRows, _ := XTrain.Dims()
	testRows, _ := XTest.Dims()
	logger.Info("dataset split",
		slog.String(log.StageKey, "split"),
		slog.Int(log.TrainRowsKey, trainRows),
		slog.Int(log.TestRowsKey, testRows),
	)

	base := booster.Config{
		CategoricalFeatures: categorical,
		Seed:                int(cfg.SplitSeed),
	}

	var results []Result
	for _, engine := range engines {
		engineLog := logger.With(slog.String(log.EngineKey, engine.Name))

		result, err := evaluateEngine(ctx, cfg, engine, base, engineLog, XTrain, XTest, yTrain, yTest)
		if err != nil {
			var degenerate *errors.DegenerateLabelsError
			if errors.As(err, &degenerate) {
				engineLog.Warn("evaluation skipped: single-class partition", log.ErrAttr(err))
				continue
			}
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// evaluateEngine runs grid search, refits with the winning configuration
// and scores both partitions.
func evaluateEngine(ctx context.Context, cfg Config, engine Engine, base booster.Config,
	logger *slog.Logger, XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense) (*Result, error) {

	search := &modelselection.GridSearchCV{
		Grid: engine.Grid,
		New: func(p modelselection.Params) model.Classifier {
			return engine.New(booster.FromParams(p, base))
		},
		Splitter: modelselection.NewStratifiedKFold(cfg.CVFolds, true, cfg.SplitSeed),
		Scorer:   metrics.ROCAUC,
	}

	started := time.Now()
	found, err := search.Search(ctx, XTrain, yTrain)
	if err != nil {
		return nil, err
	}
	logger.Info("grid search finished",
		slog.String(log.StageKey, "search"),
		slog.Int(log.CellsKey, len(found.CellScores)),
		slog.Float64(log.BestScoreKey, found.BestScore),
		slog.Int64(log.DurationMsKey, time.Since(started).Milliseconds()),
	)

	clf := engine.New(booster.FromParams(found.BestParams, base))
	if err := clf.Fit(XTrain, yTrain); err != nil {
		return nil, err
	}

	trainScore, err := clf.PredictScore(XTrain)
	if err != nil {
		return nil, err
	}
	trainAUC, err := metrics.ROCAUC(yTrain, trainScore)
	if err != nil {
		return nil, err
	}

	testScore, err := clf.PredictScore(XTest)
	if err != nil {
		return nil, err
	}
	testAUC, err := metrics.ROCAUC(yTest, testScore)
	if err != nil {
		return nil, err
	}

	logger.Info("engine evaluated",
		slog.String(log.StageKey, "evaluate"),
		slog.Float64(log.TrainAUCKey, trainAUC),
		slog.Float64(log.TestAUCKey, testAUC),
	)

	if cfg.ReportPath != "" {
		if err := saveCurves(cfg.ReportPath, engine.Name, yTrain, trainScore, yTest, testScore); err != nil {
			return nil, err
		}
	}

	return &Result{
		Engine:     engine.Name,
		BestParams: found.BestParams,
		BestScore:  found.BestScore,
		TrainAUC:   trainAUC,
		TestAUC:    testAUC,
	}, nil
}

// categoricalFeatureIndices maps the encoded nominal columns to their
// positions in the feature matrix.
func categoricalFeatureIndices(ds *dataset.Dataset) []int {
	features := ds.FeatureNames(dataset.ColArrivalDelay)
	position := make(map[string]int, len(features))
	for i, name := range features {
		position[name] = i
	}
	var indices []int
	for _, name := range dataset.FlightCategoricals() {
		if i, ok := position[name]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// saveCurves writes one ROC plot per engine next to the configured path.
func saveCurves(basePath, engineName string, yTrain, trainScore, yTest, testScore *mat.VecDense) error {
	trainCurve, err := report.ROCCurve(yTrain, trainScore)
	if err != nil {
		return err
	}
	testCurve, err := report.ROCCurve(yTest, testScore)
	if err != nil {
		return err
	}

	ext := filepath.Ext(basePath)
	path := strings.TrimSuffix(basePath, ext) + "_" + engineName + ext
	return report.SaveROCPlot(path, map[string][]report.Point{
		"train": trainCurve,
		"test":  testCurve,
	})
}
