package log

// Run and stage context.
const (
	// RunIDKey identifies a single pipeline execution.
	RunIDKey = "run.id"

	// StageKey names the pipeline stage emitting the record.
	// Standard values: "load", "sample", "clean", "encode", "label",
	// "split", "search", "fit", "evaluate".
	StageKey = "pipeline.stage"

	// EngineKey names the boosting engine adapter being exercised.
	EngineKey = "engine.name"
)

// Data shape.
const (
	// RowsKey is the number of rows in the dataset at the current stage.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns in the dataset.
	ColumnsKey = "data.columns"

	// TrainRowsKey and TestRowsKey record partition sizes after the split.
	TrainRowsKey = "data.train_rows"
	TestRowsKey  = "data.test_rows"
)

// Results.
const (
	// TrainAUCKey and TestAUCKey carry the final per-partition metric.
	TrainAUCKey = "result.train_auc"
	TestAUCKey  = "result.test_auc"

	// BestScoreKey is the best mean cross-validation score found by the
	// grid search.
	BestScoreKey = "search.best_score"

	// CellsKey is the number of hyperparameter combinations evaluated.
	CellsKey = "search.cells"

	// DurationMsKey records the execution time of a stage in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
