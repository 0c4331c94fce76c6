// Command delaybench runs the flight-delay boosting benchmark: it prepares
// the dataset deterministically, grid-searches both engine setups and
// reports train/test ROC-AUC for each.
//
// Usage:
//
//	delaybench [config.yaml]
//
// Without an argument the built-in defaults are used (flights.csv in the
// working directory). There are no flags; every knob lives in the config
// file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aviatorml/delaybench/pipeline"
	"github.com/aviatorml/delaybench/pkg/log"
)

func main() {
	cfg := pipeline.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := pipeline.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "delaybench: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log.SetupLogger(cfg.LogLevel)

	results, err := pipeline.Run(context.Background(), cfg, pipeline.DefaultEngines())
	if err != nil {
		slog.Error("run failed", log.ErrAttr(err))
		os.Exit(1)
	}

	for _, r := range results {
		slog.Info("benchmark result",
			slog.String(log.EngineKey, r.Engine),
			slog.Float64(log.TrainAUCKey, r.TrainAUC),
			slog.Float64(log.TestAUCKey, r.TestAUC),
			slog.Any("best_params", r.BestParams),
		)
	}
}
