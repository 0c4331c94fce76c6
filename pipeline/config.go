// Package pipeline wires the preparation stages and the engine evaluations
// into one sequential, reproducible run.
package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aviatorml/delaybench/pkg/errors"
	"github.com/aviatorml/delaybench/preprocessing"
)

// Config carries every knob of a run explicitly; nothing is read from
// process-wide state.
type Config struct {
	// DataPath is the flights CSV to load.
	DataPath string `yaml:"data_path"`

	// SampleFraction of rows kept by the deterministic subsample.
	SampleFraction float64 `yaml:"sample_fraction"`

	// SampleSeed seeds the subsample permutation.
	SampleSeed uint64 `yaml:"sample_seed"`

	// TestFraction of rows held out for the test partition.
	TestFraction float64 `yaml:"test_fraction"`

	// SplitSeed seeds the train/test permutation, the cross-validation
	// folds and the engines' internal randomness.
	SplitSeed uint64 `yaml:"split_seed"`

	// DelayThreshold in minutes; a strictly larger arrival delay counts
	// as the positive class.
	DelayThreshold float64 `yaml:"delay_threshold"`

	// CVFolds is the number of cross-validation folds per grid cell.
	CVFolds int `yaml:"cv_folds"`

	// ReportPath, when set, is the base file the per-engine ROC curve
	// plots are written to (the engine name is appended to the stem).
	ReportPath string `yaml:"report_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig mirrors the reference run: 10% subsample, 25% test split,
// 10-minute delay cut, 2-fold cross-validation.
func DefaultConfig() Config {
	return Config{
		DataPath:       "flights.csv",
		SampleFraction: 0.1,
		SampleSeed:     100,
		TestFraction:   0.25,
		SplitSeed:      42,
		DelayThreshold: preprocessing.DelayThreshold,
		CVFolds:        2,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.NewDataAccessError("read config", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.NewValidationError("data_path", "must not be empty", c.DataPath)
	}
	if c.SampleFraction <= 0 || c.SampleFraction > 1 {
		return errors.NewValidationError("sample_fraction", "must be in (0, 1]", c.SampleFraction)
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return errors.NewValidationError("test_fraction", "must be in (0, 1)", c.TestFraction)
	}
	if c.CVFolds < 2 {
		return errors.NewValidationError("cv_folds", "must be at least 2", c.CVFolds)
	}
	return nil
}
