// Package config bundles the validation engine's configuration into an
// explicit struct passed at construction time. There is no ambient or
// global configuration lookup anywhere in the engine.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"driftgate/internal/errors"
)

// DefaultDriftThreshold is the significance level α applied
// independently to each column's KS p-value.
const DefaultDriftThreshold = 0.05

// DataValidationConfig holds every path and threshold one validation
// run needs.
type DataValidationConfig struct {
	SchemaFilePath string

	TrainFilePath string
	TestFilePath  string

	ValidTrainFilePath   string
	ValidTestFilePath    string
	InvalidTrainFilePath string
	InvalidTestFilePath  string
	DriftReportFilePath  string

	DriftThreshold float64
}

// Load reads configuration from environment variables (with an optional
// .env file) and validates it.
func Load() (*DataValidationConfig, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := &DataValidationConfig{
		SchemaFilePath:       os.Getenv("DRIFTGATE_SCHEMA_FILE"),
		TrainFilePath:        os.Getenv("DRIFTGATE_TRAIN_FILE"),
		TestFilePath:         os.Getenv("DRIFTGATE_TEST_FILE"),
		ValidTrainFilePath:   os.Getenv("DRIFTGATE_VALID_TRAIN_FILE"),
		ValidTestFilePath:    os.Getenv("DRIFTGATE_VALID_TEST_FILE"),
		InvalidTrainFilePath: os.Getenv("DRIFTGATE_INVALID_TRAIN_FILE"),
		InvalidTestFilePath:  os.Getenv("DRIFTGATE_INVALID_TEST_FILE"),
		DriftReportFilePath:  os.Getenv("DRIFTGATE_DRIFT_REPORT_FILE"),
		DriftThreshold:       DefaultDriftThreshold,
	}

	if raw := os.Getenv("DRIFTGATE_DRIFT_THRESHOLD"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("load_config", fmt.Sprintf("DRIFTGATE_DRIFT_THRESHOLD %q is not a number", raw))
		}
		cfg.DriftThreshold = threshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are set and the threshold is a
// usable significance level.
func (c *DataValidationConfig) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"schema file path", c.SchemaFilePath},
		{"train file path", c.TrainFilePath},
		{"test file path", c.TestFilePath},
		{"valid train file path", c.ValidTrainFilePath},
		{"valid test file path", c.ValidTestFilePath},
		{"drift report file path", c.DriftReportFilePath},
	}
	for _, field := range required {
		if field.value == "" {
			return errors.ConfigInvalid("validate_config", field.name+" is required")
		}
	}
	if c.DriftThreshold <= 0 || c.DriftThreshold >= 1 {
		return errors.ConfigInvalid("validate_config", fmt.Sprintf("drift threshold %v must be in (0, 1)", c.DriftThreshold))
	}
	return nil
}
