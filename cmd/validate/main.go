// Command validate runs one data validation: it loads configuration
// from the environment, gates the configured train/test pair, and logs
// the resulting artifact.
package main

import (
	"os"

	"driftgate/domain/artifact"
	"driftgate/internal"
	"driftgate/internal/config"
	"driftgate/internal/validation"
)

func main() {
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration: %v", err)
		os.Exit(1)
	}

	orchestrator := validation.New(*cfg, logger)
	result, err := orchestrator.Run(artifact.IngestionArtifact{
		TrainFilePath: cfg.TrainFilePath,
		TestFilePath:  cfg.TestFilePath,
	})
	if err != nil {
		logger.Error("validation failed: %v", err)
		os.Exit(1)
	}

	logger.Info("validation status: %t", result.ValidationStatus)
	logger.Info("valid train: %s", result.ValidTrainFilePath)
	logger.Info("valid test: %s", result.ValidTestFilePath)
	logger.Info("drift report: %s", result.DriftReportFilePath)
	if !result.ValidationStatus {
		os.Exit(2)
	}
}
