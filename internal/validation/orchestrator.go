// Package validation sequences the data-quality gate: schema load,
// table reads, structural checks, drift detection, output writes, and
// assembly of the validation artifact handed to the next pipeline
// stage.
package validation

import (
	"fmt"
	"strings"

	"driftgate/adapters/schemafile"
	"driftgate/adapters/stats/drift"
	"driftgate/adapters/tablefile"
	"driftgate/domain/artifact"
	"driftgate/domain/core"
	"driftgate/domain/schema"
	"driftgate/domain/table"
	"driftgate/internal/config"
	"driftgate/internal/errors"
)

// Logger is the logging capability injected into the orchestrator
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// SchemaLoader loads a schema document from a path
type SchemaLoader interface {
	Load(path string) (*schema.Schema, error)
}

// TableReader reads a tabular dataset file
type TableReader interface {
	Read(path string) (*table.Table, error)
}

// TableWriter persists a table to an output path
type TableWriter interface {
	Write(t *table.Table, path string) error
}

// ReportWriter persists a drift report to an output path
type ReportWriter interface {
	Write(report *artifact.DriftReport, path string) error
}

// DriftDetector runs the per-column drift test on a table pair
type DriftDetector interface {
	Detect(base, current *table.Table) (*artifact.DriftReport, bool, error)
}

// Orchestrator runs one atomic validation. It holds no mutable state
// across runs; concurrent validations need independent orchestrators
// with independent output paths.
type Orchestrator struct {
	cfg      config.DataValidationConfig
	schemas  SchemaLoader
	tables   TableReader
	writer   TableWriter
	reports  ReportWriter
	detector DriftDetector
	log      Logger
}

// New wires an orchestrator with the default file adapters
func New(cfg config.DataValidationConfig, log Logger) *Orchestrator {
	return NewWithPorts(
		cfg,
		schemafile.NewLoader(),
		tablefile.NewReader(),
		tablefile.NewWriter(),
		schemafile.NewReportWriter(),
		drift.NewDetector(cfg.DriftThreshold),
		log,
	)
}

// NewWithPorts wires an orchestrator with explicit collaborators
func NewWithPorts(cfg config.DataValidationConfig, schemas SchemaLoader, tables TableReader, writer TableWriter, reports ReportWriter, detector DriftDetector, log Logger) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		schemas:  schemas,
		tables:   tables,
		writer:   writer,
		reports:  reports,
		detector: detector,
		log:      log,
	}
}

// Run executes the whole validation for one ingestion artifact. Any
// failure aborts the run: no artifact is produced, and at most the
// drift report persisted before the failure remains on disk.
func (o *Orchestrator) Run(in artifact.IngestionArtifact) (*artifact.ValidationArtifact, error) {
	o.log.Info("starting data validation (train=%s test=%s)", in.TrainFilePath, in.TestFilePath)

	declared, err := o.schemas.Load(o.cfg.SchemaFilePath)
	if err != nil {
		return nil, err
	}
	o.log.Debug("schema loaded: %d declared columns", declared.ColumnCount())

	trainTable, err := o.tables.Read(in.TrainFilePath)
	if err != nil {
		return nil, err
	}
	testTable, err := o.tables.Read(in.TestFilePath)
	if err != nil {
		return nil, err
	}
	o.log.Debug("tables read: train %dx%d, test %dx%d",
		trainTable.RowCount(), trainTable.ColumnCount(), testTable.RowCount(), testTable.ColumnCount())

	// Structural checks run per table and fail fast: drift detection
	// never sees a structurally invalid table.
	if err := o.checkStructure(declared, trainTable, "training data", in.TrainFilePath); err != nil {
		return nil, err
	}
	if err := o.checkStructure(declared, testTable, "testing data", in.TestFilePath); err != nil {
		return nil, err
	}

	report, status, err := o.detector.Detect(trainTable, testTable)
	if err != nil {
		return nil, err
	}
	if !status {
		o.log.Warn("distribution drift detected in %d of %d columns",
			countDrifted(report), len(report.Columns))
	}

	// The report is persisted before the valid copies so a failed
	// write still leaves the drift diagnostics on disk.
	if err := o.reports.Write(report, o.cfg.DriftReportFilePath); err != nil {
		return nil, err
	}

	if err := o.writer.Write(trainTable, o.cfg.ValidTrainFilePath); err != nil {
		return nil, err
	}
	if err := o.writer.Write(testTable, o.cfg.ValidTestFilePath); err != nil {
		return nil, err
	}

	result := &artifact.ValidationArtifact{
		RunID:               core.NewRunID(),
		ValidationStatus:    status,
		ValidTrainFilePath:  o.cfg.ValidTrainFilePath,
		ValidTestFilePath:   o.cfg.ValidTestFilePath,
		DriftReportFilePath: o.cfg.DriftReportFilePath,
		CreatedAt:           core.Now(),
	}
	o.log.Info("data validation completed (run=%s status=%t)", result.RunID, result.ValidationStatus)
	return result, nil
}

// checkStructure runs both structural checks for one table, naming the
// table and the kind of mismatch in any error.
func (o *Orchestrator) checkStructure(declared *schema.Schema, t *table.Table, label, path string) error {
	if !CountColumnsMatch(declared, t) {
		return errors.StructuralValidation("validate_column_count", path,
			fmt.Sprintf("%s has %d columns, schema declares %d", label, t.ColumnCount(), declared.ColumnCount()))
	}

	if ok, missing := RequiredColumnsPresent(declared, t); !ok {
		o.log.Error("missing columns in %s: %s", label, strings.Join(missing, ", "))
		return errors.StructuralValidation("validate_required_columns", path,
			fmt.Sprintf("%s is missing required columns: %s", label, strings.Join(missing, ", ")))
	}

	return nil
}

func countDrifted(report *artifact.DriftReport) int {
	n := 0
	for _, entry := range report.Columns {
		if entry.DriftStatus {
			n++
		}
	}
	return n
}
