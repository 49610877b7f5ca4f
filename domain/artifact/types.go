// Package artifact defines the records exchanged between pipeline
// stages: the ingestion artifact consumed by validation, the drift
// report it persists, and the validation artifact it returns.
package artifact

import (
	"driftgate/domain/core"
)

// IngestionArtifact carries the file paths produced by the upstream
// ingestion stage.
type IngestionArtifact struct {
	TrainFilePath string
	TestFilePath  string
}

// ColumnProfile summarizes one sample's distribution for diagnostics
type ColumnProfile struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Median float64 `yaml:"median"`
	Q25    float64 `yaml:"q25"`
	Q75    float64 `yaml:"q75"`
}

// ColumnDrift is one drift-report entry: the two-sample KS outcome for
// a single column, plus optional per-side profiles.
type ColumnDrift struct {
	Column         string
	Statistic      float64
	PValue         float64
	DriftStatus    bool
	BaseProfile    *ColumnProfile
	CurrentProfile *ColumnProfile
}

// DriftReport is the run's side-effect artifact: one entry per base
// table column, in base column order. It is built incrementally and
// never mutated after the run completes.
type DriftReport struct {
	Columns            []ColumnDrift
	Threshold          float64
	BaseFingerprint    core.Hash
	CurrentFingerprint core.Hash
	CreatedAt          core.Timestamp
}

// Add appends a column entry, preserving insertion order
func (r *DriftReport) Add(entry ColumnDrift) {
	r.Columns = append(r.Columns, entry)
}

// DriftDetected reports whether any column drifted
func (r *DriftReport) DriftDetected() bool {
	for _, entry := range r.Columns {
		if entry.DriftStatus {
			return true
		}
	}
	return false
}

// Entry returns the report entry for a column name
func (r *DriftReport) Entry(column string) (ColumnDrift, bool) {
	for _, entry := range r.Columns {
		if entry.Column == column {
			return entry, true
		}
	}
	return ColumnDrift{}, false
}

// ValidationArtifact is the immutable result record of one validation
// run and the sole contract with downstream stages. The invalid path
// fields stay empty on the normal path: structural and drift failures
// abort the whole run rather than partitioning rows.
type ValidationArtifact struct {
	RunID                core.RunID
	ValidationStatus     bool
	ValidTrainFilePath   string
	ValidTestFilePath    string
	InvalidTrainFilePath string
	InvalidTestFilePath  string
	DriftReportFilePath  string
	CreatedAt            core.Timestamp
}
