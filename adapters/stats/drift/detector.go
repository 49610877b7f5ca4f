package drift

import (
	"driftgate/adapters/stats/profile"
	"driftgate/domain/artifact"
	"driftgate/domain/core"
	"driftgate/domain/table"
	"driftgate/internal/errors"
)

// Detector runs the two-sample KS test for every column of the base
// table against the current table and assembles the drift report.
// Columns are tested sequentially in base table order, so report order
// and p-values are exactly reproducible across runs.
type Detector struct {
	threshold float64
	profiles  bool
}

// NewDetector creates a detector with the given drift threshold α.
// The threshold applies independently to each column; no
// multiple-comparison correction is made, so false-positive drift
// flags accumulate with column count.
func NewDetector(threshold float64) *Detector {
	return &Detector{threshold: threshold, profiles: true}
}

// NewDetectorWithoutProfiles creates a detector that skips summary
// statistics in the report.
func NewDetectorWithoutProfiles(threshold float64) *Detector {
	return &Detector{threshold: threshold}
}

// Detect compares each base table column against the current table and
// returns the drift report plus the aggregate status: true iff no
// column drifted. A column whose values cannot be compared aborts the
// whole run.
func (d *Detector) Detect(base, current *table.Table) (*artifact.DriftReport, bool, error) {
	report := &artifact.DriftReport{
		Threshold:          d.threshold,
		BaseFingerprint:    base.Fingerprint(),
		CurrentFingerprint: current.Fingerprint(),
		CreatedAt:          core.Now(),
	}

	status := true
	for _, column := range base.ColumnNames() {
		baseSample, err := base.NumericColumn(column)
		if err != nil {
			return nil, false, errors.DriftComputation("detect_drift", column, err)
		}
		currentSample, err := current.NumericColumn(column)
		if err != nil {
			return nil, false, errors.DriftComputation("detect_drift", column, err)
		}

		result, err := TwoSampleKS(baseSample, currentSample)
		if err != nil {
			return nil, false, errors.DriftComputation("detect_drift", column, err)
		}

		driftFound := result.PValue < d.threshold
		if driftFound {
			status = false
		}

		entry := artifact.ColumnDrift{
			Column:      column,
			Statistic:   result.Statistic,
			PValue:      result.PValue,
			DriftStatus: driftFound,
		}
		if d.profiles {
			// Profiles are diagnostics only; a failed summary leaves
			// the entry without one.
			entry.BaseProfile, _ = profile.Summarize(baseSample)
			entry.CurrentProfile, _ = profile.Summarize(currentSample)
		}
		report.Add(entry)
	}

	return report, status, nil
}
