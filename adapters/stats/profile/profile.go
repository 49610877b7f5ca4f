// Package profile computes per-column summary statistics attached to
// drift report entries for diagnosis.
package profile

import (
	"github.com/montanaflynn/stats"

	"driftgate/domain/artifact"
)

// Summarize computes summary statistics for one sample. A nil profile
// with an error is returned when the sample cannot be summarized; the
// caller treats profiles as best-effort diagnostics.
func Summarize(sample []float64) (*artifact.ColumnProfile, error) {
	mean, err := stats.Mean(sample)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviation(sample)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(sample)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(sample)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(sample)
	if err != nil {
		return nil, err
	}
	q25, err := stats.Percentile(sample, 25)
	if err != nil {
		return nil, err
	}
	q75, err := stats.Percentile(sample, 75)
	if err != nil {
		return nil, err
	}

	return &artifact.ColumnProfile{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}, nil
}
