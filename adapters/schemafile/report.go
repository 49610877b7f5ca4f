package schemafile

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"driftgate/domain/artifact"
	"driftgate/internal/errors"
)

// ReportWriter persists the drift report as a YAML document, one entry
// per column in base table order. Go maps do not keep order, so the
// mapping nodes are built by hand.
type ReportWriter struct{}

// NewReportWriter creates a drift report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write stores the report at path, creating parent directories as needed
func (w *ReportWriter) Write(report *artifact.DriftReport, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.OutputWrite("write_drift_report", path, err)
		}
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range report.Columns {
		doc.Content = append(doc.Content,
			scalarNode(entry.Column),
			columnNode(entry),
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return errors.OutputWrite("write_drift_report", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.OutputWrite("write_drift_report", path, err)
	}
	return nil
}

func columnNode(entry artifact.ColumnDrift) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content,
		scalarNode("statistic"), floatNode(entry.Statistic),
		scalarNode("p_value"), floatNode(entry.PValue),
		scalarNode("drift_status"), boolNode(entry.DriftStatus),
	)
	if entry.BaseProfile != nil {
		node.Content = append(node.Content, scalarNode("base_profile"), profileNode(entry.BaseProfile))
	}
	if entry.CurrentProfile != nil {
		node.Content = append(node.Content, scalarNode("current_profile"), profileNode(entry.CurrentProfile))
	}
	return node
}

func profileNode(p *artifact.ColumnProfile) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content,
		scalarNode("mean"), floatNode(p.Mean),
		scalarNode("std_dev"), floatNode(p.StdDev),
		scalarNode("min"), floatNode(p.Min),
		scalarNode("max"), floatNode(p.Max),
		scalarNode("median"), floatNode(p.Median),
		scalarNode("q25"), floatNode(p.Q25),
		scalarNode("q75"), floatNode(p.Q75),
	)
	return node
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func floatNode(value float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

func boolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}
