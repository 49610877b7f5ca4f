// Package schemafile loads the YAML schema document and persists the
// YAML drift report, keeping both in the column order of their source.
package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"driftgate/domain/schema"
	"driftgate/internal/errors"
)

// Loader reads a schema document from a fixed path. The document's
// top-level "columns" entry may be either a mapping of column name to
// type tag or a sequence of single-pair mappings; both preserve
// authoring order. An optional "numerical_columns" sequence is carried
// through for profiling.
type Loader struct{}

// NewLoader creates a schema document loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the schema document at path
func (l *Loader) Load(path string) (*schema.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SchemaLoad("load_schema", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.SchemaLoad("load_schema", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.SchemaLoad("load_schema", path, fmt.Errorf("document is empty"))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.SchemaLoad("load_schema", path, fmt.Errorf("document root is not a mapping"))
	}

	columnsNode := childNode(root, "columns")
	if columnsNode == nil {
		return nil, errors.SchemaLoad("load_schema", path, fmt.Errorf("document has no columns entry"))
	}

	specs, err := parseColumns(columnsNode)
	if err != nil {
		return nil, errors.SchemaLoad("load_schema", path, err)
	}

	s, err := schema.New(specs)
	if err != nil {
		return nil, errors.SchemaLoad("load_schema", path, err)
	}

	if numNode := childNode(root, "numerical_columns"); numNode != nil {
		var names []string
		if err := numNode.Decode(&names); err != nil {
			return nil, errors.SchemaLoad("load_schema", path, err)
		}
		s.SetNumericalColumns(names)
	}

	return s, nil
}

// childNode returns the value node for a mapping key, or nil
func childNode(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func parseColumns(node *yaml.Node) ([]schema.ColumnSpec, error) {
	switch node.Kind {
	case yaml.MappingNode:
		specs := make([]schema.ColumnSpec, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			specs = append(specs, schema.ColumnSpec{
				Name: node.Content[i].Value,
				Type: node.Content[i+1].Value,
			})
		}
		return specs, nil

	case yaml.SequenceNode:
		specs := make([]schema.ColumnSpec, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
				return nil, fmt.Errorf("columns sequence entries must be single name-to-type pairs")
			}
			specs = append(specs, schema.ColumnSpec{
				Name: item.Content[0].Value,
				Type: item.Content[1].Value,
			})
		}
		return specs, nil

	default:
		return nil, fmt.Errorf("columns entry must be a mapping or a sequence")
	}
}
