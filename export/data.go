package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"nodegraph/core"
)

// JSONExporter exports graphs to JSON format
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a graph to indented JSON
func (e *JSONExporter) Export(g core.Graph) (string, error) {
	if err := checkEdges(g); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(withEmptyLists(g), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data) + "\n", nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

// YAMLExporter exports graphs to YAML format
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export converts a graph to YAML with two-space indentation
func (e *YAMLExporter) Export(g core.Graph) (string, error) {
	if err := checkEdges(g); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(withEmptyLists(g)); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}

// GetFileExtension returns the file extension for YAML
func (e *YAMLExporter) GetFileExtension() string {
	return ".yaml"
}

// GetFormatName returns the format name
func (e *YAMLExporter) GetFormatName() string {
	return "YAML"
}

// withEmptyLists makes nil slices encode as [] rather than null.
func withEmptyLists(g core.Graph) core.Graph {
	if g.Nodes == nil {
		g.Nodes = []core.Node{}
	}
	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	return g
}
