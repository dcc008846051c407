// Package export converts a graph to text formats.
package export

import (
	"errors"
	"fmt"
	"sort"

	"nodegraph/core"
	"nodegraph/validation"
)

// ErrUnknownFormat is returned for a format name no exporter handles.
var ErrUnknownFormat = errors.New("unknown export format")

// Format represents an export format
type Format string

const (
	// FormatJSON is the node and edge lists as JSON
	FormatJSON Format = "json"
	// FormatYAML is the node and edge lists as YAML
	FormatYAML Format = "yaml"
	// FormatText draws the graph with Unicode characters
	FormatText Format = "text"
	// FormatMermaid exports to a Mermaid flowchart
	FormatMermaid Format = "mermaid"
	// FormatGraphviz exports to Graphviz DOT with fixed node positions
	FormatGraphviz Format = "graphviz"
	// FormatD2 exports to D2 syntax
	FormatD2 Format = "d2"
	// FormatPlantUML exports to PlantUML syntax
	FormatPlantUML Format = "plantuml"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a graph to the target format
	Export(g core.Graph) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format. The text
// exporter uses default scale and style; build it with NewTextExporter to
// change them.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatYAML:
		return NewYAMLExporter(), nil
	case FormatText:
		return NewTextExporter(DefaultTextOptions()), nil
	case FormatMermaid:
		return NewMermaidExporter(), nil
	case FormatGraphviz:
		return NewGraphvizExporter(), nil
	case FormatD2:
		return NewD2Exporter(), nil
	case FormatPlantUML:
		return NewPlantUMLExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt", "ascii":
		return FormatText, nil
	case "mermaid", "mmd":
		return FormatMermaid, nil
	case "graphviz", "dot", "gv":
		return FormatGraphviz, nil
	case "d2":
		return FormatD2, nil
	case "plantuml", "puml":
		return FormatPlantUML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	formats := make([]Format, 0, len(GetFormatDescriptions()))
	for f := range GetFormatDescriptions() {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatJSON:     "Node and edge lists as JSON",
		FormatYAML:     "Node and edge lists as YAML",
		FormatText:     "Unicode drawing of the graph",
		FormatMermaid:  "Mermaid flowchart (for Markdown)",
		FormatGraphviz: "Graphviz DOT with pinned node positions",
		FormatD2:       "D2 diagram syntax",
		FormatPlantUML: "PlantUML diagram of circles",
	}
}

// checkEdges reports the first edge whose endpoint is not a node of g.
func checkEdges(g core.Graph) error {
	if errs := validation.NewGraphValidator().Validate(g); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
