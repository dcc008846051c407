package export

import (
	"fmt"
	"strings"

	"nodegraph/core"
)

// PlantUMLExporter exports graphs to a PlantUML diagram of circles
type PlantUMLExporter struct{}

// NewPlantUMLExporter creates a new PlantUML exporter
func NewPlantUMLExporter() *PlantUMLExporter {
	return &PlantUMLExporter{}
}

// Export converts the graph to PlantUML syntax
func (e *PlantUMLExporter) Export(g core.Graph) (string, error) {
	if len(g.Nodes) == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}
	if err := checkEdges(g); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("@startuml\n")
	sb.WriteString("skinparam backgroundColor white\n")
	sb.WriteString("skinparam shadowing false\n\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "circle \"%d\" as %s", n.ID, nodeID(n.ID))
		if n.Color != "" {
			sb.WriteString(" " + colorHex(n.Color))
		}
		sb.WriteString("\n")
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
	}
	for _, edge := range g.Edges {
		arrow := "-->"
		if edge.Color != "" {
			arrow = fmt.Sprintf("-[%s]->", colorHex(edge.Color))
		}
		fmt.Fprintf(&sb, "%s %s %s\n", nodeID(edge.From), arrow, nodeID(edge.To))
	}

	sb.WriteString("@enduml\n")
	return sb.String(), nil
}

// GetFileExtension returns the recommended file extension
func (e *PlantUMLExporter) GetFileExtension() string {
	return ".puml"
}

// GetFormatName returns the format name
func (e *PlantUMLExporter) GetFormatName() string {
	return "PlantUML"
}
