package export

import (
	"fmt"
	"strings"

	"nodegraph/core"
)

// MermaidExporter exports graphs to a Mermaid flowchart
type MermaidExporter struct{}

// NewMermaidExporter creates a new Mermaid exporter
func NewMermaidExporter() *MermaidExporter {
	return &MermaidExporter{}
}

// Export converts the graph to Mermaid syntax. Nodes are circles labelled
// with their id and filled with their colour.
func (e *MermaidExporter) Export(g core.Graph) (string, error) {
	if len(g.Nodes) == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}
	if err := checkEdges(g); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "    %s((%d))\n", nodeID(n.ID), n.ID)
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
	}
	for _, edge := range g.Edges {
		fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(edge.From), nodeID(edge.To))
	}

	var styles []string
	for _, n := range g.Nodes {
		if n.Color != "" {
			styles = append(styles, fmt.Sprintf("    style %s fill:%s", nodeID(n.ID), colorHex(n.Color)))
		}
	}
	for i, edge := range g.Edges {
		if edge.Color != "" {
			styles = append(styles, fmt.Sprintf("    linkStyle %d stroke:%s", i, colorHex(edge.Color)))
		}
	}
	if len(styles) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(styles, "\n"))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// GetFileExtension returns the recommended file extension
func (e *MermaidExporter) GetFileExtension() string {
	return ".mmd"
}

// GetFormatName returns the format name
func (e *MermaidExporter) GetFormatName() string {
	return "Mermaid"
}
