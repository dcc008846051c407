package export

import (
	"fmt"
	"strings"

	"nodegraph/canvas"
	"nodegraph/core"
)

// GraphvizExporter exports graphs to Graphviz DOT syntax
type GraphvizExporter struct{}

// NewGraphvizExporter creates a new Graphviz exporter
func NewGraphvizExporter() *GraphvizExporter {
	return &GraphvizExporter{}
}

// Export converts the graph to DOT. Node positions are pinned, so render
// with `neato -n` to reproduce the editor layout. DOT's y axis points up,
// so y is negated.
func (e *GraphvizExporter) Export(g core.Graph) (string, error) {
	if len(g.Nodes) == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}
	if err := checkEdges(g); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString("digraph G {\n")
	sb.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.3];\n\n")

	for _, n := range g.Nodes {
		attrs := []string{
			fmt.Sprintf("label=\"%d\"", n.ID),
			fmt.Sprintf("pos=\"%g,%g!\"", n.X, -n.Y),
		}
		if n.Color != "" {
			attrs = append(attrs, fmt.Sprintf("fillcolor=\"%s\"", colorHex(n.Color)))
		}
		fmt.Fprintf(&sb, "  %s [%s];\n", nodeID(n.ID), strings.Join(attrs, ", "))
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
	}

	for _, edge := range g.Edges {
		if edge.Color != "" {
			fmt.Fprintf(&sb, "  %s -> %s [color=\"%s\"];\n", nodeID(edge.From), nodeID(edge.To), colorHex(edge.Color))
		} else {
			fmt.Fprintf(&sb, "  %s -> %s;\n", nodeID(edge.From), nodeID(edge.To))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// GetFileExtension returns the recommended file extension
func (e *GraphvizExporter) GetFileExtension() string {
	return ".dot"
}

// GetFormatName returns the format name
func (e *GraphvizExporter) GetFormatName() string {
	return "Graphviz DOT"
}

// nodeID returns an identifier valid in DOT, Mermaid and D2.
func nodeID(id int) string {
	return fmt.Sprintf("N%d", id)
}

// colorHex returns "#rrggbb" for a colour name. Unknown names map to black.
func colorHex(name string) string {
	c, err := canvas.ResolveColor(name)
	if err != nil {
		return "#000000"
	}
	return c.Hex()
}
