package export

import (
	"fmt"
	"strings"

	"nodegraph/core"
)

// D2Exporter exports graphs to D2 syntax
type D2Exporter struct{}

// NewD2Exporter creates a new D2 exporter
func NewD2Exporter() *D2Exporter {
	return &D2Exporter{}
}

// Export converts the graph to D2 syntax
func (e *D2Exporter) Export(g core.Graph) (string, error) {
	if len(g.Nodes) == 0 {
		return "", fmt.Errorf("graph has no nodes")
	}
	if err := checkEdges(g); err != nil {
		return "", err
	}

	var sb strings.Builder

	for _, n := range g.Nodes {
		id := nodeID(n.ID)
		fmt.Fprintf(&sb, "%s: %d\n", id, n.ID)
		fmt.Fprintf(&sb, "%s.shape: circle\n", id)
		if n.Color != "" {
			fmt.Fprintf(&sb, "%s.style.fill: \"%s\"\n", id, colorHex(n.Color))
		}
	}

	if len(g.Edges) > 0 {
		sb.WriteString("\n")
	}

	// D2 indexes repeated connections between the same pair from zero.
	seen := make(map[[2]int]int)
	for _, edge := range g.Edges {
		from, to := nodeID(edge.From), nodeID(edge.To)
		fmt.Fprintf(&sb, "%s -> %s\n", from, to)

		key := [2]int{edge.From, edge.To}
		idx := seen[key]
		seen[key]++
		if edge.Color != "" {
			fmt.Fprintf(&sb, "(%s -> %s)[%d].style.stroke: \"%s\"\n", from, to, idx, colorHex(edge.Color))
		}
	}

	return sb.String(), nil
}

// GetFileExtension returns the recommended file extension
func (e *D2Exporter) GetFileExtension() string {
	return ".d2"
}

// GetFormatName returns the format name
func (e *D2Exporter) GetFormatName() string {
	return "D2"
}
