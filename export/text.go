package export

import (
	"fmt"
	"math"
	"strings"

	"nodegraph/canvas"
	"nodegraph/core"
	"nodegraph/editor"
)

// TextOptions controls the character drawing.
type TextOptions struct {
	Scale  canvas.Scale
	Style  editor.Style
	Margin int // Blank cells right of and below the drawing
}

// DefaultTextOptions returns the terminal editor's scale and style.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Scale:  canvas.DefaultScale(),
		Style:  editor.DefaultStyle(),
		Margin: 1,
	}
}

// TextExporter draws graphs as Unicode text, the way the terminal editor
// shows them
type TextExporter struct {
	opts TextOptions
}

// NewTextExporter creates a new text exporter
func NewTextExporter(opts TextOptions) *TextExporter {
	return &TextExporter{opts: opts}
}

// Export draws the graph on a rune matrix just large enough to hold it.
// Node ids must run 0..len-1.
func (e *TextExporter) Export(g core.Graph) (string, error) {
	cols, rows := e.gridSize(g)
	m, err := canvas.NewMatrix(cols, rows, e.opts.Scale)
	if err != nil {
		return "", err
	}

	session := editor.NewSession(m, editor.WithStyle(e.opts.Style))
	if err := session.Seed(g.Nodes, g.Edges); err != nil {
		return "", fmt.Errorf("draw graph: %w", err)
	}

	lines := strings.Split(m.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func (e *TextExporter) gridSize(g core.Graph) (cols, rows int) {
	radius := e.opts.Style.NodeSize / 2
	var maxX, maxY float64
	for _, n := range g.Nodes {
		maxX = math.Max(maxX, n.X+radius)
		maxY = math.Max(maxY, n.Y+radius)
	}
	cols = int(math.Ceil(maxX/e.opts.Scale.CellWidth)) + e.opts.Margin
	rows = int(math.Ceil(maxY/e.opts.Scale.CellHeight)) + e.opts.Margin
	return max(cols, 1), max(rows, 1)
}

// GetFileExtension returns the recommended file extension
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Unicode Text"
}
