package canvas

import (
	"errors"
	"strings"

	"nodegraph/core"
)

// ErrInvalidSize is returned for surfaces with a non-positive dimension.
var ErrInvalidSize = errors.New("invalid canvas size")

// Matrix is a rune grid that renders a graph as text. Each cell carries
// the colour name it was last drawn with.
//
// Matrix is not safe for concurrent writes.
//
// Coordinate System:
//   - Origin (0,0) is the top-left cell
//   - Columns increase rightward, rows downward
//   - Render calls take surface units and map them through the Scale
type Matrix struct {
	cells  [][]rune
	colors [][]string
	width  int
	height int
	scale  Scale
	merger *CharacterMerger
}

// NewMatrix creates a width x height cell matrix.
func NewMatrix(width, height int, scale Scale) (*Matrix, error) {
	if width <= 0 || height <= 0 || scale.CellWidth <= 0 || scale.CellHeight <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]rune, height)
	colors := make([][]string, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		colors[y] = make([]string, width)
	}

	m := &Matrix{
		cells:  cells,
		colors: colors,
		width:  width,
		height: height,
		scale:  scale,
		merger: NewCharacterMerger(),
	}
	m.Clear()
	return m, nil
}

// Size returns the width and height in cells.
func (m *Matrix) Size() (width, height int) {
	return m.width, m.height
}

// Scale returns the surface-to-cell mapping.
func (m *Matrix) Scale() Scale {
	return m.scale
}

// Get returns the rune at a cell, or ' ' outside the matrix.
func (m *Matrix) Get(col, row int) rune {
	if !m.inBounds(col, row) {
		return ' '
	}
	return m.cells[row][col]
}

// ColorAt returns the colour name a cell was drawn with, or "" for
// blank cells and positions outside the matrix.
func (m *Matrix) ColorAt(col, row int) string {
	if !m.inBounds(col, row) {
		return ""
	}
	return m.colors[row][col]
}

// Clear resets every cell to a blank space.
func (m *Matrix) Clear() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.cells[y][x] = ' '
			m.colors[y][x] = ""
		}
	}
}

// RenderNode draws a filled disc.
func (m *Matrix) RenderNode(center core.Point, size float64, color string) {
	drawDisc(m, m.scale, center, size, color)
}

// RenderEdge draws a line trimmed at both ends. Lines never overwrite
// node cells and crossing lines merge into a junction glyph.
func (m *Matrix) RenderEdge(from, to core.Point, trim float64, color string) {
	drawSegment(m, m.scale, from, to, trim, color)
}

// String returns the matrix as text with newline-separated rows.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.cells[y][x])
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

func (m *Matrix) setCell(col, row int, r rune, color string) {
	if !m.inBounds(col, row) {
		return
	}
	merged := m.merger.Merge(m.cells[row][col], r)
	if merged == m.cells[row][col] && merged != r {
		return
	}
	m.cells[row][col] = merged
	m.colors[row][col] = color
}

func (m *Matrix) inBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}
