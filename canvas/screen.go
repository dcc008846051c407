package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"nodegraph/core"
)

// Screen renders a graph onto a tcell terminal. The bottom statusRows rows
// are reserved for status text and never drawn on by the graph.
type Screen struct {
	screen     tcell.Screen
	scale      Scale
	statusRows int
	merger     *CharacterMerger
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(screen tcell.Screen, scale Scale, statusRows int) (*Screen, error) {
	if scale.CellWidth <= 0 || scale.CellHeight <= 0 || statusRows < 0 {
		return nil, ErrInvalidSize
	}
	return &Screen{
		screen:     screen,
		scale:      scale,
		statusRows: statusRows,
		merger:     NewCharacterMerger(),
	}, nil
}

// Scale returns the surface-to-cell mapping.
func (s *Screen) Scale() Scale {
	return s.scale
}

// CanvasSize returns the drawable area in cells.
func (s *Screen) CanvasSize() (width, height int) {
	w, h := s.screen.Size()
	h -= s.statusRows
	if h < 0 {
		h = 0
	}
	return w, h
}

// CellToSurface maps a terminal cell, such as a mouse position, to the
// surface point at its centre. ok is false inside the status area.
func (s *Screen) CellToSurface(col, row int) (core.Point, bool) {
	w, h := s.CanvasSize()
	if col < 0 || col >= w || row < 0 || row >= h {
		return core.Point{}, false
	}
	return s.scale.ToSurface(col, row), true
}

// Clear paints the canvas area with the paper background. The status
// area is left alone.
func (s *Screen) Clear() {
	w, h := s.CanvasSize()
	style := paperStyle()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// RenderNode draws a filled disc.
func (s *Screen) RenderNode(center core.Point, size float64, color string) {
	drawDisc(s, s.scale, center, size, color)
}

// RenderEdge draws a trimmed line. Lines never overwrite node cells and
// crossings merge.
func (s *Screen) RenderEdge(from, to core.Point, trim float64, color string) {
	drawSegment(s, s.scale, from, to, trim, color)
}

// DrawStatus writes lines into the status area, one per reserved row.
// Extra lines are dropped and text is cut at the screen edge.
func (s *Screen) DrawStatus(lines ...string) {
	w, h := s.screen.Size()
	top := h - s.statusRows
	style := tcell.StyleDefault.Reverse(true)

	for i := 0; i < s.statusRows; i++ {
		row := top + i
		if row < 0 {
			continue
		}
		text := ""
		if i < len(lines) {
			text = runewidth.Truncate(lines[i], w, "…")
		}
		x := s.drawText(0, row, text, style)
		for ; x < w; x++ {
			s.screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

// Show flushes pending changes to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (s *Screen) setCell(col, row int, r rune, color string) {
	w, h := s.CanvasSize()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}
	existing, _, _, _ := s.screen.GetContent(col, row)
	merged := s.merger.Merge(existing, r)
	if merged == existing && merged != r {
		return
	}
	s.screen.SetContent(col, row, merged, nil, TermStyle(color))
}
