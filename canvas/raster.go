package canvas

import (
	"math"

	"nodegraph/core"
	"nodegraph/geometry"
)

// Glyphs used on character-cell surfaces.
const (
	NodeRune       = '●'
	DotRune        = '·'
	HorizontalRune = '─'
	VerticalRune   = '│'
	FallingRune    = '╲'
	RisingRune     = '╱'
)

// Scale maps surface units to character cells. Terminal cells are roughly
// twice as tall as they are wide, so the default keeps discs round.
type Scale struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultScale returns a scale of 10x20 surface units per cell.
func DefaultScale() Scale {
	return Scale{CellWidth: 10, CellHeight: 20}
}

// ToCell returns the cell containing p.
func (sc Scale) ToCell(p core.Point) (col, row int) {
	return int(math.Floor(p.X / sc.CellWidth)), int(math.Floor(p.Y / sc.CellHeight))
}

// ToSurface returns the surface point at the centre of a cell.
func (sc Scale) ToSurface(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) * sc.CellWidth,
		Y: (float64(row) + 0.5) * sc.CellHeight,
	}
}

// cellGrid is a character-cell target: the rune matrix or a terminal.
// setCell must ignore positions outside the grid.
type cellGrid interface {
	setCell(col, row int, r rune, color string)
}

// drawDisc fills every cell whose centre lies inside the disc. A disc
// smaller than a cell still marks the cell holding its centre.
func drawDisc(g cellGrid, sc Scale, center core.Point, size float64, color string) {
	radius := size / 2
	minCol, minRow := sc.ToCell(core.Point{X: center.X - radius, Y: center.Y - radius})
	maxCol, maxRow := sc.ToCell(core.Point{X: center.X + radius, Y: center.Y + radius})

	hit := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if geometry.InCircle(center, sc.ToSurface(col, row), radius) {
				g.setCell(col, row, NodeRune, color)
				hit = true
			}
		}
	}
	if !hit {
		col, row := sc.ToCell(center)
		g.setCell(col, row, NodeRune, color)
	}
}

// drawSegment draws the trimmed line between two centres. Nothing is drawn
// when the centres coincide or the trim swallows the whole segment.
func drawSegment(g cellGrid, sc Scale, from, to core.Point, trim float64, color string) {
	start, end, ok := geometry.TrimSegment(from, to, trim)
	if !ok {
		return
	}
	// Trimming past the midpoint flips the direction.
	if (end.X-start.X)*(to.X-from.X)+(end.Y-start.Y)*(to.Y-from.Y) < 0 {
		return
	}

	c1, r1 := sc.ToCell(start)
	c2, r2 := sc.ToCell(end)
	glyph := lineGlyph(c2-c1, r2-r1)
	bresenham(c1, r1, c2, r2, func(col, row int) {
		g.setCell(col, row, glyph, color)
	})
}

// lineGlyph picks the box-drawing character closest to the visual slope of
// a run of dx columns and dy rows.
func lineGlyph(dx, dy int) rune {
	ax, ay := geometry.Abs(dx), geometry.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return DotRune
	case 2*ay < ax:
		return HorizontalRune
	case 2*ax < ay:
		return VerticalRune
	case (dx > 0) == (dy > 0):
		return FallingRune
	default:
		return RisingRune
	}
}

// bresenham visits every cell on the line from (x1,y1) to (x2,y2),
// endpoints included.
func bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := geometry.Abs(x2 - x1)
	dy := geometry.Abs(y2 - y1)

	x, y := x1, y1

	xInc := 1
	if x1 > x2 {
		xInc = -1
	}

	yInc := 1
	if y1 > y2 {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != x2 {
			plot(x, y)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != y2 {
			plot(x, y)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}

	plot(x2, y2)
}
