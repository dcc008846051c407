// Package geometry holds the stateless math used for hit testing, edge
// trimming and distance heuristics.
package geometry

import (
	"math"

	"nodegraph/core"
)

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ManhattanDistance returns |dx| + |dy| between two points.
func ManhattanDistance(a, b core.Point) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

// SquaredDistance returns dx² + dy² between two points.
func SquaredDistance(a, b core.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// InCircle reports whether p lies inside or on the circle of the given
// radius around center. Compares squared distances, no square root.
func InCircle(center, p core.Point, radius float64) bool {
	return SquaredDistance(center, p) <= radius*radius
}

// TrimSegment shortens the segment from→to by radius at both ends so that a
// line drawn between two node centres stops at the node rims.
//
// ok is false when the endpoints coincide: the direction is undefined and
// there is nothing to draw.
func TrimSegment(from, to core.Point, radius float64) (start, end core.Point, ok bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return from, to, false
	}

	ux := dx / dist
	uy := dy / dist

	start = core.Point{X: from.X + ux*radius, Y: from.Y + uy*radius}
	end = core.Point{X: to.X - ux*radius, Y: to.Y - uy*radius}
	return start, end, true
}
