// Package core contains the fundamental types shared by the graph store, the
// editor and the drawing surfaces.
package core

import "fmt"

// Point represents a 2D coordinate on the drawing surface.
type Point struct {
	X, Y float64
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Node represents a placed point with identity, position and colour.
//
// ID is the node's index in the creation sequence: the n-th placed node has
// ID n-1, and the live node sequence is always IDs 0..len-1.
type Node struct {
	ID    int     `json:"id" yaml:"id"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Center returns the centre point of the node.
func (n Node) Center() Point {
	return Point{X: n.X, Y: n.Y}
}

// Edge represents a directed link between two node IDs.
type Edge struct {
	From  int    `json:"from" yaml:"from"` // Source node ID
	To    int    `json:"to" yaml:"to"`     // Target node ID
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Reverse returns the edge pointing the other way with the same colour.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Color: e.Color}
}

// Touches reports whether either endpoint of the edge is id.
func (e Edge) Touches(id int) bool {
	return e.From == id || e.To == id
}

// String returns the edge as "from->to".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}

// Graph is a node sequence together with the edges between its nodes.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}
