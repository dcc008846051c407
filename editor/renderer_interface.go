package editor

import "nodegraph/core"

// Renderer is the drawing surface the session calls into. Coordinates are
// surface units; the session never reads anything back.
type Renderer interface {
	// RenderNode draws a node as a disc of the given diameter.
	RenderNode(center core.Point, size float64, color string)

	// RenderEdge draws a line between two node centres, trimmed by trim at
	// both ends so it stops at the node rims.
	RenderEdge(from, to core.Point, trim float64, color string)

	// Clear wipes the surface.
	Clear()
}

// Observer receives a notification for every action the session handles.
// The metrics package implements it.
type Observer interface {
	ObserveAction(action string, mode string, applied bool)
	ObserveGraph(nodes, edges int)
}

type nopRenderer struct{}

func (nopRenderer) RenderNode(core.Point, float64, string)             {}
func (nopRenderer) RenderEdge(core.Point, core.Point, float64, string) {}
func (nopRenderer) Clear()                                             {}

type nopObserver struct{}

func (nopObserver) ObserveAction(string, string, bool) {}
func (nopObserver) ObserveGraph(int, int)              {}
