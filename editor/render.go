package editor

import (
	"errors"
	"fmt"
)

// ErrDanglingEdge means a live edge references a node that is not live.
// The history rules make this impossible; seeing it is a bug, not user error.
var ErrDanglingEdge = errors.New("edge references a node that is not live")

// Redraw clears the surface and draws every live node, then every live
// edge. Edge endpoints are resolved by node ID; an unresolved endpoint stops
// the redraw with ErrDanglingEdge.
func (s *Session) Redraw() error {
	s.renderer.Clear()

	for _, n := range s.store.Nodes() {
		s.renderer.RenderNode(n.Center(), s.style.NodeSize, n.Color)
	}

	for i, e := range s.store.Edges() {
		from, ok := s.store.Node(e.From)
		if !ok {
			return fmt.Errorf("edge %d (%s): source node %d: %w", i, e, e.From, ErrDanglingEdge)
		}
		to, ok := s.store.Node(e.To)
		if !ok {
			return fmt.Errorf("edge %d (%s): target node %d: %w", i, e, e.To, ErrDanglingEdge)
		}
		s.renderer.RenderEdge(from.Center(), to.Center(), s.style.EdgeTrim, e.Color)
	}
	return nil
}
