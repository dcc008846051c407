// Package graph owns the live node sequence and the live edge list.
//
// Node IDs double as sequence positions: the live nodes are always IDs
// 0..len-1 in creation order. Nodes are only ever removed from the tail.
//
// Store is not safe for concurrent use; the editor drives it from a single
// event loop.
package graph

import (
	"errors"
	"fmt"
	"slices"

	"nodegraph/core"
	"nodegraph/geometry"
)

// ErrNodeOutOfSequence is returned by RestoreNode when the node's ID is not
// the next position in the sequence.
var ErrNodeOutOfSequence = errors.New("node out of sequence")

// Store holds the authoritative nodes and edges of one editing session.
type Store struct {
	nodes []core.Node
	edges []core.Edge
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// PlaceNode appends a new node whose ID is the current node count.
func (s *Store) PlaceNode(x, y float64, color string) core.Node {
	n := core.Node{ID: len(s.nodes), X: x, Y: y, Color: color}
	s.nodes = append(s.nodes, n)
	return n
}

// RemoveLastNode pops the most recently placed node. ok is false when the
// store has no nodes.
func (s *Store) RemoveLastNode() (n core.Node, ok bool) {
	if len(s.nodes) == 0 {
		return core.Node{}, false
	}
	n = s.nodes[len(s.nodes)-1]
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n, true
}

// RestoreNode re-appends a node previously popped by RemoveLastNode.
func (s *Store) RestoreNode(n core.Node) error {
	if n.ID != len(s.nodes) {
		return fmt.Errorf("restore node %d with %d live nodes: %w", n.ID, len(s.nodes), ErrNodeOutOfSequence)
	}
	s.nodes = append(s.nodes, n)
	return nil
}

// ExtractEdgesTouching removes every edge with id as an endpoint and returns
// them in their original relative order. The remaining edges keep their order.
func (s *Store) ExtractEdgesTouching(id int) []core.Edge {
	var removed []core.Edge
	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Touches(id) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(s.edges[len(kept):])
	s.edges = kept
	if removed == nil {
		removed = []core.Edge{}
	}
	return removed
}

// AddEdges appends edges in the given order. Endpoints are not validated and
// duplicates are kept.
func (s *Store) AddEdges(edges ...core.Edge) {
	s.edges = append(s.edges, edges...)
}

// RemoveLastEdges pops exactly n edges from the tail and returns them in
// their original order. When fewer than n edges exist nothing is removed and
// ok is false.
func (s *Store) RemoveLastEdges(n int) (removed []core.Edge, ok bool) {
	if n < 0 || len(s.edges) < n {
		return nil, false
	}
	cut := len(s.edges) - n
	removed = slices.Clone(s.edges[cut:])
	s.edges = s.edges[:cut]
	return removed, true
}

// Node looks up a live node by ID.
func (s *Store) Node(id int) (core.Node, bool) {
	if id < 0 || id >= len(s.nodes) {
		return core.Node{}, false
	}
	return s.nodes[id], true
}

// HasNode reports whether id is a live node.
func (s *Store) HasNode(id int) bool {
	_, ok := s.Node(id)
	return ok
}

// Nodes returns a copy of the live node sequence.
func (s *Store) Nodes() []core.Node {
	return slices.Clone(s.nodes)
}

// Edges returns a copy of the live edge list.
func (s *Store) Edges() []core.Edge {
	return slices.Clone(s.edges)
}

// NodeCount returns the number of live nodes.
func (s *Store) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of live edges.
func (s *Store) EdgeCount() int {
	return len(s.edges)
}

// NodeAt returns the first live node, in sequence order, whose circle of the
// given radius contains p. First match wins, not nearest.
func (s *Store) NodeAt(p core.Point, radius float64) (core.Node, bool) {
	for _, n := range s.nodes {
		if geometry.InCircle(n.Center(), p, radius) {
			return n, true
		}
	}
	return core.Node{}, false
}
