// Package generator builds random graphs. Each node is linked to a small
// random number of neighbours, drawn by weighted sampling without
// replacement. Near neighbours are preferred and those around 90% of the
// farthest distance are avoided.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"nodegraph/core"
	"nodegraph/geometry"
)

var (
	// ErrTooFewNodes is returned when the graph cannot supply enough
	// distinct neighbours for the requested connection range.
	ErrTooFewNodes = errors.New("too few nodes")

	// ErrInvalidRange is returned for a connection range with min < 1 or
	// max < min.
	ErrInvalidRange = errors.New("invalid connection range")
)

// farBias scales the largest heuristic value. Neighbours near
// farBias*max(h) receive the smallest weights.
const farBias = 0.9

// Range is an inclusive bound on outgoing connections per node.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultRange links every node to one to three neighbours.
func DefaultRange() Range {
	return Range{Min: 1, Max: 3}
}

func (r Range) validate(nodes int) error {
	if r.Min < 1 || r.Max < r.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	if nodes < 2 || r.Max > nodes-1 {
		return fmt.Errorf("%w: %d nodes cannot give %d distinct neighbours", ErrTooFewNodes, nodes, r.Max)
	}
	return nil
}

// Params describes a whole random graph.
type Params struct {
	Nodes       int
	Width       float64
	Height      float64
	Connections Range
	NodeColor   string
	EdgeColor   string
}

// New places p.Nodes random nodes and connects them with Generate.
func New(p Params, rng *rand.Rand) (core.Graph, error) {
	nodes := RandomNodes(p.Nodes, p.Width, p.Height, p.NodeColor, rng)
	edges, err := Generate(nodes, p.Connections, p.EdgeColor, rng)
	if err != nil {
		return core.Graph{}, err
	}
	return core.Graph{Nodes: nodes, Edges: edges}, nil
}

// RandomNodes returns n nodes with sequential ids placed uniformly in
// [0,width) x [0,height). Coordinates are rounded to two decimals.
func RandomNodes(n int, width, height float64, color string, rng *rand.Rand) []core.Node {
	if n < 0 {
		n = 0
	}
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{
			ID:    i,
			X:     round2(rng.Float64() * width),
			Y:     round2(rng.Float64() * height),
			Color: color,
		}
	}
	return nodes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type candidate struct {
	id     int
	weight float64
}

// Generate returns directed edges from every node to between r.Min and
// r.Max distinct other nodes. Edges are grouped by source in node order.
// Output is fully determined by the state of rng.
func Generate(nodes []core.Node, r Range, color string, rng *rand.Rand) ([]core.Edge, error) {
	if err := r.validate(len(nodes)); err != nil {
		return nil, err
	}

	var edges []core.Edge
	for _, source := range nodes {
		cands := candidates(source, nodes)
		count := r.Min + rng.Intn(r.Max-r.Min+1)
		for _, target := range sample(cands, count, rng) {
			edges = append(edges, core.Edge{From: source.ID, To: target, Color: color})
		}
	}
	return edges, nil
}

// candidates weighs every other node by |farBias*max(h) - h| where h is the
// Manhattan distance from source, heaviest first.
func candidates(source core.Node, nodes []core.Node) []candidate {
	cands := make([]candidate, 0, len(nodes)-1)
	maxH := 0.0
	for _, n := range nodes {
		if n.ID == source.ID {
			continue
		}
		h := geometry.ManhattanDistance(source.Center(), n.Center())
		cands = append(cands, candidate{id: n.ID, weight: h})
		maxH = math.Max(maxH, h)
	}

	bias := farBias * maxH
	for i := range cands {
		cands[i].weight = math.Abs(bias - cands[i].weight)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].weight > cands[j].weight
	})
	return cands
}

// sample draws n distinct ids, each draw proportional to the remaining
// weights. All-zero weights fall back to a uniform draw.
func sample(cands []candidate, n int, rng *rand.Rand) []int {
	pool := append([]candidate(nil), cands...)
	picked := make([]int, 0, n)

	for k := 0; k < n && len(pool) > 0; k++ {
		total := 0.0
		for _, c := range pool {
			total += c.weight
		}

		idx := len(pool) - 1
		if total <= 0 {
			idx = rng.Intn(len(pool))
		} else {
			target := rng.Float64()
			cumulative := 0.0
			for i, c := range pool {
				cumulative += c.weight / total
				if target <= cumulative {
					idx = i
					break
				}
			}
		}

		picked = append(picked, pool[idx].id)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}
