package editor

import (
	"slices"

	"nodegraph/core"
	"nodegraph/graph"
)

// EdgeBundle groups the edges removed together because they touched one
// undone node. A bundle is replayed in full or not at all.
type EdgeBundle struct {
	NodeID int
	Edges  []core.Edge
}

// EdgePair is one interactive connection: the forward edge then its reverse.
type EdgePair [2]core.Edge

// Outcome describes what an undo or redo actually changed. Applied is false
// for the silent no-op cases (nothing to undo, nothing to redo).
type Outcome struct {
	Applied bool
	Node    *core.Node  // Node removed or restored (fill mode)
	Edges   []core.Edge // Edges removed or restored
}

// Depths reports the size of each redo stack.
type Depths struct {
	NodeRedo int
	Bundles  int
	PairRedo int
}

// History keeps the undo/redo state for both editing modes.
//
// The node undo stack is implicit: it is the tail of the store's node
// sequence. Fill mode keeps popped nodes and the edge bundles extracted with
// them; select mode keeps popped edge pairs. The two modes are independent
// LIFO views over one shared live edge list.
type History struct {
	store    *graph.Store
	nodeRedo []core.Node
	bundles  []EdgeBundle
	pairRedo []EdgePair
}

// NewHistory creates a history manager over store.
func NewHistory(store *graph.Store) *History {
	return &History{store: store}
}

// Undo reverses the most recent unit of work for mode.
func (h *History) Undo(mode Mode) Outcome {
	if mode == ModeSelect {
		return h.undoSelect()
	}
	return h.undoFill()
}

// Redo replays the most recently undone unit of work for mode.
func (h *History) Redo(mode Mode) (Outcome, error) {
	if mode == ModeSelect {
		return h.redoSelect(), nil
	}
	return h.redoFill()
}

// undoFill pops the last node and the edges touching it.
func (h *History) undoFill() Outcome {
	n, ok := h.store.RemoveLastNode()
	if !ok {
		return Outcome{}
	}
	edges := h.store.ExtractEdgesTouching(n.ID)

	h.nodeRedo = append(h.nodeRedo, n)
	h.bundles = append(h.bundles, EdgeBundle{NodeID: n.ID, Edges: edges})

	return Outcome{Applied: true, Node: &n, Edges: slices.Clone(edges)}
}

// redoFill restores the last undone node, and its edge bundle when the top
// bundle belongs to that node.
func (h *History) redoFill() (Outcome, error) {
	if len(h.nodeRedo) == 0 {
		return Outcome{}, nil
	}
	n := h.nodeRedo[len(h.nodeRedo)-1]
	if err := h.store.RestoreNode(n); err != nil {
		return Outcome{}, err
	}
	h.nodeRedo = h.nodeRedo[:len(h.nodeRedo)-1]

	out := Outcome{Applied: true, Node: &n}
	if len(h.bundles) == 0 {
		return out, nil
	}
	top := h.bundles[len(h.bundles)-1]
	if top.NodeID != n.ID {
		return out, nil
	}
	h.bundles = h.bundles[:len(h.bundles)-1]
	h.store.AddEdges(top.Edges...)
	out.Edges = slices.Clone(top.Edges)
	return out, nil
}

// undoSelect pops the last two live edges as one connection.
func (h *History) undoSelect() Outcome {
	edges, ok := h.store.RemoveLastEdges(2)
	if !ok {
		return Outcome{}
	}
	h.pairRedo = append(h.pairRedo, EdgePair{edges[0], edges[1]})
	return Outcome{Applied: true, Edges: edges}
}

// redoSelect appends the last undone pair, forward edge first. A pair whose
// endpoints are no longer both live stays on the stack.
func (h *History) redoSelect() Outcome {
	if !h.canRedoSelect() {
		return Outcome{}
	}
	pair := h.pairRedo[len(h.pairRedo)-1]
	h.pairRedo = h.pairRedo[:len(h.pairRedo)-1]
	h.store.AddEdges(pair[0], pair[1])
	return Outcome{Applied: true, Edges: []core.Edge{pair[0], pair[1]}}
}

func (h *History) canRedoSelect() bool {
	if len(h.pairRedo) == 0 {
		return false
	}
	pair := h.pairRedo[len(h.pairRedo)-1]
	for _, e := range pair {
		if !h.store.HasNode(e.From) || !h.store.HasNode(e.To) {
			return false
		}
	}
	return true
}

// CanUndo returns true if undo in mode would change the graph
func (h *History) CanUndo(mode Mode) bool {
	if mode == ModeSelect {
		return h.store.EdgeCount() >= 2
	}
	return h.store.NodeCount() > 0
}

// CanRedo returns true if redo in mode would change the graph
func (h *History) CanRedo(mode Mode) bool {
	if mode == ModeSelect {
		return h.canRedoSelect()
	}
	if len(h.nodeRedo) == 0 {
		return false
	}
	return h.nodeRedo[len(h.nodeRedo)-1].ID == h.store.NodeCount()
}

// RecordPlacement forgets fill-mode redo state. A new node takes the ID the
// oldest undone node would have been restored to, so that state is stale.
func (h *History) RecordPlacement() {
	h.nodeRedo = h.nodeRedo[:0]
	h.bundles = h.bundles[:0]
}

// RecordConnection forgets select-mode redo state.
func (h *History) RecordConnection() {
	h.pairRedo = h.pairRedo[:0]
}

// Bundles returns a copy of the edge bundle stack, oldest first.
func (h *History) Bundles() []EdgeBundle {
	out := make([]EdgeBundle, len(h.bundles))
	for i, b := range h.bundles {
		out[i] = EdgeBundle{NodeID: b.NodeID, Edges: slices.Clone(b.Edges)}
	}
	return out
}

// Clear drops all redo state.
func (h *History) Clear() {
	h.nodeRedo = nil
	h.bundles = nil
	h.pairRedo = nil
}

// Depths returns the current stack sizes for display
func (h *History) Depths() Depths {
	return Depths{
		NodeRedo: len(h.nodeRedo),
		Bundles:  len(h.bundles),
		PairRedo: len(h.pairRedo),
	}
}
