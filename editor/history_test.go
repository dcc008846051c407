package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodegraph/core"
	"nodegraph/graph"
)

func TestHistoryFillUndoRedo(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)

	a := store.PlaceNode(10, 10, "red")
	b := store.PlaceNode(50, 50, "red")
	c := store.PlaceNode(90, 10, "red")
	store.AddEdges(
		core.Edge{From: a.ID, To: b.ID},
		core.Edge{From: b.ID, To: a.ID},
		core.Edge{From: b.ID, To: c.ID},
		core.Edge{From: a.ID, To: c.ID},
		core.Edge{From: c.ID, To: b.ID},
	)

	out := h.Undo(ModeFill)
	require.True(t, out.Applied)
	require.NotNil(t, out.Node)
	assert.Equal(t, c, *out.Node)
	assert.Equal(t, []core.Edge{
		{From: b.ID, To: c.ID},
		{From: a.ID, To: c.ID},
		{From: c.ID, To: b.ID},
	}, out.Edges)
	assert.Equal(t, []core.Node{a, b}, store.Nodes())
	assert.Equal(t, []core.Edge{{From: a.ID, To: b.ID}, {From: b.ID, To: a.ID}}, store.Edges())
	assert.Equal(t, Depths{NodeRedo: 1, Bundles: 1}, h.Depths())

	out, err := h.Redo(ModeFill)
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, []core.Node{a, b, c}, store.Nodes())
	assert.Equal(t, []core.Edge{
		{From: a.ID, To: b.ID},
		{From: b.ID, To: a.ID},
		{From: b.ID, To: c.ID},
		{From: a.ID, To: c.ID},
		{From: c.ID, To: b.ID},
	}, store.Edges())
	assert.Equal(t, Depths{}, h.Depths())
}

func TestHistoryFillUndoRecordsEmptyBundle(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(10, 10, "red")
	store.PlaceNode(50, 50, "red")

	h.Undo(ModeFill)

	bundles := h.Bundles()
	require.Len(t, bundles, 1)
	assert.Equal(t, 1, bundles[0].NodeID)
	assert.Empty(t, bundles[0].Edges)
}

func TestHistoryEmptyIsNoOp(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)

	for _, mode := range []Mode{ModeFill, ModeSelect} {
		assert.False(t, h.CanUndo(mode))
		assert.False(t, h.CanRedo(mode))

		out := h.Undo(mode)
		assert.False(t, out.Applied, "undo %s", mode)

		out, err := h.Redo(mode)
		require.NoError(t, err)
		assert.False(t, out.Applied, "redo %s", mode)
	}
	assert.Equal(t, Depths{}, h.Depths())
}

func TestHistoryFillRedoSkipsForeignBundle(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.AddEdges(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0})

	h.Undo(ModeFill) // node 1, bundle {1: 2 edges}
	h.Undo(ModeFill) // node 0, bundle {0: none}

	// Drop the top bundle so the next redo sees node 1's bundle under node 0.
	h.bundles = h.bundles[:1]

	out, err := h.Redo(ModeFill)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Empty(t, out.Edges)
	assert.Empty(t, store.Edges())
	require.Len(t, h.Bundles(), 1, "mismatched bundle must stay on the stack")

	out, err = h.Redo(ModeFill)
	require.NoError(t, err)
	assert.Len(t, out.Edges, 2)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, store.Edges())
}

func TestHistorySelectUndoRedoPreservesPairOrder(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.PlaceNode(20, 0, "red")
	first := []core.Edge{{From: 0, To: 1, Color: "black"}, {From: 1, To: 0, Color: "black"}}
	second := []core.Edge{{From: 1, To: 2, Color: "black"}, {From: 2, To: 1, Color: "black"}}
	store.AddEdges(first...)
	store.AddEdges(second...)

	out := h.Undo(ModeSelect)
	require.True(t, out.Applied)
	assert.Equal(t, second, out.Edges)
	out = h.Undo(ModeSelect)
	assert.Equal(t, first, out.Edges)
	assert.Empty(t, store.Edges())

	_, err := h.Redo(ModeSelect)
	require.NoError(t, err)
	assert.Equal(t, first, store.Edges())
	_, err = h.Redo(ModeSelect)
	require.NoError(t, err)
	assert.Equal(t, append(append([]core.Edge{}, first...), second...), store.Edges())
}

func TestHistorySelectUndoNeedsTwoEdges(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.AddEdges(core.Edge{From: 0, To: 1})

	out := h.Undo(ModeSelect)
	assert.False(t, out.Applied)
	assert.Equal(t, 1, store.EdgeCount(), "a lone edge is neither popped nor lost")
	assert.Equal(t, 0, h.Depths().PairRedo)
}

func TestHistorySelectRedoWaitsForLiveEndpoints(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.AddEdges(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0})

	h.Undo(ModeSelect) // pair 0<->1 parked
	h.Undo(ModeFill)   // node 1 gone

	assert.False(t, h.CanRedo(ModeSelect))
	out, err := h.Redo(ModeSelect)
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Empty(t, store.Edges())
	assert.Equal(t, 1, h.Depths().PairRedo)

	_, err = h.Redo(ModeFill) // node 1 back
	require.NoError(t, err)
	assert.True(t, h.CanRedo(ModeSelect))
	out, err = h.Redo(ModeSelect)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, store.Edges())
}

func TestHistoryRecordPlacementClearsFillRedo(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")

	h.Undo(ModeFill)
	require.True(t, h.CanRedo(ModeFill))

	store.PlaceNode(20, 0, "red")
	h.RecordPlacement()

	assert.False(t, h.CanRedo(ModeFill))
	assert.Equal(t, Depths{}, h.Depths())
}

func TestHistoryRecordConnectionClearsPairRedo(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.AddEdges(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0})
	h.Undo(ModeSelect)

	h.RecordConnection()
	assert.Equal(t, 0, h.Depths().PairRedo)
}

func TestHistoryRedoOutOfSequenceFails(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	h.Undo(ModeFill)

	// Bypass RecordPlacement to simulate a stale redo stack.
	store.PlaceNode(5, 5, "red")
	assert.False(t, h.CanRedo(ModeFill))

	_, err := h.Redo(ModeFill)
	require.ErrorIs(t, err, graph.ErrNodeOutOfSequence)
	assert.Equal(t, 1, h.Depths().NodeRedo, "failed redo leaves the stack alone")
	assert.Equal(t, 1, store.NodeCount())
}

func TestHistoryClear(t *testing.T) {
	store := graph.NewStore()
	h := NewHistory(store)
	store.PlaceNode(0, 0, "red")
	store.PlaceNode(10, 0, "red")
	store.AddEdges(core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 0})
	h.Undo(ModeSelect)
	h.Undo(ModeFill)

	h.Clear()
	assert.Equal(t, Depths{}, h.Depths())
}
