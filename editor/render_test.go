package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodegraph/core"
)

func TestRedrawOrder(t *testing.T) {
	s, r := newTestSession()
	a, _ := s.PlaceNode(0, 0)
	b, _ := s.PlaceNode(100, 0)
	connect(s, a, b)
	r.reset()

	require.NoError(t, s.Redraw())
	assert.Equal(t, []drawCall{
		{Kind: "clear"},
		{Kind: "node", A: a.Center(), Size: 20, Color: "red"},
		{Kind: "node", A: b.Center(), Size: 20, Color: "red"},
		{Kind: "edge", A: a.Center(), B: b.Center(), Size: 10, Color: "black"},
		{Kind: "edge", A: b.Center(), B: a.Center(), Size: 10, Color: "black"},
	}, r.calls)
}

func TestRedrawEmpty(t *testing.T) {
	s, r := newTestSession()
	require.NoError(t, s.Redraw())
	assert.Equal(t, []string{"clear"}, r.kinds())
}

func TestRedrawDanglingEdgeIsFatal(t *testing.T) {
	tests := []struct {
		name string
		edge core.Edge
	}{
		{"missing target", core.Edge{From: 0, To: 5}},
		{"missing source", core.Edge{From: 9, To: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := newTestSession()
			s.PlaceNode(0, 0)
			s.store.AddEdges(tt.edge)
			r.reset()

			err := s.Redraw()
			require.ErrorIs(t, err, ErrDanglingEdge)
			assert.Contains(t, err.Error(), tt.edge.String())
			assert.NotContains(t, r.kinds(), "edge")
		})
	}
}
