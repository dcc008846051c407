package editor

import (
	"nodegraph/core"
)

// drawCall is one call recorded by recordingRenderer.
type drawCall struct {
	Kind  string // "node", "edge" or "clear"
	A, B  core.Point
	Size  float64
	Color string
}

// recordingRenderer records every call the session makes.
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) RenderNode(center core.Point, size float64, color string) {
	r.calls = append(r.calls, drawCall{Kind: "node", A: center, Size: size, Color: color})
}

func (r *recordingRenderer) RenderEdge(from, to core.Point, trim float64, color string) {
	r.calls = append(r.calls, drawCall{Kind: "edge", A: from, B: to, Size: trim, Color: color})
}

func (r *recordingRenderer) Clear() {
	r.calls = append(r.calls, drawCall{Kind: "clear"})
}

func (r *recordingRenderer) reset() {
	r.calls = nil
}

func (r *recordingRenderer) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Kind
	}
	return out
}

// countingObserver tallies observed actions by name.
type countingObserver struct {
	applied map[string]int
	skipped map[string]int
	nodes   int
	edges   int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{applied: map[string]int{}, skipped: map[string]int{}}
}

func (o *countingObserver) ObserveAction(action, mode string, applied bool) {
	if applied {
		o.applied[action+"/"+mode]++
		return
	}
	o.skipped[action+"/"+mode]++
}

func (o *countingObserver) ObserveGraph(nodes, edges int) {
	o.nodes, o.edges = nodes, edges
}

// newTestSession returns a session with a recording renderer.
func newTestSession(opts ...Option) (*Session, *recordingRenderer) {
	r := &recordingRenderer{}
	return NewSession(r, opts...), r
}

// connect clicks a then b in select mode, leaving the session in select mode.
func connect(s *Session, a, b core.Node) []core.Edge {
	s.SetMode(ModeSelect)
	s.ClickAt(a.X, a.Y)
	return s.ClickAt(b.X, b.Y)
}
