package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nodegraph/core"
	"nodegraph/graph"
)

// ErrSessionNotEmpty is returned by Seed when the session already holds nodes.
var ErrSessionNotEmpty = errors.New("session already has nodes")

// Style holds the fixed drawing and hit-test parameters of a session.
type Style struct {
	NodeSize  float64 // Diameter a node is drawn with
	HitRadius float64 // Hover/click distance from a node centre
	EdgeTrim  float64 // Distance an edge stops short of each centre
	NodeColor string  // Colour given to placed nodes
	EdgeColor string  // Colour given to interactive connections
}

// DefaultStyle returns red nodes of diameter 20 joined by black edges.
func DefaultStyle() Style {
	return Style{
		NodeSize:  20,
		HitRadius: 20,
		EdgeTrim:  10,
		NodeColor: "red",
		EdgeColor: "black",
	}
}

// Session is the editing controller. It owns one graph store and its
// history, tracks the mode and the pending connection, and asks the
// renderer to draw after every mutation.
//
// Session is driven by a single event loop and is not safe for concurrent
// use.
type Session struct {
	id       string
	store    *graph.Store
	history  *History
	renderer Renderer
	observer Observer
	logger   *zap.Logger
	style    Style

	// UI state
	mode     Mode
	from     int  // Pending connection source node ID (-1 for none)
	to       int  // Pending connection target node ID (-1 for none)
	hovering bool // Pointer is over a node (select mode)
}

// Option configures a Session.
type Option func(*Session)

// WithStyle overrides the default style.
func WithStyle(style Style) Option {
	return func(s *Session) { s.style = style }
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets the action observer, typically a metrics recorder.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewSession creates an empty session in fill mode. A nil renderer draws
// nothing.
func NewSession(renderer Renderer, opts ...Option) *Session {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	store := graph.NewStore()
	s := &Session{
		id:       uuid.NewString(),
		store:    store,
		history:  NewHistory(store),
		renderer: renderer,
		observer: nopObserver{},
		logger:   zap.NewNop(),
		style:    DefaultStyle(),
		mode:     ModeFill,
		from:     -1,
		to:       -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Style returns the session's style.
func (s *Session) Style() Style {
	return s.style
}

// PlaceNode adds a node at (x, y) in the node colour and draws it. It only
// acts in fill mode; ok is false otherwise.
func (s *Session) PlaceNode(x, y float64) (n core.Node, ok bool) {
	if s.mode != ModeFill {
		return core.Node{}, false
	}
	n = s.store.PlaceNode(x, y, s.style.NodeColor)
	s.history.RecordPlacement()
	s.renderer.RenderNode(n.Center(), s.style.NodeSize, n.Color)

	s.logger.Debug("node placed",
		zap.Int("node", n.ID),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	s.observe("place", true)
	return n, true
}

// HoverAt updates the hover flag for the pointer at (x, y). It only acts in
// select mode and never mutates the graph.
func (s *Session) HoverAt(x, y float64) bool {
	if s.mode != ModeSelect {
		s.hovering = false
		return false
	}
	_, s.hovering = s.store.NodeAt(core.Point{X: x, Y: y}, s.style.HitRadius)
	return s.hovering
}

// Hovering reports whether the pointer was over a node at the last HoverAt.
func (s *Session) Hovering() bool {
	return s.hovering
}

// ClickAt handles a click at (x, y) in select mode. The first node hit
// becomes the connection source; hitting a different node completes the
// connection with a forward and a reverse edge. Clicking the source again
// does nothing. It returns the edges created, if any.
func (s *Session) ClickAt(x, y float64) []core.Edge {
	if s.mode != ModeSelect {
		return nil
	}
	n, ok := s.store.NodeAt(core.Point{X: x, Y: y}, s.style.HitRadius)
	if !ok {
		return nil
	}
	if s.from < 0 {
		s.from = n.ID
		s.logger.Debug("connection source selected", zap.Int("node", n.ID))
		return nil
	}
	if n.ID == s.from {
		return nil
	}
	s.to = n.ID

	from, _ := s.store.Node(s.from)
	forward := core.Edge{From: from.ID, To: n.ID, Color: s.style.EdgeColor}
	reverse := forward.Reverse()
	s.store.AddEdges(forward, reverse)
	s.history.RecordConnection()

	s.renderer.RenderEdge(from.Center(), n.Center(), s.style.EdgeTrim, forward.Color)
	s.renderer.RenderEdge(n.Center(), from.Center(), s.style.EdgeTrim, reverse.Color)

	s.logger.Debug("nodes connected",
		zap.Int("from", forward.From),
		zap.Int("to", forward.To),
	)
	s.resetSelection()
	s.observe("connect", true)
	return []core.Edge{forward, reverse}
}

// Undo reverses the last unit of work of the current mode and redraws.
// Nothing to undo is not an error.
func (s *Session) Undo() error {
	out := s.history.Undo(s.mode)
	s.resetSelection()
	s.logOutcome("undo", out)
	s.observe("undo", out.Applied)
	return s.Redraw()
}

// Redo replays the last undone unit of work of the current mode and
// redraws. Nothing to redo is not an error.
func (s *Session) Redo() error {
	out, err := s.history.Redo(s.mode)
	if err != nil {
		return fmt.Errorf("redo in %s mode: %w", s.mode, err)
	}
	s.resetSelection()
	s.logOutcome("redo", out)
	s.observe("redo", out.Applied)
	return s.Redraw()
}

// Seed loads a prebuilt graph into an empty session, typically one made by
// the generator. Node IDs must run 0..len-1 in order. Empty colours take the
// session style. History starts empty.
func (s *Session) Seed(nodes []core.Node, edges []core.Edge) error {
	if s.store.NodeCount() > 0 {
		return ErrSessionNotEmpty
	}
	for i, n := range nodes {
		if n.ID != i {
			return fmt.Errorf("seed node at position %d has id %d: %w", i, n.ID, graph.ErrNodeOutOfSequence)
		}
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			return fmt.Errorf("seed edge %s: %w", e, ErrDanglingEdge)
		}
	}

	for _, n := range nodes {
		color := n.Color
		if color == "" {
			color = s.style.NodeColor
		}
		s.store.PlaceNode(n.X, n.Y, color)
	}
	for _, e := range edges {
		if e.Color == "" {
			e.Color = s.style.EdgeColor
		}
		s.store.AddEdges(e)
	}
	s.history.Clear()
	s.logger.Info("session seeded", zap.Int("nodes", len(nodes)), zap.Int("edges", len(edges)))
	s.observe("seed", true)
	return s.Redraw()
}

// Selection returns the pending connection endpoints, -1 when unset.
func (s *Session) Selection() (from, to int) {
	return s.from, s.to
}

// Nodes returns a copy of the live nodes.
func (s *Session) Nodes() []core.Node {
	return s.store.Nodes()
}

// Edges returns a copy of the live edges.
func (s *Session) Edges() []core.Edge {
	return s.store.Edges()
}

// History exposes the session's history manager for inspection.
func (s *Session) History() *History {
	return s.history
}

// HistoryDepths returns the redo stack sizes.
func (s *Session) HistoryDepths() Depths {
	return s.history.Depths()
}

func (s *Session) resetSelection() {
	s.from = -1
	s.to = -1
}

func (s *Session) observe(action string, applied bool) {
	s.observer.ObserveAction(action, s.mode.String(), applied)
	s.observer.ObserveGraph(s.store.NodeCount(), s.store.EdgeCount())
}

func (s *Session) logOutcome(action string, out Outcome) {
	if !out.Applied {
		s.logger.Debug(action+" skipped: nothing to do", zap.Stringer("mode", s.mode))
		return
	}
	fields := []zap.Field{
		zap.Stringer("mode", s.mode),
		zap.Int("edges", len(out.Edges)),
	}
	if out.Node != nil {
		fields = append(fields, zap.Int("node", out.Node.ID))
	}
	s.logger.Debug(action+" applied", fields...)
}
