// Package terminal drives an editing session from a tcell screen: mouse
// presses place or connect nodes, motion hovers, keys switch mode and walk
// the history.
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"nodegraph/core"
	"nodegraph/editor"
)

// StatusRows is the number of terminal rows reserved below the canvas.
const StatusRows = 2

// Surface is the drawing target the loop renders into. canvas.Screen
// implements it.
type Surface interface {
	editor.Renderer
	CellToSurface(col, row int) (core.Point, bool)
	DrawStatus(lines ...string)
	Show()
}

type loop struct {
	screen  tcell.Screen
	session *editor.Session
	surface Surface
	logger  *zap.Logger
	buttons tcell.ButtonMask
}

// Run processes events until the user quits or ctx is cancelled, both of
// which return nil. A rendering failure, such as an edge whose endpoint is
// no longer live, stops the loop and is returned.
//
// The session must use surface as its renderer. Run does not take
// ownership of screen; the caller initialises and finalises it.
func Run(ctx context.Context, screen tcell.Screen, session *editor.Session, surface Surface, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &loop{
		screen:  screen,
		session: session,
		surface: surface,
		logger:  logger.With(zap.String("session", session.ID())),
	}

	screen.EnableMouse()
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	if err := session.Redraw(); err != nil {
		return err
	}
	l.show()
	l.logger.Info("editor started", zap.Stringer("mode", session.Mode()))

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		var (
			quit bool
			err  error
		)
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				l.logger.Info("editor cancelled")
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			err = session.Redraw()
		case *tcell.EventKey:
			quit, err = l.handleKey(ev)
		case *tcell.EventMouse:
			l.handleMouse(ev)
		}

		if err != nil {
			l.logger.Error("editor stopped", zap.Error(err))
			return err
		}
		if quit {
			l.logger.Info("editor closed",
				zap.Int("nodes", len(session.Nodes())),
				zap.Int("edges", len(session.Edges())),
			)
			return nil
		}
		l.show()
	}
}

func (l *loop) handleKey(ev *tcell.EventKey) (quit bool, err error) {
	mod := ev.Modifiers()
	metaRune := func(r rune) bool {
		return ev.Key() == tcell.KeyRune && mod&(tcell.ModMeta|tcell.ModAlt) != 0 && ev.Rune() == r
	}

	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape:
		return true, nil
	case ev.Key() == tcell.KeyCtrlZ, metaRune('z'):
		return false, l.session.Undo()
	case ev.Key() == tcell.KeyCtrlY, metaRune('y'):
		return false, l.session.Redo()
	case ev.Key() == tcell.KeyTab:
		l.session.ToggleMode()
		return false, nil
	case ev.Key() != tcell.KeyRune:
		return false, nil
	}

	switch ev.Rune() {
	case 'q':
		return true, nil
	case 'm':
		l.session.ToggleMode()
	case 'u':
		return false, l.session.Undo()
	case 'r':
		return false, l.session.Redo()
	}
	return false, nil
}

// handleMouse acts on the press edge of the left button only; holding the
// button or releasing it does nothing. Motion without buttons hovers.
func (l *loop) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && l.buttons&tcell.Button1 == 0
	l.buttons = buttons

	col, row := ev.Position()
	p, ok := l.surface.CellToSurface(col, row)
	if !ok {
		return
	}

	switch {
	case pressed && l.session.Mode() == editor.ModeFill:
		l.session.PlaceNode(p.X, p.Y)
	case pressed:
		l.session.ClickAt(p.X, p.Y)
	case buttons == tcell.ButtonNone:
		l.session.HoverAt(p.X, p.Y)
	}
}

func (l *loop) show() {
	l.surface.DrawStatus(statusLines(l.session)...)
	l.surface.Show()
}

func statusLines(s *editor.Session) []string {
	from, _ := s.Selection()
	source := "-"
	if from >= 0 {
		source = fmt.Sprintf("%d", from)
	}
	hover := ""
	if s.Hovering() {
		hover = "  [node]"
	}
	d := s.HistoryDepths()

	return []string{
		fmt.Sprintf(" %s mode  nodes %d  edges %d  source %s%s",
			s.Mode(), len(s.Nodes()), len(s.Edges()), source, hover),
		fmt.Sprintf(" redo: nodes %d bundles %d pairs %d   tab/m mode  u/^Z undo  r/^Y redo  q quit",
			d.NodeRedo, d.Bundles, d.PairRedo),
	}
}
