package editor

import (
	"fmt"

	"go.uber.org/zap"
)

// Mode represents the current editing mode
type Mode int

const (
	ModeFill   Mode = iota // Placing nodes
	ModeSelect             // Connecting two existing nodes
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeFill {
		return ModeSelect
	}
	return ModeFill
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fill":
		return ModeFill, nil
	case "select":
		return ModeSelect, nil
	default:
		return ModeFill, fmt.Errorf("unknown mode %q", s)
	}
}

// SetMode changes the editing mode and drops any half-made connection.
// History is left alone: each mode keeps its own redo state.
func (s *Session) SetMode(mode Mode) {
	prev := s.mode
	s.mode = mode
	s.resetSelection()
	s.hovering = false
	s.logger.Debug("mode changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", mode),
	)
}

// ToggleMode switches between fill and select.
func (s *Session) ToggleMode() {
	s.SetMode(s.mode.Other())
}

// Mode returns the current editing mode.
func (s *Session) Mode() Mode {
	return s.mode
}
