// Package validation checks the structure of a graph before it is drawn or
// exported.
package validation

import (
	"fmt"
	"strings"

	"nodegraph/core"
)

// Kind classifies a validation error.
type Kind string

const (
	KindSequence  Kind = "sequence"  // node id differs from its position
	KindDangling  Kind = "dangling"  // edge endpoint is not a node
	KindSelfLoop  Kind = "self-loop" // edge from a node to itself (strict)
	KindDuplicate Kind = "duplicate" // repeated directed edge (strict)
)

// ValidationError represents a validation error with the offending item.
type ValidationError struct {
	Kind    Kind
	Index   int // Position in the node or edge list
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Index, e.Message)
}

// GraphValidator checks that a graph can be loaded into an editing session.
type GraphValidator struct {
	// strictMode also rejects what the generator never produces: self
	// loops and repeated edges. Interactive editing can repeat edges.
	strictMode bool
}

// NewGraphValidator creates a new validator with default settings.
func NewGraphValidator() *GraphValidator {
	return &GraphValidator{}
}

// SetStrictMode enables or disables strict validation.
func (v *GraphValidator) SetStrictMode(strict bool) {
	v.strictMode = strict
}

// Validate returns every problem found, nodes first, in list order.
func (v *GraphValidator) Validate(g core.Graph) []ValidationError {
	var errs []ValidationError

	for i, n := range g.Nodes {
		if n.ID != i {
			errs = append(errs, ValidationError{
				Kind:    KindSequence,
				Index:   i,
				Message: fmt.Sprintf("node has id %d", n.ID),
			})
		}
	}

	seen := make(map[core.Edge]bool, len(g.Edges))
	for i, e := range g.Edges {
		if !v.isNode(g, e.From) || !v.isNode(g, e.To) {
			errs = append(errs, ValidationError{
				Kind:    KindDangling,
				Index:   i,
				Message: fmt.Sprintf("edge %s references a missing node", e),
			})
			continue
		}
		if !v.strictMode {
			continue
		}
		if e.From == e.To {
			errs = append(errs, ValidationError{
				Kind:    KindSelfLoop,
				Index:   i,
				Message: fmt.Sprintf("edge %s loops", e),
			})
		}
		key := core.Edge{From: e.From, To: e.To}
		if seen[key] {
			errs = append(errs, ValidationError{
				Kind:    KindDuplicate,
				Index:   i,
				Message: fmt.Sprintf("edge %s repeats", e),
			})
		}
		seen[key] = true
	}

	return errs
}

// isNode looks ids up by position, which is only meaningful once the
// sequence check passes; otherwise it falls back to a scan.
func (v *GraphValidator) isNode(g core.Graph, id int) bool {
	if id >= 0 && id < len(g.Nodes) && g.Nodes[id].ID == id {
		return true
	}
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Summary joins errors into one line, or returns "" for none.
func Summary(errs []ValidationError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
